// Package logging configures the standard logrus logger for the example binaries
package logging

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup sets the formatter and level of the standard logger.
// format is either "json" or "text"; unknown levels fall back to INFO.
func Setup(level, format string) {
	if strings.EqualFold(format, "text") {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "level",
				log.FieldKeyMsg:   "message",
			},
		})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("Invalid log level, defaulting to INFO")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
