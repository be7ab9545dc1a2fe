package netmetrics

import (
	log "github.com/sirupsen/logrus"
)

// debugReporter logs a snapshot at most once per interval
type debugReporter struct {
	interval MillisDuration
	lastLog  Millis
}

func newDebugReporter(now Millis, interval MillisDuration) *debugReporter {
	return &debugReporter{
		interval: interval,
		lastLog:  now,
	}
}

// due reports whether a snapshot should be logged at now and advances the log time if so
func (d *debugReporter) due(now Millis) bool {
	if now.Sub(d.lastLog) <= d.interval {
		return false
	}
	d.lastLog = now
	return true
}

func (d *debugReporter) report(logger *log.Logger, m CombinedMetrics) {
	if !logger.IsLevelEnabled(log.DebugLevel) {
		return
	}

	// a failing log sink must not reach the caller
	defer func() {
		_ = recover()
	}()

	logger.WithFields(m.Fields()).Debug("metrics: " + m.String())
}
