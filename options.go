package netmetrics

import (
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultRateInterval is the minimum time in seconds between two rate recomputes
	DefaultRateInterval = 0.1
	// DefaultDebugLogInterval is how often the debug reporter logs a snapshot
	DefaultDebugLogInterval MillisDuration = 500
)

type options struct {
	logger        *log.Logger
	metrics       MetricsRecorder
	debug         bool
	debugInterval MillisDuration
}

// Option configures a NetworkMetrics at construction time
type Option func(*options)

// WithLogger sets the logger used for debug reporting
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the recorder that receives the tracked traffic
func WithMetrics(m MetricsRecorder) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithDebugLog enables logging a snapshot at debug level every DefaultDebugLogInterval
func WithDebugLog() Option {
	return WithDebugLogInterval(DefaultDebugLogInterval)
}

// WithDebugLogInterval enables debug reporting with a custom log interval
func WithDebugLogInterval(interval MillisDuration) Option {
	return func(o *options) {
		o.debug = true
		o.debugInterval = interval
	}
}
