package netmetrics

import "errors"

// Custom error types
var (
	ErrInvalidInterval = errors.New("invalid update interval")
)
