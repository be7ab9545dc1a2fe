package netmetrics

import "time"

// Millis is a monotonic timestamp in milliseconds supplied by the caller
type Millis int64

// MillisDuration is the difference between two Millis timestamps
type MillisDuration int64

// MillisSince converts now into a Millis timestamp relative to start
func MillisSince(start, now time.Time) Millis {
	return Millis(now.Sub(start).Milliseconds())
}

// FromDuration converts a time.Duration into a MillisDuration
func FromDuration(d time.Duration) MillisDuration {
	return MillisDuration(d.Milliseconds())
}

// Sub returns m - other
func (m Millis) Sub(other Millis) MillisDuration {
	return MillisDuration(m - other)
}

// Add returns m advanced by d
func (m Millis) Add(d MillisDuration) Millis {
	return m + Millis(d)
}

// Seconds returns the duration as fractional seconds
func (d MillisDuration) Seconds() float64 {
	return float64(d) / 1000.0
}
