package netmetrics

import "math"

// RateMetric converts counts added at irregular times into an events-per-second rate.
// Add only accumulates; the rate is recomputed by Update at most once per interval.
type RateMetric struct {
	count      uint64
	rate       float64
	lastUpdate Millis
	interval   float64 // seconds
}

// NewRateMetric creates a rate metric starting at now that recomputes at most every intervalSeconds
func NewRateMetric(now Millis, intervalSeconds float64) (*RateMetric, error) {
	if !(intervalSeconds > 0) || math.IsInf(intervalSeconds, 1) {
		return nil, ErrInvalidInterval
	}
	return newRateMetric(now, intervalSeconds), nil
}

func newRateMetric(now Millis, intervalSeconds float64) *RateMetric {
	return &RateMetric{
		lastUpdate: now,
		interval:   intervalSeconds,
	}
}

// Add adds count events to the accumulator
func (r *RateMetric) Add(count uint32) {
	r.count += uint64(count)
}

// Update recomputes the rate if at least one interval has elapsed since the last recompute.
// A clock that stands still or moves backwards leaves the metric untouched.
func (r *RateMetric) Update(now Millis) {
	elapsed := now.Sub(r.lastUpdate).Seconds()
	if elapsed <= 0 || elapsed < r.interval {
		return
	}

	r.rate = float64(r.count) / elapsed
	r.count = 0
	r.lastUpdate = now
}

// Rate returns the most recently computed rate in events per second
func (r *RateMetric) Rate() float64 {
	return r.rate
}

// Pending returns the count accumulated since the last recompute
func (r *RateMetric) Pending() uint64 {
	return r.count
}

// Interval returns the minimum recompute interval in seconds
func (r *RateMetric) Interval() float64 {
	return r.interval
}
