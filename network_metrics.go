// Package netmetrics tracks directional datagram and octet rates of a network connection
package netmetrics

import (
	log "github.com/sirupsen/logrus"
)

// NetworkMetrics tracks the incoming and outgoing rates of a single connection.
// It is not safe for concurrent use; the owner of the connection serializes access.
type NetworkMetrics struct {
	inDatagrams  RateMetric
	inOctets     RateMetric
	outDatagrams RateMetric
	outOctets    RateMetric

	debug   *debugReporter
	logger  *log.Logger
	metrics MetricsRecorder
}

// NewNetworkMetrics creates the four rate metrics, all starting at now
func NewNetworkMetrics(now Millis, opts ...Option) *NetworkMetrics {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	n := &NetworkMetrics{
		inDatagrams:  *newRateMetric(now, DefaultRateInterval),
		inOctets:     *newRateMetric(now, DefaultRateInterval),
		outDatagrams: *newRateMetric(now, DefaultRateInterval),
		outOctets:    *newRateMetric(now, DefaultRateInterval),
		logger:       o.logger,
		metrics:      o.metrics,
	}

	if o.debug {
		n.debug = newDebugReporter(now, o.debugInterval)
	}

	return n
}

// SetLogger sets the logger used for debug reporting
func (n *NetworkMetrics) SetLogger(logger *log.Logger) {
	n.logger = logger
}

// SetMetrics sets the metrics recorder
func (n *NetworkMetrics) SetMetrics(m MetricsRecorder) {
	n.metrics = m
}

// log returns the logger or the standard one
func (n *NetworkMetrics) log() *log.Logger {
	if n.logger == nil {
		n.logger = log.StandardLogger()
	}
	return n.logger
}

// SentDatagrams records a batch of outgoing datagrams.
// The datagram count is added once per batch.
func (n *NetworkMetrics) SentDatagrams(datagrams [][]byte) {
	octets := 0
	for _, datagram := range datagrams {
		n.outOctets.Add(uint32(len(datagram)))
		octets += len(datagram)
	}
	n.outDatagrams.Add(uint32(len(datagrams)))

	if n.metrics != nil {
		n.metrics.RecordDatagramsSent(len(datagrams), octets)
	}
}

// ReceivedDatagram records a single incoming datagram
func (n *NetworkMetrics) ReceivedDatagram(datagram []byte) {
	n.inOctets.Add(uint32(len(datagram)))
	n.inDatagrams.Add(1)

	if n.metrics != nil {
		n.metrics.RecordDatagramReceived(len(datagram))
	}
}

// UpdateMetrics recomputes all four rates at now
func (n *NetworkMetrics) UpdateMetrics(now Millis) {
	n.inDatagrams.Update(now)
	n.inOctets.Update(now)
	n.outDatagrams.Update(now)
	n.outOctets.Update(now)

	if n.metrics != nil {
		n.metrics.UpdateRates(n.Metrics())
	}

	if n.debug != nil && n.debug.due(now) {
		n.debug.report(n.log(), n.Metrics())
	}
}

// Metrics returns a snapshot of the current rates
func (n *NetworkMetrics) Metrics() CombinedMetrics {
	return CombinedMetrics{
		Outgoing: MetricsInDirection{
			DatagramsPerSecond: n.outDatagrams.Rate(),
			OctetsPerSecond:    n.outOctets.Rate(),
		},
		Incoming: MetricsInDirection{
			DatagramsPerSecond: n.inDatagrams.Rate(),
			OctetsPerSecond:    n.inOctets.Rate(),
		},
	}
}

// InDatagramsPerSecond returns the incoming datagram rate
func (n *NetworkMetrics) InDatagramsPerSecond() float64 {
	return n.inDatagrams.Rate()
}

// InOctetsPerSecond returns the incoming octet rate
func (n *NetworkMetrics) InOctetsPerSecond() float64 {
	return n.inOctets.Rate()
}

// OutDatagramsPerSecond returns the outgoing datagram rate
func (n *NetworkMetrics) OutDatagramsPerSecond() float64 {
	return n.outDatagrams.Rate()
}

// OutOctetsPerSecond returns the outgoing octet rate
func (n *NetworkMetrics) OutOctetsPerSecond() float64 {
	return n.outOctets.Rate()
}
