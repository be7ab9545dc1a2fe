package netmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	directionIn  = "in"
	directionOut = "out"

	unitDatagrams = "datagrams"
	unitOctets    = "octets"
)

// PrometheusCollector exports the traffic of many connections, one label set per peer
type PrometheusCollector struct {
	datagrams *prometheus.CounterVec
	octets    *prometheus.CounterVec
	rates     *prometheus.GaugeVec
}

// NewPrometheusCollector registers the netmetrics series with reg
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)

	return &PrometheusCollector{
		datagrams: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "netmetrics_datagrams_total",
			Help: "Total number of datagrams by direction",
		}, []string{"peer", "direction"}),

		octets: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "netmetrics_octets_total",
			Help: "Total number of octets by direction",
		}, []string{"peer", "direction"}),

		rates: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "netmetrics_rate_per_second",
			Help: "Current rate per second by direction and unit",
		}, []string{"peer", "direction", "unit"}),
	}
}

// Recorder returns a MetricsRecorder bound to peer
func (c *PrometheusCollector) Recorder(peer string) MetricsRecorder {
	return &peerRecorder{
		outDatagrams: c.datagrams.WithLabelValues(peer, directionOut),
		inDatagrams:  c.datagrams.WithLabelValues(peer, directionIn),
		outOctets:    c.octets.WithLabelValues(peer, directionOut),
		inOctets:     c.octets.WithLabelValues(peer, directionIn),

		outDatagramRate: c.rates.WithLabelValues(peer, directionOut, unitDatagrams),
		inDatagramRate:  c.rates.WithLabelValues(peer, directionIn, unitDatagrams),
		outOctetRate:    c.rates.WithLabelValues(peer, directionOut, unitOctets),
		inOctetRate:     c.rates.WithLabelValues(peer, directionIn, unitOctets),
	}
}

// Forget removes all series of peer
func (c *PrometheusCollector) Forget(peer string) {
	labels := prometheus.Labels{"peer": peer}
	c.datagrams.DeletePartialMatch(labels)
	c.octets.DeletePartialMatch(labels)
	c.rates.DeletePartialMatch(labels)
}

type peerRecorder struct {
	outDatagrams prometheus.Counter
	inDatagrams  prometheus.Counter
	outOctets    prometheus.Counter
	inOctets     prometheus.Counter

	outDatagramRate prometheus.Gauge
	inDatagramRate  prometheus.Gauge
	outOctetRate    prometheus.Gauge
	inOctetRate     prometheus.Gauge
}

func (r *peerRecorder) RecordDatagramsSent(datagrams int, octets int) {
	r.outDatagrams.Add(float64(datagrams))
	r.outOctets.Add(float64(octets))
}

func (r *peerRecorder) RecordDatagramReceived(octets int) {
	r.inDatagrams.Inc()
	r.inOctets.Add(float64(octets))
}

func (r *peerRecorder) UpdateRates(m CombinedMetrics) {
	r.outDatagramRate.Set(m.Outgoing.DatagramsPerSecond)
	r.outOctetRate.Set(m.Outgoing.OctetsPerSecond)
	r.inDatagramRate.Set(m.Incoming.DatagramsPerSecond)
	r.inOctetRate.Set(m.Incoming.OctetsPerSecond)
}
