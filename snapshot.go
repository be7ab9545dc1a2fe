package netmetrics

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// MetricsInDirection holds the rates observed in one direction
type MetricsInDirection struct {
	DatagramsPerSecond float64
	OctetsPerSecond    float64
}

// String renders the rates as "<d> datagrams/s <o> octets/s"
func (m MetricsInDirection) String() string {
	return fmt.Sprintf("%v datagrams/s %v octets/s", m.DatagramsPerSecond, m.OctetsPerSecond)
}

// CombinedMetrics holds the outgoing and incoming rates of a connection
type CombinedMetrics struct {
	Outgoing MetricsInDirection
	Incoming MetricsInDirection
}

// String renders both directions, outgoing first
func (c CombinedMetrics) String() string {
	return fmt.Sprintf("metrics: out:\n%s, in:\n%s", c.Outgoing, c.Incoming)
}

// Fields returns the rates as structured log fields
func (c CombinedMetrics) Fields() log.Fields {
	return log.Fields{
		"out_datagrams_per_second": c.Outgoing.DatagramsPerSecond,
		"out_octets_per_second":    c.Outgoing.OctetsPerSecond,
		"in_datagrams_per_second":  c.Incoming.DatagramsPerSecond,
		"in_octets_per_second":     c.Incoming.OctetsPerSecond,
	}
}
