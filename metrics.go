package netmetrics

// MetricsRecorder is an interface for exporting the traffic tracked by a NetworkMetrics.
// RecordDatagramsSent tracks a batch of datagrams sent out and its total size.
// RecordDatagramReceived tracks the size of a single received datagram.
// UpdateRates publishes the rates after each UpdateMetrics call.
type MetricsRecorder interface {
	RecordDatagramsSent(datagrams int, octets int)
	RecordDatagramReceived(octets int)
	UpdateRates(m CombinedMetrics)
}
