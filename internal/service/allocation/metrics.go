package allocation

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the engine's prometheus collectors. The zero value is a
// valid no-op, so tests and partial wiring never panic.
type Metrics struct {
	Assignments        prometheus.Counter
	AllocationFailures *prometheus.CounterVec
	NotifyFailures     prometheus.Counter
}

func (m Metrics) assigned() {
	if m.Assignments != nil {
		m.Assignments.Inc()
	}
}

func (m Metrics) allocationFailed(reason string) {
	if m.AllocationFailures != nil {
		m.AllocationFailures.WithLabelValues(reason).Inc()
	}
}

func (m Metrics) notifyFailed() {
	if m.NotifyFailures != nil {
		m.NotifyFailures.Inc()
	}
}
