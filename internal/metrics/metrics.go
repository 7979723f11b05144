package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAssignmentsTotal returns a Prometheus counter for committed order assignments
func NewAssignmentsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "allocation_assignments_total",
		Help: "Total number of orders successfully assigned to a vendor",
	})
}

// NewAllocationFailuresTotal returns a Prometheus counter vector for allocation failures by reason
func NewAllocationFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_failures_total",
		Help: "Total number of allocation attempts that found no vendor, by reason",
	}, []string{"reason"})
}

// NewNotifyFailuresTotal returns a Prometheus counter for failed vendor notifications
func NewNotifyFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "allocation_notify_failures_total",
		Help: "Total number of vendor notifications that could not be delivered",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
