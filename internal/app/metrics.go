package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"aquadrop/internal/metrics"
)

type metricsOut struct {
	dig.Out

	AssignmentsTotal       prometheus.Counter     `name:"allocation_assignments_total"`
	AllocationFailures     *prometheus.CounterVec `name:"allocation_failures_total"`
	NotifyFailuresTotal    prometheus.Counter     `name:"allocation_notify_failures_total"`
	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
}

// provideMetrics registers the domain counters, reusing collectors that are
// already registered so rebuilding a container stays idempotent.
func provideMetrics() (metricsOut, error) {
	assignments, err := registerCounter("allocation_assignments_total", metrics.NewAssignmentsTotal())
	if err != nil {
		return metricsOut{}, err
	}
	failures, err := registerCounterVec("allocation_failures_total", metrics.NewAllocationFailuresTotal())
	if err != nil {
		return metricsOut{}, err
	}
	notifyFailures, err := registerCounter("allocation_notify_failures_total", metrics.NewNotifyFailuresTotal())
	if err != nil {
		return metricsOut{}, err
	}
	rateLimit, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}

	return metricsOut{
		AssignmentsTotal:       assignments,
		AllocationFailures:     failures,
		NotifyFailuresTotal:    notifyFailures,
		RateLimitExceededTotal: rateLimit,
	}, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func registerCounterVec(name string, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
