package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/event"
)

// StoreMetrics records document-store command latencies.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewStoreMetrics registers the document-store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mongo_command_duration_seconds",
		Help:    "MongoDB command round-trip time in seconds.",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"command", "outcome"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mongo_command_failures_total",
		Help: "Failed MongoDB commands.",
	}, []string{"command"})
	reg.MustRegister(duration, failures)
	return &StoreMetrics{duration: duration, failures: failures}
}

// CommandMonitor returns a driver monitor that feeds these metrics. It is
// safe to attach even when metrics are disabled.
func (m *StoreMetrics) CommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			m.observe(evt.CommandName, "success", evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			m.observe(evt.CommandName, "failure", evt.Duration.Seconds())
			if m != nil && m.failures != nil {
				m.failures.WithLabelValues(normalizeLabel(evt.CommandName)).Inc()
			}
		},
	}
}

func (m *StoreMetrics) observe(command, outcome string, seconds float64) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(command), outcome).Observe(seconds)
}
