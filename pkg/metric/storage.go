package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Storage = (*storageMetrics)(nil)

type storageMetrics struct {
	durationHistogram *prometheus.HistogramVec
	failureCounter    *prometheus.CounterVec
}

func newStorageMetrics(registry *promRegistry) *storageMetrics {
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operation_failures_total",
			Help: "Total number of failed document store operations",
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(duration, failures)

	return &storageMetrics{
		durationHistogram: duration,
		failureCounter:    failures,
	}
}

func (m *storageMetrics) ObserveDuration(operation string, duration time.Duration) {
	m.durationHistogram.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *storageMetrics) IncrementFailures(operation string) {
	m.failureCounter.WithLabelValues(operation).Add(1)
}
