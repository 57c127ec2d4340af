// Package metrics provides Prometheus instrumentation for gopace components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopace components.
type Registry struct {
	// Pacing Metrics
	PaceRequests *prometheus.CounterVec
	PaceWaitTime *prometheus.HistogramVec
	PaceInterval *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gopace components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		PaceRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopace",
				Subsystem: "pacer",
				Name:      "requests_total",
				Help:      "Total number of calls paced through a limiter",
			},
			[]string{"limiter_type", "limiter_name"},
		),

		PaceWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopace",
				Subsystem: "pacer",
				Name:      "wait_duration_seconds",
				Help:      "Time spent blocked waiting for the next call slot",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_type", "limiter_name"},
		),

		PaceInterval: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopace",
				Subsystem: "pacer",
				Name:      "interval_seconds",
				Help:      "Currently configured minimum interval between calls",
			},
			[]string{"limiter_type", "limiter_name"},
		),
	}
}
