// Package metrics provides Prometheus instrumentation for gobulkhead components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gobulkhead components.
type Registry struct {
	// Admission Metrics
	CallsPermitted *prometheus.CounterVec
	CallsRejected  *prometheus.CounterVec
	CallsFinished  *prometheus.CounterVec

	// Capacity Gauges
	PermitsAvailable   *prometheus.GaugeVec
	MaxConcurrentCalls *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gobulkhead components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		CallsPermitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobulkhead",
				Subsystem: "bulkhead",
				Name:      "calls_permitted_total",
				Help:      "Total number of calls admitted by the bulkhead",
			},
			[]string{"bulkhead_name"},
		),

		CallsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobulkhead",
				Subsystem: "bulkhead",
				Name:      "calls_rejected_total",
				Help:      "Total number of calls rejected by the bulkhead",
			},
			[]string{"bulkhead_name"},
		),

		CallsFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobulkhead",
				Subsystem: "bulkhead",
				Name:      "calls_finished_total",
				Help:      "Total number of permitted calls that completed",
			},
			[]string{"bulkhead_name"},
		),

		PermitsAvailable: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobulkhead",
				Subsystem: "bulkhead",
				Name:      "permits_available",
				Help:      "Number of permits currently available",
			},
			[]string{"bulkhead_name"},
		),

		MaxConcurrentCalls: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobulkhead",
				Subsystem: "bulkhead",
				Name:      "max_concurrent_calls",
				Help:      "Currently active concurrency ceiling",
			},
			[]string{"bulkhead_name"},
		),
	}
}
