package bulkhead

import (
	"github.com/vnykmshr/gobulkhead/pkg/metrics"
)

// NewWithMetrics creates a bulkhead with Prometheus metrics collection.
func NewWithMetrics(name string, cfg Config, metricsConfig metrics.Config) (*Bulkhead, error) {
	b, err := NewWithConfig(name, cfg)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return b, nil
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}
	Instrument(b, registry)

	return b, nil
}

// Instrument attaches a bulkhead to a metrics registry. Counters follow the
// bulkhead's event stream; the capacity gauges are refreshed from the
// metrics view after every event. Instrumentation is additive and cannot be
// detached, like any other event consumer.
func Instrument(b *Bulkhead, registry *metrics.Registry) {
	name := b.Name()
	view := b.Metrics()

	gauges := func() {
		registry.PermitsAvailable.WithLabelValues(name).Set(float64(view.AvailableConcurrentCalls()))
		registry.MaxConcurrentCalls.WithLabelValues(name).Set(float64(view.MaxAllowedConcurrentCalls()))
	}
	gauges()

	b.Events().
		OnCallPermitted(func(Event) {
			registry.CallsPermitted.WithLabelValues(name).Inc()
			gauges()
		}).
		OnCallRejected(func(Event) {
			registry.CallsRejected.WithLabelValues(name).Inc()
			gauges()
		}).
		OnCallFinished(func(Event) {
			registry.CallsFinished.WithLabelValues(name).Inc()
			gauges()
		})
}
