// Package metrics provides Prometheus instrumentation for gobulkhead components.
//
// # Quick Start
//
// Create a bulkhead with metrics enabled and expose them via HTTP:
//
//	bh, err := bulkhead.NewWithMetrics("payments", bulkhead.DefaultConfig(), metrics.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	bh, err := bulkhead.NewWithMetrics("payments", bulkhead.DefaultConfig(), config)
//
// # Available Metrics
//
//   - gobulkhead_bulkhead_calls_permitted_total: Total number of calls admitted
//   - gobulkhead_bulkhead_calls_rejected_total: Total number of calls rejected
//   - gobulkhead_bulkhead_calls_finished_total: Total number of permitted calls that completed
//   - gobulkhead_bulkhead_permits_available: Number of permits currently available
//   - gobulkhead_bulkhead_max_concurrent_calls: Currently active concurrency ceiling
//
// All metrics carry a bulkhead_name label.
//
// The gauges are instantaneous observations of the bulkhead's own metrics
// view; no windowing or historical aggregation happens in this package.
// Collection is driven entirely by the bulkhead's event stream: no
// background goroutines or timers.
package metrics
