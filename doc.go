/*
Package gobulkhead provides bulkhead-style admission control for Go
applications: bound how many operations run concurrently, reject or queue
the overflow fairly, and resize capacity at runtime.

Core (pkg/bulkhead):
  - bulkhead: the admission primitive (permits, fair waiting, runtime
    resize, events, metrics view)

Supporting packages:
  - schedule: cron-driven capacity calendars
  - metrics: Prometheus instrumentation

Example usage:

	import "github.com/vnykmshr/gobulkhead/pkg/bulkhead"

	bh, _ := bulkhead.NewWithConfig("payments", bulkhead.Config{
		MaxConcurrentCalls: 10,
		MaxWaitTime:        50 * time.Millisecond,
	})

	if bh.IsCallPermitted() {
		defer bh.OnComplete()
		// guarded work
	}
*/
package gobulkhead
