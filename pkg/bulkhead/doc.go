/*
Package bulkhead provides concurrency-bounding admission control for Go
applications.

A bulkhead bounds how many operations may be in flight simultaneously. Each
admitted call holds one permit from a fixed pool until it reports
completion; when the pool is empty, new callers are rejected immediately or
after a bounded, fairly-queued wait.

Basic usage:

	bh, err := bulkhead.NewWithConfig("payments", bulkhead.Config{
		MaxConcurrentCalls: 10,
		MaxWaitTime:        0, // reject immediately when saturated
	})
	if err != nil {
		log.Fatal(err)
	}

	if !bh.IsCallPermitted() {
		return errors.New("payments bulkhead full")
	}
	defer bh.OnComplete()
	// Do the guarded work

Admission Protocol:

Admission and completion are separate calls rather than a callback wrapper,
so the bulkhead can guard any unit of work, including work that spans
goroutines or suspension points. The contract is strict: proceed only on a
true result, and make exactly one OnComplete call per successful admission.
A false result is a normal outcome, never an error.

Bounded Waiting:

With a positive MaxWaitTime, a saturated admission request blocks until a
permit frees up or the wait elapses. Blocked callers are served in strict
first-come-first-served order, and callers that do not wish to wait cannot
jump the queue, so long-waiting callers never starve. Use
IsCallPermittedContext to make the wait cancelable; cancellation resolves
as a rejection.

Runtime Reconfiguration:

ChangeConfig replaces the active configuration while traffic flows. Growth
takes effect immediately. A shrink blocks the reconfiguring goroutine until
enough in-flight calls complete to cover the reduction; the admission path
continues independently the whole time.

	// Tighten from 10 to 2 concurrent calls; returns once 8 permits are back
	err := bh.ChangeConfig(bulkhead.Config{MaxConcurrentCalls: 2})

For cron-driven capacity calendars, see the schedule package.

Observability:

Admission outcomes are published as events, synchronously and in
registration order:

	bh.Events().
		OnCallRejected(func(e bulkhead.Event) {
			log.Printf("%s rejected a call", e.BulkheadName)
		})

When no consumer is registered for an event type, the event value is never
constructed, so an unobserved bulkhead pays nothing for the hook. The
Metrics view exposes the two instantaneous gauges
(AvailableConcurrentCalls, MaxAllowedConcurrentCalls); NewWithMetrics and
Instrument bridge them to Prometheus.

Concurrency:

All methods are safe for concurrent use. Only a saturated admission with a
positive wait time and a shrinking ChangeConfig ever block; every other
operation is non-blocking. The resize lock is never taken on the admission
path, so a slow shrink cannot deadlock or delay admissions.
*/
package bulkhead
