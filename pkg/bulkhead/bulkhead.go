package bulkhead

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vnykmshr/gobulkhead/pkg/common/validation"
)

// Bulkhead bounds the number of operations that may execute concurrently.
// Callers ask for admission with IsCallPermitted, run their guarded work
// only on a true result, and report completion with OnComplete. Capacity
// can be changed at runtime with ChangeConfig without disturbing in-flight
// calls.
type Bulkhead struct {
	name   string
	pool   *permitPool
	config atomic.Pointer[Config]
	events *EventPublisher

	// resizeMu serializes ChangeConfig calls so two concurrent resizes
	// cannot double-count the same capacity delta. The admission path
	// never takes it.
	resizeMu sync.Mutex
}

// New creates a bulkhead with the default configuration.
func New(name string) (*Bulkhead, error) {
	return NewWithConfig(name, DefaultConfig())
}

// NewWithConfig creates a bulkhead with the given configuration.
func NewWithConfig(name string, cfg Config) (*Bulkhead, error) {
	if err := validation.ValidateNotEmpty("bulkhead", "name", name); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Bulkhead{
		name:   name,
		pool:   newPermitPool(cfg.MaxConcurrentCalls),
		events: newEventPublisher(),
	}
	c := cfg
	b.config.Store(&c)
	return b, nil
}

// NewWithSupplier creates a bulkhead from a configuration supplier.
// A nil supplier falls back to the default configuration.
func NewWithSupplier(name string, supplier func() Config) (*Bulkhead, error) {
	if supplier == nil {
		return New(name)
	}
	return NewWithConfig(name, supplier())
}

// IsCallPermitted reports whether a call may proceed. It consumes one
// permit on success; the caller must then make exactly one matching
// OnComplete call when the guarded work finishes. If the bulkhead is
// saturated and MaxWaitTime is positive, the caller blocks up to that long
// for a permit, queued fairly behind earlier waiters.
//
// A false return is a normal outcome, not a failure.
func (b *Bulkhead) IsCallPermitted() bool {
	return b.IsCallPermittedContext(context.Background())
}

// IsCallPermittedContext is IsCallPermitted with a cancelable wait.
// Cancellation while blocked resolves as a rejection.
func (b *Bulkhead) IsCallPermittedContext(ctx context.Context) bool {
	cfg := b.config.Load()
	permitted := b.pool.tryAcquire(ctx, cfg.MaxWaitTime)
	if permitted {
		b.publish(CallPermitted)
	} else {
		b.publish(CallRejected)
	}
	return permitted
}

// OnComplete signals that a permitted call has finished, returning its
// permit. Calling it without a prior successful admission corrupts the
// permit accounting; this contract is not enforced internally.
func (b *Bulkhead) OnComplete() {
	b.pool.release(1)
	b.publish(CallFinished)
}

// ChangeConfig replaces the active configuration at runtime.
//
// Shrinking blocks the calling goroutine, uninterruptibly, until enough
// in-flight calls complete to cover the capacity reduction; admission and
// completion traffic proceeds independently throughout. If in-flight calls
// never complete the shrink never returns - a liveness caveat, not a
// deadlock. When resizes overlap in quick succession, which blocked resize
// receives freed permits first follows queue order but is otherwise
// unspecified.
//
// Growing and wait-time-only changes return immediately.
func (b *Bulkhead) ChangeConfig(newConfig Config) error {
	if err := newConfig.Validate(); err != nil {
		return err
	}

	b.resizeMu.Lock()
	defer b.resizeMu.Unlock()

	delta := newConfig.MaxConcurrentCalls - b.config.Load().MaxConcurrentCalls
	switch {
	case delta < 0:
		b.pool.forceAcquire(-delta)
		b.pool.shrinkCapacity(-delta)
	case delta > 0:
		b.pool.grow(delta)
	}

	cfg := newConfig
	b.config.Store(&cfg)
	return nil
}

// Name returns the bulkhead's name.
func (b *Bulkhead) Name() string {
	return b.name
}

// Config returns the currently active configuration.
func (b *Bulkhead) Config() Config {
	return *b.config.Load()
}

// Metrics returns an instantaneous view of the bulkhead's state.
func (b *Bulkhead) Metrics() Metrics {
	return Metrics{bulkhead: b}
}

// Events returns the bulkhead's event publisher.
func (b *Bulkhead) Events() *EventPublisher {
	return b.events
}

func (b *Bulkhead) String() string {
	return fmt.Sprintf("Bulkhead '%s'", b.name)
}

func (b *Bulkhead) publish(t EventType) {
	b.events.processor.Publish(t, func() Event {
		return Event{
			Type:         t,
			BulkheadName: b.name,
			CreationTime: time.Now(),
		}
	})
}

// Metrics is a read-only snapshot source for a bulkhead. Both gauges are
// instantaneous and may be stale immediately after being read.
type Metrics struct {
	bulkhead *Bulkhead
}

// AvailableConcurrentCalls returns the number of permits currently free.
func (m Metrics) AvailableConcurrentCalls() int {
	return m.bulkhead.pool.availablePermits()
}

// MaxAllowedConcurrentCalls returns the active concurrency ceiling.
func (m Metrics) MaxAllowedConcurrentCalls() int {
	return m.bulkhead.Config().MaxConcurrentCalls
}
