package bulkhead

import (
	"context"
	"sync"
	"time"
)

// permitWaiter is one blocked acquisition in the pool's FIFO queue.
type permitWaiter struct {
	n     int           // number of permits needed
	ready chan struct{} // closed under the pool lock when granted
}

// permitPool is a fair counting permit store. Permits are granted to blocked
// waiters in strict arrival order: the head waiter blocks everyone behind it
// until it can be satisfied, and a non-blocking acquire fails while any
// waiter is queued. A plain atomic counter cannot provide this ordering.
type permitPool struct {
	mu        sync.Mutex
	capacity  int
	available int
	waiters   []*permitWaiter // index 0 is the oldest
}

func newPermitPool(capacity int) *permitPool {
	return &permitPool{
		capacity:  capacity,
		available: capacity,
	}
}

// tryAcquire attempts to take one permit. With wait == 0 it never blocks.
// With wait > 0 the caller suspends until a permit is granted, the wait
// elapses, or ctx is done; expiry and cancellation both resolve as false
// with no net effect on the permit count. ctx may be nil.
func (p *permitPool) tryAcquire(ctx context.Context, wait time.Duration) bool {
	var done <-chan struct{}
	if ctx != nil {
		done = ctx.Done()
		select {
		case <-done:
			return false
		default:
		}
	}

	p.mu.Lock()
	if len(p.waiters) == 0 && p.available > 0 {
		p.available--
		p.mu.Unlock()
		return true
	}
	if wait == 0 {
		p.mu.Unlock()
		return false
	}

	w := &permitWaiter{n: 1, ready: make(chan struct{})}
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-w.ready:
		return true
	case <-timer.C:
		return p.abandon(w)
	case <-done:
		return p.abandon(w)
	}
}

// abandon removes w from the queue after its wait expired or was canceled.
// If a grant won the race, the permit goes back to the pool so the failed
// acquisition leaves no trace.
func (p *permitPool) abandon(w *permitWaiter) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, queued := range p.waiters {
		if queued == w {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			return false
		}
	}
	p.releaseLocked(w.n)
	return false
}

// release returns n permits to the pool, waking queued waiters in order.
func (p *permitPool) release(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.releaseLocked(n)
}

func (p *permitPool) releaseLocked(n int) {
	p.available += n
	if p.available > p.capacity {
		// Release without a matching acquisition is outside the caller
		// contract; clamp so 0 <= available <= capacity stays observable.
		p.available = p.capacity
	}
	p.notifyLocked()
}

// forceAcquire removes n permits from circulation, blocking uninterruptibly
// until they are free. It queues behind existing waiters like any other
// acquisition. Used by capacity shrink only.
func (p *permitPool) forceAcquire(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	if len(p.waiters) == 0 && p.available >= n {
		p.available -= n
		p.mu.Unlock()
		return
	}
	w := &permitWaiter{n: n, ready: make(chan struct{})}
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()
	<-w.ready
}

// grow raises total capacity by n and hands the new permits to waiters.
func (p *permitPool) grow(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.capacity += n
	p.available += n
	p.notifyLocked()
}

// shrinkCapacity lowers total capacity by n. The matching permits must
// already have been removed via forceAcquire.
func (p *permitPool) shrinkCapacity(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.capacity -= n
}

func (p *permitPool) availablePermits() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

func (p *permitPool) totalCapacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity
}

// notifyLocked grants permits to waiters in FIFO order, stopping at the
// first waiter that cannot be satisfied. Skipping ahead would let younger
// waiters starve the head. Must be called with p.mu held.
func (p *permitPool) notifyLocked() {
	for len(p.waiters) > 0 {
		w := p.waiters[0]
		if p.available < w.n {
			return
		}
		p.available -= w.n
		p.waiters = p.waiters[1:]
		close(w.ready)
	}
}
