// Package events provides a generic kind-filtered synchronous event dispatcher.
//
// A Processor maps event kinds to ordered lists of consumers. Publishing is
// synchronous: consumers run in registration order on the publishing
// goroutine. The event value is built lazily, so publishing with no
// consumers registered for the kind costs a map lookup and nothing else.
package events

import "sync"

// Consumer receives published events of type E.
type Consumer[E any] func(E)

// Processor dispatches events of type E, filtered by a comparable kind K.
// The zero value is not usable; create one with NewProcessor.
//
// Registration is additive only. All methods are safe for concurrent use.
type Processor[K comparable, E any] struct {
	mu        sync.RWMutex
	consumers map[K][]Consumer[E]
}

// NewProcessor creates an empty event processor.
func NewProcessor[K comparable, E any]() *Processor[K, E] {
	return &Processor[K, E]{
		consumers: make(map[K][]Consumer[E]),
	}
}

// RegisterConsumer appends fn to the ordered consumer list for kind.
// Consumers are never de-duplicated or removed.
func (p *Processor[K, E]) RegisterConsumer(kind K, fn Consumer[E]) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.consumers[kind] = append(p.consumers[kind], fn)
}

// HasConsumers reports whether at least one consumer is registered for kind.
func (p *Processor[K, E]) HasConsumers(kind K) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.consumers[kind]) > 0
}

// Publish dispatches an event to every consumer registered for kind, in
// registration order, on the calling goroutine. The event is constructed by
// factory only if at least one consumer exists; otherwise factory is never
// invoked.
//
// Dispatch is inline: a slow consumer delays the caller.
func (p *Processor[K, E]) Publish(kind K, factory func() E) {
	p.mu.RLock()
	// Consumer slices are append-only; the snapshot stays valid after unlock.
	list := p.consumers[kind]
	p.mu.RUnlock()

	if len(list) == 0 {
		return
	}

	event := factory()
	for _, fn := range list {
		fn(event)
	}
}
