package bulkhead

import (
	"time"

	"github.com/vnykmshr/gobulkhead/pkg/common/events"
)

// EventType identifies the kind of a bulkhead event.
type EventType int

const (
	// CallPermitted is published when an admission request succeeds.
	CallPermitted EventType = iota

	// CallRejected is published when an admission request fails.
	CallRejected

	// CallFinished is published when a permitted call completes.
	CallFinished
)

func (t EventType) String() string {
	switch t {
	case CallPermitted:
		return "CallPermitted"
	case CallRejected:
		return "CallRejected"
	case CallFinished:
		return "CallFinished"
	default:
		return "Unknown"
	}
}

// Event describes a single admission outcome or completion.
type Event struct {
	Type         EventType
	BulkheadName string
	CreationTime time.Time
}

// EventConsumer receives bulkhead events.
type EventConsumer func(Event)

// EventPublisher registers consumers for bulkhead events. Registration is
// additive only; consumers for one event type run in registration order,
// synchronously on the goroutine that triggered the event. A slow consumer
// therefore delays the admission or completion path that published it.
type EventPublisher struct {
	processor *events.Processor[EventType, Event]
}

func newEventPublisher() *EventPublisher {
	return &EventPublisher{
		processor: events.NewProcessor[EventType, Event](),
	}
}

// OnCallPermitted registers a consumer for CallPermitted events.
// It returns the publisher so registrations can be chained.
func (p *EventPublisher) OnCallPermitted(fn EventConsumer) *EventPublisher {
	p.processor.RegisterConsumer(CallPermitted, events.Consumer[Event](fn))
	return p
}

// OnCallRejected registers a consumer for CallRejected events.
// It returns the publisher so registrations can be chained.
func (p *EventPublisher) OnCallRejected(fn EventConsumer) *EventPublisher {
	p.processor.RegisterConsumer(CallRejected, events.Consumer[Event](fn))
	return p
}

// OnCallFinished registers a consumer for CallFinished events.
// It returns the publisher so registrations can be chained.
func (p *EventPublisher) OnCallFinished(fn EventConsumer) *EventPublisher {
	p.processor.RegisterConsumer(CallFinished, events.Consumer[Event](fn))
	return p
}
