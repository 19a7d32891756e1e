package tokenomics

import (
	"context"

	"github.com/gogo/protobuf/proto"
)

// Event is an observation record emitted by every value moving or
// governance operation. Events are protobuf messages so that they can be
// persisted in the audit log next to the models.
type Event interface {
	proto.Message

	// EventKind returns the name of the event, for example
	// "vault/released".
	EventKind() string
}

// EventSink collects events emitted during the execution of a single
// transaction.
type EventSink interface {
	Emit(Event)
}

// EventBuffer is an EventSink keeping all emitted events in memory, in
// emission order.
type EventBuffer struct {
	events []Event
}

var _ EventSink = (*EventBuffer)(nil)

// Emit implements EventSink.
func (b *EventBuffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Events returns all collected events.
func (b *EventBuffer) Events() []Event {
	return b.events
}

// WithEventSink returns a context that forwards all emitted events to given
// sink.
func WithEventSink(ctx Context, sink EventSink) Context {
	return context.WithValue(ctx, contextKeyEvents, sink)
}

// Emit sends the event to the sink attached to the context. Without a sink
// the event is dropped.
func Emit(ctx Context, e Event) {
	if sink, ok := ctx.Value(contextKeyEvents).(EventSink); ok {
		sink.Emit(e)
	}
}
