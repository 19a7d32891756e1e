package utils

import (
	tokenomics "github.com/iov-one/tokenomics"
)

// EventCollector attaches an event sink to the context and, only if the
// processing succeeds, copies all collected events into the result.
// Events of failed transactions are dropped together with their state
// changes.
type EventCollector struct{}

var _ tokenomics.Decorator = EventCollector{}

// NewEventCollector creates an EventCollector decorator
func NewEventCollector() EventCollector {
	return EventCollector{}
}

// Check does not collect, nothing is emitted while checking.
func (EventCollector) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Checker) (*tokenomics.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver collects all events emitted by the next handler.
func (EventCollector) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Deliverer) (*tokenomics.DeliverResult, error) {
	var buf tokenomics.EventBuffer
	res, err := next.Deliver(tokenomics.WithEventSink(ctx, &buf), db, tx)
	if err != nil {
		return nil, err
	}
	res.Events = append(res.Events, buf.Events()...)
	return res, nil
}
