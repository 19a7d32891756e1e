package tokentest

import (
	tokenomics "github.com/iov-one/tokenomics"
)

// Handler is a mock handler that counts its calls and returns preset
// results.
type Handler struct {
	checkCall   int
	CheckResult tokenomics.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult tokenomics.DeliverResult
	DeliverErr    error

	// OnDeliver if set is called on every delivery before returning.
	OnDeliver func(ctx tokenomics.Context, db tokenomics.KVStore) error
}

var _ tokenomics.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	h.deliverCall++
	if h.OnDeliver != nil {
		if err := h.OnDeliver(ctx, db); err != nil {
			return nil, err
		}
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// Decorator is a mock decorator that counts its calls and can fail.
type Decorator struct {
	checkCall int
	CheckErr  error

	deliverCall int
	DeliverErr  error
}

var _ tokenomics.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Checker) (*tokenomics.CheckResult, error) {
	d.checkCall++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Deliverer) (*tokenomics.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}
