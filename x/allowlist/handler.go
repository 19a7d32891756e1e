package allowlist

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// RegisterRoutes registers handlers for all allow list messages.
func RegisterRoutes(r tokenomics.Registry, reg *Registry) {
	r.Handle(SetAdminMsg{}.Path(), &handler{
		newMsg: func() tokenomics.Msg { return &SetAdminMsg{} },
		apply: func(ctx tokenomics.Context, db tokenomics.KVStore, msg tokenomics.Msg) error {
			return reg.SetAdmin(ctx, db, msg.(*SetAdminMsg).Admin)
		},
	})
	r.Handle(AddMsg{}.Path(), &handler{
		newMsg: func() tokenomics.Msg { return &AddMsg{} },
		apply: func(ctx tokenomics.Context, db tokenomics.KVStore, msg tokenomics.Msg) error {
			return reg.Add(ctx, db, msg.(*AddMsg).Address)
		},
	})
	r.Handle(RemoveMsg{}.Path(), &handler{
		newMsg: func() tokenomics.Msg { return &RemoveMsg{} },
		apply: func(ctx tokenomics.Context, db tokenomics.KVStore, msg tokenomics.Msg) error {
			return reg.Remove(ctx, db, msg.(*RemoveMsg).Address)
		},
	})
	r.Handle(SetMaxSizeMsg{}.Path(), &handler{
		newMsg: func() tokenomics.Msg { return &SetMaxSizeMsg{} },
		apply: func(ctx tokenomics.Context, db tokenomics.KVStore, msg tokenomics.Msg) error {
			return reg.SetMaxSize(ctx, db, msg.(*SetMaxSizeMsg).MaxSize)
		},
	})
}

// handler is shared by all messages, as each of them maps to a single
// registry call.
type handler struct {
	newMsg func() tokenomics.Msg
	apply  func(tokenomics.Context, tokenomics.KVStore, tokenomics.Msg) error
}

var _ tokenomics.Handler = (*handler)(nil)

func (h *handler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	if _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *handler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	if err := h.apply(ctx, db, msg); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

func (h *handler) validate(tx tokenomics.Tx) (tokenomics.Msg, error) {
	msg := h.newMsg()
	if err := tokenomics.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return msg, nil
}
