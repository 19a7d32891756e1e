package vault

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// RegisterRoutes registers handlers for all vault messages.
func RegisterRoutes(r tokenomics.Registry, ctrl *Controller) {
	r.Handle(ReleaseMsg{}.Path(), &releaseHandler{ctrl: ctrl})
	r.Handle(UpdateAdminMsg{}.Path(), &updateAdminHandler{ctrl: ctrl})
}

type releaseHandler struct {
	ctrl *Controller
}

var _ tokenomics.Handler = (*releaseHandler)(nil)

func (h *releaseHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	if _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *releaseHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Release(ctx, db, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

func (h *releaseHandler) validate(tx tokenomics.Tx) (*ReleaseMsg, error) {
	var msg ReleaseMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type updateAdminHandler struct {
	ctrl *Controller
}

var _ tokenomics.Handler = (*updateAdminHandler)(nil)

func (h *updateAdminHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	if _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *updateAdminHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.UpdateAdmin(ctx, db, msg.Admin); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

func (h *updateAdminHandler) validate(tx tokenomics.Tx) (*UpdateAdminMsg, error) {
	var msg UpdateAdminMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}
