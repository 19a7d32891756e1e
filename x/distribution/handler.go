package distribution

import (
	"fmt"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// RegisterRoutes registers handlers for all distribution messages.
// Parameter updates are handled by given governance implementation.
func RegisterRoutes(r tokenomics.Registry, ctrl *Controller, gov Governance) {
	r.Handle(pathBurnMsg, &burnHandler{ctrl: ctrl, msg: func() tokenomics.Msg { return &BurnMsg{} }})
	r.Handle(pathBurnAndReleaseMsg, &burnHandler{ctrl: ctrl, msg: func() tokenomics.Msg { return &BurnAndReleaseMsg{} }})
	r.Handle(pathBurnAndReserveReleaseMsg, &burnAndReserveReleaseHandler{ctrl: ctrl})
	r.Handle(pathClaimMsg, &claimHandler{ctrl: ctrl})
	r.Handle(pathClaimAndBurnMsg, &claimAndBurnHandler{ctrl: ctrl})

	r.Handle(pathUpdateOwnerMsg, &updateHandler{gov: gov, msg: func() updateMsg { return &UpdateOwnerMsg{} }})
	r.Handle(pathUpdateFoundationMsg, &updateHandler{gov: gov, msg: func() updateMsg { return &UpdateFoundationMsg{} }})
	r.Handle(pathUpdateBurnRatioMsg, &updateHandler{gov: gov, msg: func() updateMsg { return &UpdateBurnRatioMsg{} }})
	r.Handle(pathUpdateReleaseRatioMsg, &updateHandler{gov: gov, msg: func() updateMsg { return &UpdateReleaseRatioMsg{} }})
	r.Handle(pathQueueUpdateMsg, &queueUpdateHandler{gov: gov})
	r.Handle(pathExecuteUpdateMsg, &executeUpdateHandler{gov: gov})
}

// burnHandler handles both aliases of the ratio driven distribution.
type burnHandler struct {
	ctrl *Controller
	msg  func() tokenomics.Msg
}

func (h *burnHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	if err := tokenomics.LoadMsg(tx, h.msg()); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *burnHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	if err := tokenomics.LoadMsg(tx, h.msg()); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	split, err := h.ctrl.Burn(ctx, db)
	if err != nil {
		return nil, err
	}
	res := tokenomics.DeliverResult{
		Log: fmt.Sprintf("burned %s, released %s, reserve top-up %s", split.Burned, split.Released(), split.TopUp),
	}
	return &res, nil
}

type burnAndReserveReleaseHandler struct {
	ctrl *Controller
}

func (h *burnAndReserveReleaseHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg BurnAndReserveReleaseMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *burnAndReserveReleaseHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg BurnAndReserveReleaseMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.BurnAndReserveRelease(ctx, db, msg.Burn, msg.To, msg.Release); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

type claimHandler struct {
	ctrl *Controller
}

func (h *claimHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg ClaimMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *claimHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg ClaimMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Claim(ctx, db, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

type claimAndBurnHandler struct {
	ctrl *Controller
}

func (h *claimAndBurnHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg ClaimAndBurnMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *claimAndBurnHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg ClaimAndBurnMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.ClaimAndBurn(ctx, db, msg.To, msg.Claim, msg.Burn); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

// updateHandler handles all direct parameter updates.
type updateHandler struct {
	gov Governance
	msg func() updateMsg
}

func (h *updateHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	if err := tokenomics.LoadMsg(tx, h.msg()); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *updateHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	msg := h.msg()
	if err := tokenomics.LoadMsg(tx, msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.gov.Update(ctx, db, msg.update()); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}

type queueUpdateHandler struct {
	gov Governance
}

func (h *queueUpdateHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg QueueUpdateMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *queueUpdateHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg QueueUpdateMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.gov.Queue(ctx, db, msg.Update, msg.Eta); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{Data: []byte(msg.Update.ActionID())}, nil
}

type executeUpdateHandler struct {
	gov Governance
}

func (h *executeUpdateHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg ExecuteUpdateMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &tokenomics.CheckResult{}, nil
}

func (h *executeUpdateHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg ExecuteUpdateMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.gov.Execute(ctx, db, msg.Update, msg.Eta); err != nil {
		return nil, err
	}
	return &tokenomics.DeliverResult{}, nil
}
