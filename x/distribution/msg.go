package distribution

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
)

const (
	pathBurnMsg                  = "distribution/burn"
	pathBurnAndReleaseMsg        = "distribution/burn_and_release"
	pathBurnAndReserveReleaseMsg = "distribution/burn_and_reserve_release"
	pathClaimMsg                 = "distribution/claim"
	pathClaimAndBurnMsg          = "distribution/claim_and_burn"
	pathUpdateOwnerMsg           = "distribution/update_owner"
	pathUpdateFoundationMsg      = "distribution/update_foundation"
	pathUpdateBurnRatioMsg       = "distribution/update_burn_ratio"
	pathUpdateReleaseRatioMsg    = "distribution/update_release_ratio"
	pathQueueUpdateMsg           = "distribution/queue_update"
	pathExecuteUpdateMsg         = "distribution/execute_update"
)

// BurnMsg triggers the ratio driven distribution.
type BurnMsg struct{}

func (BurnMsg) Path() string     { return pathBurnMsg }
func (*BurnMsg) Validate() error { return nil }

// BurnAndReleaseMsg triggers the ratio driven distribution.
type BurnAndReleaseMsg struct{}

func (BurnAndReleaseMsg) Path() string     { return pathBurnAndReleaseMsg }
func (*BurnAndReleaseMsg) Validate() error { return nil }

// BurnAndReserveReleaseMsg burns and releases explicit amounts.
type BurnAndReserveReleaseMsg struct {
	Burn    coin.Amount        `json:"burn"`
	To      tokenomics.Address `json:"to"`
	Release coin.Amount        `json:"release"`
}

func (BurnAndReserveReleaseMsg) Path() string { return pathBurnAndReserveReleaseMsg }

func (m *BurnAndReserveReleaseMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Burn.IsZero() && m.Release.IsZero() {
		return errors.Wrap(errors.ErrAmount, "nothing to pay")
	}
	return nil
}

// ClaimMsg pays an explicit amount out of the pool.
type ClaimMsg struct {
	To     tokenomics.Address `json:"to"`
	Amount coin.Amount        `json:"amount"`
}

func (ClaimMsg) Path() string { return pathClaimMsg }

func (m *ClaimMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	return nil
}

// ClaimAndBurnMsg claims and burns explicit amounts in one operation.
type ClaimAndBurnMsg struct {
	To    tokenomics.Address `json:"to"`
	Claim coin.Amount        `json:"claim"`
	Burn  coin.Amount        `json:"burn"`
}

func (ClaimAndBurnMsg) Path() string { return pathClaimAndBurnMsg }

func (m *ClaimAndBurnMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Claim.IsZero() && m.Burn.IsZero() {
		return errors.Wrap(errors.ErrAmount, "nothing to pay")
	}
	return nil
}

// updateMsg is implemented by all messages carrying a single Update.
type updateMsg interface {
	tokenomics.Msg
	update() Update
}

// UpdateOwnerMsg transfers the ownership.
type UpdateOwnerMsg struct {
	Owner tokenomics.Address `json:"owner"`
}

func (UpdateOwnerMsg) Path() string       { return pathUpdateOwnerMsg }
func (m *UpdateOwnerMsg) Validate() error { return m.update().Validate() }
func (m *UpdateOwnerMsg) update() Update {
	return Update{Field: FieldOwner, Address: m.Owner}
}

// UpdateFoundationMsg replaces the foundation address.
type UpdateFoundationMsg struct {
	Foundation tokenomics.Address `json:"foundation"`
}

func (UpdateFoundationMsg) Path() string       { return pathUpdateFoundationMsg }
func (m *UpdateFoundationMsg) Validate() error { return m.update().Validate() }
func (m *UpdateFoundationMsg) update() Update {
	return Update{Field: FieldFoundation, Address: m.Foundation}
}

// UpdateBurnRatioMsg sets the burn ratio.
type UpdateBurnRatioMsg struct {
	Ratio coin.BasisPoints `json:"ratio"`
}

func (UpdateBurnRatioMsg) Path() string       { return pathUpdateBurnRatioMsg }
func (m *UpdateBurnRatioMsg) Validate() error { return m.update().Validate() }
func (m *UpdateBurnRatioMsg) update() Update {
	return Update{Field: FieldBurnRatio, Ratio: m.Ratio}
}

// UpdateReleaseRatioMsg sets the release ratio.
type UpdateReleaseRatioMsg struct {
	Ratio coin.BasisPoints `json:"ratio"`
}

func (UpdateReleaseRatioMsg) Path() string       { return pathUpdateReleaseRatioMsg }
func (m *UpdateReleaseRatioMsg) Validate() error { return m.update().Validate() }
func (m *UpdateReleaseRatioMsg) update() Update {
	return Update{Field: FieldReleaseRatio, Ratio: m.Ratio}
}

// QueueUpdateMsg queues an update in the timelock.
type QueueUpdateMsg struct {
	Update Update              `json:"update"`
	Eta    tokenomics.UnixTime `json:"eta"`
}

func (QueueUpdateMsg) Path() string { return pathQueueUpdateMsg }

func (m *QueueUpdateMsg) Validate() error {
	if err := m.Eta.Validate(); err != nil {
		return errors.Wrap(err, "eta")
	}
	return m.Update.Validate()
}

// ExecuteUpdateMsg applies an update queued in the timelock.
type ExecuteUpdateMsg struct {
	Update Update              `json:"update"`
	Eta    tokenomics.UnixTime `json:"eta"`
}

func (ExecuteUpdateMsg) Path() string { return pathExecuteUpdateMsg }

func (m *ExecuteUpdateMsg) Validate() error {
	if err := m.Eta.Validate(); err != nil {
		return errors.Wrap(err, "eta")
	}
	return m.Update.Validate()
}
