package vault

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
)

// ReleaseMsg pays value out of the reserve.
type ReleaseMsg struct {
	To     tokenomics.Address `json:"to"`
	Amount coin.Amount        `json:"amount"`
}

var _ tokenomics.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return "vault/release"
}

func (m *ReleaseMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if m.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	return nil
}

// UpdateAdminMsg replaces the vault admin.
type UpdateAdminMsg struct {
	Admin tokenomics.Address `json:"admin"`
}

var _ tokenomics.Msg = (*UpdateAdminMsg)(nil)

func (UpdateAdminMsg) Path() string {
	return "vault/update_admin"
}

func (m *UpdateAdminMsg) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}
