package cash

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
)

const maxMemoSize int = 128

// SendMsg transfers value between two accounts. Sending to an extension
// account (the distributor or the vault) is how value is deposited.
type SendMsg struct {
	Source      tokenomics.Address `json:"source"`
	Destination tokenomics.Address `json:"destination"`
	Amount      coin.Amount        `json:"amount"`
	Memo        string             `json:"memo,omitempty"`
}

var _ tokenomics.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	if m.Amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	return nil
}
