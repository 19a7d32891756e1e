package allowlist

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

type SetAdminMsg struct {
	Admin tokenomics.Address `json:"admin"`
}

var _ tokenomics.Msg = (*SetAdminMsg)(nil)

func (SetAdminMsg) Path() string { return "allowlist/set_admin" }

func (m *SetAdminMsg) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}

type AddMsg struct {
	Address tokenomics.Address `json:"address"`
}

var _ tokenomics.Msg = (*AddMsg)(nil)

func (AddMsg) Path() string { return "allowlist/add" }

func (m *AddMsg) Validate() error {
	return errors.Wrap(m.Address.Validate(), "address")
}

type RemoveMsg struct {
	Address tokenomics.Address `json:"address"`
}

var _ tokenomics.Msg = (*RemoveMsg)(nil)

func (RemoveMsg) Path() string { return "allowlist/remove" }

func (m *RemoveMsg) Validate() error {
	return errors.Wrap(m.Address.Validate(), "address")
}

// SetMaxSizeMsg changes the capacity of the set. Zero is a valid size and
// blocks any further addition.
type SetMaxSizeMsg struct {
	MaxSize uint32 `json:"max_size"`
}

var _ tokenomics.Msg = (*SetMaxSizeMsg)(nil)

func (SetMaxSizeMsg) Path() string { return "allowlist/set_max_size" }

func (m *SetMaxSizeMsg) Validate() error { return nil }
