package tokenomics

import (
	"github.com/iov-one/tokenomics/errors"
)

// Msg is message for the ledger to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	// Validate performs a stateless check of the message content.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_/]+
	Path() string
}

// Tx represent the data sent from the user to the ledger. It includes the
// actual message, along with information needed to authenticate the sender
// and anything else needed to pass through middleware.
type Tx interface {
	// MsgPath returns the path of the carried message.
	MsgPath() string

	// DecodeMsg decodes the carried message into given destination.
	DecodeMsg(dst Msg) error
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, dst Msg) error {
	if tx.MsgPath() != dst.Path() {
		return errors.Wrapf(errors.ErrMsg, "want %q message, got %q", dst.Path(), tx.MsgPath())
	}
	if err := tx.DecodeMsg(dst); err != nil {
		return errors.Wrap(err, "decode msg")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "invalid msg")
	}
	return nil
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	if p := tx.MsgPath(); p != "" {
		return p
	}
	return "(missing)"
}
