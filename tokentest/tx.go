package tokentest

import (
	"reflect"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Tx represents a transaction carrying a single, already decoded message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg tokenomics.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ tokenomics.Tx = (*Tx)(nil)

// MsgPath implements tokenomics.Tx.
func (tx *Tx) MsgPath() string {
	if tx.Msg == nil {
		return ""
	}
	return tx.Msg.Path()
}

// DecodeMsg copies the carried message into dst. Both must be pointers of
// the same type.
func (tx *Tx) DecodeMsg(dst tokenomics.Msg) error {
	if tx.Err != nil {
		return tx.Err
	}
	src := reflect.ValueOf(tx.Msg)
	dv := reflect.ValueOf(dst)
	if src.Type() != dv.Type() || dv.Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "cannot decode %T into %T", tx.Msg, dst)
	}
	dv.Elem().Set(src.Elem())
	return nil
}

// Msg represents a message that only carries its path.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ tokenomics.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
