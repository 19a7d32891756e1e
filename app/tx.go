package app

import (
	"bytes"
	"encoding/json"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Tx is the JSON envelope every transaction is submitted in.
//
//   {"signer": "<address>", "path": "vault/release", "msg": {...}}
//
// The signer is trusted as is. Verifying the origin of a transaction is the
// job of whoever submits it to the application.
type Tx struct {
	Signer tokenomics.Address `json:"signer,omitempty"`
	Path   string             `json:"path"`
	Msg    json.RawMessage    `json:"msg"`
}

var _ tokenomics.Tx = (*Tx)(nil)

// NewTx wraps given message into a transaction signed by signer.
func NewTx(signer tokenomics.Address, msg tokenomics.Msg) (*Tx, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &Tx{Signer: signer, Path: msg.Path(), Msg: raw}, nil
}

// DecodeTx parses a single JSON encoded transaction.
func DecodeTx(raw []byte) (*Tx, error) {
	var tx Tx
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode transaction: %s", err)
	}
	if tx.Path == "" {
		return nil, errors.Wrap(errors.ErrMsg, "missing path")
	}
	if len(tx.Signer) != 0 {
		if err := tx.Signer.Validate(); err != nil {
			return nil, errors.Wrap(err, "signer")
		}
	}
	return &tx, nil
}

// MsgPath implements tokenomics.Tx.
func (tx *Tx) MsgPath() string {
	return tx.Path
}

// DecodeMsg implements tokenomics.Tx. Unknown message fields are rejected.
func (tx *Tx) DecodeMsg(dst tokenomics.Msg) error {
	if len(tx.Msg) == 0 {
		return errors.Wrap(errors.ErrMsg, "empty message")
	}
	dec := json.NewDecoder(bytes.NewReader(tx.Msg))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(errors.ErrMsg, err.Error())
	}
	return nil
}
