package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenomics/errors"
)

// Model is an object that can be persisted in a bucket.
type Model interface {
	proto.Message
	Validate() error
}

// Marshal serializes given message into its protobuf representation.
func Marshal(m proto.Message) ([]byte, error) {
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", m, err)
	}
	return raw, nil
}

// Unmarshal deserializes protobuf data into given message.
func Unmarshal(raw []byte, m proto.Message) error {
	if err := proto.Unmarshal(raw, m); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", m, err)
	}
	return nil
}
