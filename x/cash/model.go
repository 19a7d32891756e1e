package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// Wallet is the balance of a single account.
type Wallet struct {
	// Balance is the big endian encoded amount of base units.
	Balance []byte `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ orm.Model = (*Wallet)(nil)

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

// Validate ensures the balance can be decoded.
func (m *Wallet) Validate() error {
	_, err := coin.AmountFromBytes(m.Balance)
	return errors.Wrap(err, "balance")
}

// Amount returns the decoded balance.
func (m *Wallet) Amount() (coin.Amount, error) {
	return coin.AmountFromBytes(m.Balance)
}

// NewWalletBucket returns the bucket keeping all wallets, keyed by the
// account address.
func NewWalletBucket() orm.Bucket {
	return orm.NewBucket("cash")
}
