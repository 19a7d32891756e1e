package vault

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// Address is the account holding the reserve. Nobody holds a key for it,
// value leaves it only through Release.
var Address = tokenomics.NewCondition("vault", "reserve", nil).Address()

var stateKey = []byte("state")

// Vault is the persisted configuration of the reserve. The held balance is
// the cash balance of Address and is not duplicated here.
type Vault struct {
	Admin tokenomics.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"admin"`
}

var _ orm.Model = (*Vault)(nil)

func (m *Vault) Reset()         { *m = Vault{} }
func (m *Vault) String() string { return proto.CompactTextString(m) }
func (*Vault) ProtoMessage()    {}

// Validate ensures the admin is set.
func (m *Vault) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}

// NewBucket returns the bucket holding the vault singleton.
func NewBucket() orm.Bucket {
	return orm.NewBucket("vault")
}
