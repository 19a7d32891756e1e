package allowlist

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

const pkgName = "allowlist"

// Configuration is the registry configuration stored with gconf.
type Configuration struct {
	// Admin manages the members and the configuration.
	Admin tokenomics.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"admin"`
	// MaxSize is the maximum number of members.
	MaxSize uint32 `protobuf:"varint,2,opt,name=max_size,json=maxSize,proto3" json:"max_size"`
}

var _ orm.Model = (*Configuration)(nil)

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (m *Configuration) Validate() error {
	return errors.Wrap(m.Admin.Validate(), "admin")
}

// Member is a single account of the set. Position defines the listing
// order.
type Member struct {
	Address  tokenomics.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"address"`
	Position uint64             `protobuf:"varint,2,opt,name=position,proto3" json:"position"`
}

var _ orm.Model = (*Member)(nil)

func (m *Member) Reset()         { *m = Member{} }
func (m *Member) String() string { return proto.CompactTextString(m) }
func (*Member) ProtoMessage()    {}

func (m *Member) Validate() error {
	if err := m.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if m.Position == 0 {
		return errors.Wrap(errors.ErrModel, "missing position")
	}
	return nil
}

// newMemberBucket returns the bucket of members keyed by address.
func newMemberBucket() orm.Bucket {
	return orm.NewBucket("alist")
}

// newOrderBucket returns the bucket of members keyed by position.
func newOrderBucket() orm.Bucket {
	return orm.NewBucket("alist_ord")
}
