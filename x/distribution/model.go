package distribution

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// Address is the account of the reward pool.
var Address = tokenomics.NewCondition("distribution", "pool", nil).Address()

var stateKey = []byte("state")

// Roles that can be granted the authority to change parameters.
const (
	RoleOwner      = "owner"
	RoleFoundation = "foundation"
)

// Trigger policies of the ratio driven burn.
const (
	TriggerOwner  = "owner"
	TriggerAnyone = "anyone"
)

// Distributor is the persisted state of the reward pool. The held balance
// is the cash balance of Address.
type Distributor struct {
	// Owner can pay out of the pool and transfer the ownership.
	Owner tokenomics.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"owner"`
	// Foundation receives the release share.
	Foundation tokenomics.Address `protobuf:"bytes,2,opt,name=foundation,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"foundation"`
	// BurnRatio is the share of the held balance sent to the burn sink.
	BurnRatio coin.BasisPoints `protobuf:"varint,3,opt,name=burn_ratio,json=burnRatio,proto3,casttype=github.com/iov-one/tokenomics/coin.BasisPoints" json:"burn_ratio"`
	// ReleaseRatio is the share of the held balance released to the
	// foundation.
	ReleaseRatio coin.BasisPoints `protobuf:"varint,4,opt,name=release_ratio,json=releaseRatio,proto3,casttype=github.com/iov-one/tokenomics/coin.BasisPoints" json:"release_ratio"`
	// BurnSink receives the burned value. Defaults to the burn address.
	BurnSink tokenomics.Address `protobuf:"bytes,5,opt,name=burn_sink,json=burnSink,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"burn_sink,omitempty"`
	// Governor is the role allowed to change the foundation and the
	// ratios, either RoleOwner or RoleFoundation.
	Governor string `protobuf:"bytes,6,opt,name=governor,proto3" json:"governor,omitempty"`
	// Trigger is the policy for the ratio driven burn, either
	// TriggerOwner or TriggerAnyone.
	Trigger string `protobuf:"bytes,7,opt,name=trigger,proto3" json:"trigger,omitempty"`
}

var _ orm.Model = (*Distributor)(nil)

func (m *Distributor) Reset()         { *m = Distributor{} }
func (m *Distributor) String() string { return proto.CompactTextString(m) }
func (*Distributor) ProtoMessage()    {}

func (m *Distributor) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Foundation.Validate(); err != nil {
		return errors.Wrap(err, "foundation")
	}
	if err := m.BurnRatio.Validate(); err != nil {
		return errors.Wrap(err, "burn ratio")
	}
	if err := m.ReleaseRatio.Validate(); err != nil {
		return errors.Wrap(err, "release ratio")
	}
	if err := m.BurnSink.Validate(); err != nil {
		return errors.Wrap(err, "burn sink")
	}
	switch m.Governor {
	case RoleOwner, RoleFoundation:
	default:
		return errors.Wrapf(errors.ErrModel, "unknown governor role %q", m.Governor)
	}
	switch m.Trigger {
	case TriggerOwner, TriggerAnyone:
	default:
		return errors.Wrapf(errors.ErrModel, "unknown trigger policy %q", m.Trigger)
	}
	return nil
}

// withDefaults fills in the optional fields.
func (m *Distributor) withDefaults() *Distributor {
	if m.BurnSink == nil {
		m.BurnSink = tokenomics.BurnAddress
	}
	if m.Governor == "" {
		m.Governor = RoleOwner
	}
	if m.Trigger == "" {
		m.Trigger = TriggerOwner
	}
	return m
}

// GovernorAddress returns the address holding the governor role.
func (m *Distributor) GovernorAddress() tokenomics.Address {
	if m.Governor == RoleFoundation {
		return m.Foundation
	}
	return m.Owner
}

// NewBucket returns the bucket holding the distributor singleton.
func NewBucket() orm.Bucket {
	return orm.NewBucket("distr")
}
