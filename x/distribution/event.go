package distribution

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
)

// DistributedEvent is emitted by the ratio driven burn. Released includes
// the reserve top-up.
type DistributedEvent struct {
	Burned       string             `protobuf:"bytes,1,opt,name=burned,proto3" json:"burned"`
	Released     string             `protobuf:"bytes,2,opt,name=released,proto3" json:"released"`
	To           tokenomics.Address `protobuf:"bytes,3,opt,name=to,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"to"`
	ReserveTopUp string             `protobuf:"bytes,4,opt,name=reserve_top_up,json=reserveTopUp,proto3" json:"reserve_top_up"`
}

var _ tokenomics.Event = (*DistributedEvent)(nil)

func (m *DistributedEvent) Reset()         { *m = DistributedEvent{} }
func (m *DistributedEvent) String() string { return proto.CompactTextString(m) }
func (*DistributedEvent) ProtoMessage()    {}
func (*DistributedEvent) EventKind() string {
	return "distribution/distributed"
}

// BurnedEvent is emitted when an explicit amount is burned.
type BurnedEvent struct {
	Sink   tokenomics.Address `protobuf:"bytes,1,opt,name=sink,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"sink"`
	Amount string             `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*BurnedEvent)(nil)

func (m *BurnedEvent) Reset()         { *m = BurnedEvent{} }
func (m *BurnedEvent) String() string { return proto.CompactTextString(m) }
func (*BurnedEvent) ProtoMessage()    {}
func (*BurnedEvent) EventKind() string {
	return "distribution/burned"
}

// ReleasedEvent is emitted when an explicit amount is released.
type ReleasedEvent struct {
	To     tokenomics.Address `protobuf:"bytes,1,opt,name=to,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"to"`
	Amount string             `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*ReleasedEvent)(nil)

func (m *ReleasedEvent) Reset()         { *m = ReleasedEvent{} }
func (m *ReleasedEvent) String() string { return proto.CompactTextString(m) }
func (*ReleasedEvent) ProtoMessage()    {}
func (*ReleasedEvent) EventKind() string {
	return "distribution/released"
}

// ClaimedEvent is emitted when the owner claims value out of the pool.
type ClaimedEvent struct {
	To     tokenomics.Address `protobuf:"bytes,1,opt,name=to,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"to"`
	Amount string             `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*ClaimedEvent)(nil)

func (m *ClaimedEvent) Reset()         { *m = ClaimedEvent{} }
func (m *ClaimedEvent) String() string { return proto.CompactTextString(m) }
func (*ClaimedEvent) ProtoMessage()    {}
func (*ClaimedEvent) EventKind() string {
	return "distribution/claimed"
}

// ParameterChangedEvent is emitted for every applied governance update.
type ParameterChangedEvent struct {
	Field string `protobuf:"bytes,1,opt,name=field,proto3" json:"field"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value"`
}

var _ tokenomics.Event = (*ParameterChangedEvent)(nil)

func (m *ParameterChangedEvent) Reset()         { *m = ParameterChangedEvent{} }
func (m *ParameterChangedEvent) String() string { return proto.CompactTextString(m) }
func (*ParameterChangedEvent) ProtoMessage()    {}
func (*ParameterChangedEvent) EventKind() string {
	return "distribution/parameter_changed"
}
