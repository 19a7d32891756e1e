package vault

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
)

// ReleasedEvent is emitted whenever the admin pays out of the reserve.
type ReleasedEvent struct {
	To     tokenomics.Address `protobuf:"bytes,1,opt,name=to,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"to"`
	Amount string             `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*ReleasedEvent)(nil)

func (m *ReleasedEvent) Reset()         { *m = ReleasedEvent{} }
func (m *ReleasedEvent) String() string { return proto.CompactTextString(m) }
func (*ReleasedEvent) ProtoMessage()    {}
func (*ReleasedEvent) EventKind() string {
	return "vault/released"
}

// DepositedEvent is emitted for deposits made through the controller.
type DepositedEvent struct {
	From   tokenomics.Address `protobuf:"bytes,1,opt,name=from,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"from"`
	Amount string             `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*DepositedEvent)(nil)

func (m *DepositedEvent) Reset()         { *m = DepositedEvent{} }
func (m *DepositedEvent) String() string { return proto.CompactTextString(m) }
func (*DepositedEvent) ProtoMessage()    {}
func (*DepositedEvent) EventKind() string {
	return "vault/deposited"
}

// AdminChangedEvent is emitted when the vault admin is replaced.
type AdminChangedEvent struct {
	Previous tokenomics.Address `protobuf:"bytes,1,opt,name=previous,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"previous"`
	Admin    tokenomics.Address `protobuf:"bytes,2,opt,name=admin,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"admin"`
}

var _ tokenomics.Event = (*AdminChangedEvent)(nil)

func (m *AdminChangedEvent) Reset()         { *m = AdminChangedEvent{} }
func (m *AdminChangedEvent) String() string { return proto.CompactTextString(m) }
func (*AdminChangedEvent) ProtoMessage()    {}
func (*AdminChangedEvent) EventKind() string {
	return "vault/admin_changed"
}
