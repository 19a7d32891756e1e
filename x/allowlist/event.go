package allowlist

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
)

type AdminChangedEvent struct {
	Admin tokenomics.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"admin"`
}

var _ tokenomics.Event = (*AdminChangedEvent)(nil)

func (m *AdminChangedEvent) Reset()         { *m = AdminChangedEvent{} }
func (m *AdminChangedEvent) String() string { return proto.CompactTextString(m) }
func (*AdminChangedEvent) ProtoMessage()    {}
func (*AdminChangedEvent) EventKind() string {
	return "allowlist/admin_changed"
}

type AddedEvent struct {
	Address tokenomics.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"address"`
}

var _ tokenomics.Event = (*AddedEvent)(nil)

func (m *AddedEvent) Reset()         { *m = AddedEvent{} }
func (m *AddedEvent) String() string { return proto.CompactTextString(m) }
func (*AddedEvent) ProtoMessage()    {}
func (*AddedEvent) EventKind() string {
	return "allowlist/added"
}

type RemovedEvent struct {
	Address tokenomics.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"address"`
}

var _ tokenomics.Event = (*RemovedEvent)(nil)

func (m *RemovedEvent) Reset()         { *m = RemovedEvent{} }
func (m *RemovedEvent) String() string { return proto.CompactTextString(m) }
func (*RemovedEvent) ProtoMessage()    {}
func (*RemovedEvent) EventKind() string {
	return "allowlist/removed"
}

type SizeChangedEvent struct {
	MaxSize uint32 `protobuf:"varint,1,opt,name=max_size,json=maxSize,proto3" json:"max_size"`
}

var _ tokenomics.Event = (*SizeChangedEvent)(nil)

func (m *SizeChangedEvent) Reset()         { *m = SizeChangedEvent{} }
func (m *SizeChangedEvent) String() string { return proto.CompactTextString(m) }
func (*SizeChangedEvent) ProtoMessage()    {}
func (*SizeChangedEvent) EventKind() string {
	return "allowlist/size_changed"
}
