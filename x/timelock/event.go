package timelock

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
)

// QueuedEvent is emitted when an entry is queued.
type QueuedEvent struct {
	ActionID string              `protobuf:"bytes,1,opt,name=action_id,json=actionId,proto3" json:"action_id"`
	Eta      tokenomics.UnixTime `protobuf:"varint,2,opt,name=eta,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"eta"`
}

var _ tokenomics.Event = (*QueuedEvent)(nil)

func (m *QueuedEvent) Reset()         { *m = QueuedEvent{} }
func (m *QueuedEvent) String() string { return proto.CompactTextString(m) }
func (*QueuedEvent) ProtoMessage()    {}
func (*QueuedEvent) EventKind() string {
	return "timelock/queued"
}

// ExecutedEvent is emitted when an entry is executed and its action
// applied.
type ExecutedEvent struct {
	ActionID string              `protobuf:"bytes,1,opt,name=action_id,json=actionId,proto3" json:"action_id"`
	Eta      tokenomics.UnixTime `protobuf:"varint,2,opt,name=eta,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"eta"`
}

var _ tokenomics.Event = (*ExecutedEvent)(nil)

func (m *ExecutedEvent) Reset()         { *m = ExecutedEvent{} }
func (m *ExecutedEvent) String() string { return proto.CompactTextString(m) }
func (*ExecutedEvent) ProtoMessage()    {}
func (*ExecutedEvent) EventKind() string {
	return "timelock/executed"
}
