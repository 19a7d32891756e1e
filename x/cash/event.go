package cash

import (
	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
)

// TransferredEvent is emitted for every executed SendMsg.
type TransferredEvent struct {
	Source      tokenomics.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"source"`
	Destination tokenomics.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"destination"`
	Amount      string             `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount"`
}

var _ tokenomics.Event = (*TransferredEvent)(nil)

func (m *TransferredEvent) Reset()         { *m = TransferredEvent{} }
func (m *TransferredEvent) String() string { return proto.CompactTextString(m) }
func (*TransferredEvent) ProtoMessage()    {}
func (*TransferredEvent) EventKind() string {
	return "cash/transferred"
}
