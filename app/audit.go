package app

import (
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// AuditRecord is a single event of a committed transaction, as persisted
// in the audit log.
type AuditRecord struct {
	Seq    uint64              `protobuf:"varint,1,opt,name=seq,proto3" json:"seq"`
	Time   tokenomics.UnixTime `protobuf:"varint,2,opt,name=time,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"time"`
	Path   string              `protobuf:"bytes,3,opt,name=path,proto3" json:"path"`
	Signer tokenomics.Address  `protobuf:"bytes,4,opt,name=signer,proto3,casttype=github.com/iov-one/tokenomics.Address" json:"signer,omitempty"`
	Kind   string              `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind"`
	// Payload is the JSON serialized event.
	Payload []byte `protobuf:"bytes,6,opt,name=payload,proto3" json:"-"`
}

var _ orm.Model = (*AuditRecord)(nil)

func (m *AuditRecord) Reset()         { *m = AuditRecord{} }
func (m *AuditRecord) String() string { return proto.CompactTextString(m) }
func (*AuditRecord) ProtoMessage()    {}

func (m *AuditRecord) Validate() error {
	if m.Seq == 0 {
		return errors.Wrap(errors.ErrModel, "missing sequence")
	}
	if m.Kind == "" {
		return errors.Wrap(errors.ErrModel, "missing kind")
	}
	if !json.Valid(m.Payload) {
		return errors.Wrap(errors.ErrModel, "payload is not JSON")
	}
	return nil
}

// MarshalJSON inlines the payload.
func (m *AuditRecord) MarshalJSON() ([]byte, error) {
	type record AuditRecord
	return json.Marshal(struct {
		*record
		Event json.RawMessage `json:"event"`
	}{
		record: (*record)(m),
		Event:  m.Payload,
	})
}

// AuditLog is an append only, ordered log of all events emitted by
// committed transactions.
type AuditLog struct {
	bucket orm.Bucket
	seq    orm.Sequence
}

// NewAuditLog returns the audit log using the default bucket.
func NewAuditLog() AuditLog {
	return AuditLog{
		bucket: orm.NewBucket("audit"),
		seq:    orm.NewSequence("audit", "seq"),
	}
}

// Append stores all events in emission order.
func (l AuditLog) Append(db tokenomics.KVStore, at tokenomics.UnixTime, tx tokenomics.Tx, signer tokenomics.Address, events []tokenomics.Event) error {
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return errors.Wrapf(errors.ErrModel, "serialize %s event: %s", e.EventKind(), err)
		}
		seq, err := l.seq.NextInt(db)
		if err != nil {
			return errors.Wrap(err, "audit sequence")
		}
		rec := AuditRecord{
			Seq:     seq,
			Time:    at,
			Path:    tokenomics.GetPath(tx),
			Signer:  signer,
			Kind:    e.EventKind(),
			Payload: payload,
		}
		if err := l.bucket.Put(db, orm.EncodeSequence(seq), &rec); err != nil {
			return errors.Wrap(err, "audit record")
		}
	}
	return nil
}

// List returns at most limit records with a sequence greater than after.
// A non-positive limit returns all records.
func (l AuditLog) List(db tokenomics.ReadOnlyKVStore, after uint64, limit int) ([]*AuditRecord, error) {
	var out []*AuditRecord
	errLimit := errors.Wrap(errors.ErrState, "limit reached")
	err := l.bucket.Visit(db, func(key, raw []byte) error {
		seq, err := orm.DecodeSequence(key)
		if err != nil {
			return err
		}
		if seq <= after {
			return nil
		}
		if limit > 0 && len(out) == limit {
			return errLimit
		}
		var rec AuditRecord
		if err := orm.Unmarshal(raw, &rec); err != nil {
			return err
		}
		out = append(out, &rec)
		return nil
	})
	if err != nil && err != errLimit {
		return nil, err
	}
	return out, nil
}
