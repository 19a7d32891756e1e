package timelock

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// State is the lifecycle state of an Entry.
type State int32

const (
	StateInvalid  State = 0
	StateQueued   State = 1
	StateExecuted State = 2
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateExecuted:
		return "executed"
	default:
		return "invalid"
	}
}

// Entry is a single queued governance action.
type Entry struct {
	ActionID   string              `protobuf:"bytes,1,opt,name=action_id,json=actionId,proto3" json:"action_id"`
	Eta        tokenomics.UnixTime `protobuf:"varint,2,opt,name=eta,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"eta"`
	State      State               `protobuf:"varint,3,opt,name=state,proto3,casttype=State" json:"state"`
	QueuedAt   tokenomics.UnixTime `protobuf:"varint,4,opt,name=queued_at,json=queuedAt,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"queued_at"`
	ExecutedAt tokenomics.UnixTime `protobuf:"varint,5,opt,name=executed_at,json=executedAt,proto3,casttype=github.com/iov-one/tokenomics.UnixTime" json:"executed_at,omitempty"`
}

var _ orm.Model = (*Entry)(nil)

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

func (m *Entry) Validate() error {
	if err := validateActionID(m.ActionID); err != nil {
		return err
	}
	if err := m.Eta.Validate(); err != nil {
		return errors.Wrap(err, "eta")
	}
	switch m.State {
	case StateQueued:
		if !m.ExecutedAt.IsZero() {
			return errors.Wrap(errors.ErrState, "queued entry with execution time")
		}
	case StateExecuted:
	default:
		return errors.Wrapf(errors.ErrState, "state %d", m.State)
	}
	return nil
}

// validateActionID rejects IDs that cannot be told apart inside a Key.
func validateActionID(id string) error {
	if id == "" {
		return errors.Wrap(errors.ErrEmpty, "action id")
	}
	if strings.IndexByte(id, 0) >= 0 {
		return errors.Wrapf(errors.ErrInput, "action id %q contains a zero byte", id)
	}
	return nil
}

// Key returns the database key of the entry identified by given action ID
// and eta. The action ID must not contain a zero byte.
func Key(actionID string, eta tokenomics.UnixTime) []byte {
	key := make([]byte, len(actionID)+1+8)
	copy(key, actionID)
	binary.BigEndian.PutUint64(key[len(actionID)+1:], uint64(eta))
	return key
}

// Config holds the timelock parameters. It is stored with gconf.
type Config struct {
	// MinimumDelay is the shortest allowed time between queuing an entry
	// and its eta.
	MinimumDelay tokenomics.UnixDuration `protobuf:"varint,1,opt,name=minimum_delay,json=minimumDelay,proto3,casttype=github.com/iov-one/tokenomics.UnixDuration" json:"minimum_delay"`
	// GracePeriod is how long after the eta an entry remains executable.
	// Zero disables expiry.
	GracePeriod tokenomics.UnixDuration `protobuf:"varint,2,opt,name=grace_period,json=gracePeriod,proto3,casttype=github.com/iov-one/tokenomics.UnixDuration" json:"grace_period"`
}

var _ orm.Model = (*Config)(nil)

func (m *Config) Reset()         { *m = Config{} }
func (m *Config) String() string { return proto.CompactTextString(m) }
func (*Config) ProtoMessage()    {}

func (m *Config) Validate() error {
	if m.MinimumDelay < 0 {
		return errors.Wrap(errors.ErrInput, "negative minimum delay")
	}
	if m.GracePeriod < 0 {
		return errors.Wrap(errors.ErrInput, "negative grace period")
	}
	return nil
}

// DefaultConfig is used when no configuration was stored.
func DefaultConfig() Config {
	return Config{MinimumDelay: tokenomics.AsUnixDuration(48 * time.Hour)}
}

// NewBucket returns the bucket holding all entries.
func NewBucket() orm.Bucket {
	return orm.NewBucket("timelock")
}
