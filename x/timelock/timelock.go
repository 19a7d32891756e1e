package timelock

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/gconf"
	"github.com/iov-one/tokenomics/orm"
	"github.com/iov-one/tokenomics/x"
	"github.com/jonboulle/clockwork"
)

const pkgName = "timelock"

// ApplyFunc applies the action of an executed entry. It receives the same
// store the entry is updated in.
type ApplyFunc func(ctx tokenomics.Context, db tokenomics.KVStore) error

// Timelock queues and executes governance actions.
type Timelock struct {
	clock  clockwork.Clock
	bucket orm.Bucket
}

// New returns a timelock reading the current time from given clock. A nil
// clock defaults to the system clock.
func New(clock clockwork.Clock) *Timelock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timelock{
		clock:  clock,
		bucket: NewBucket(),
	}
}

// Now returns the current time as seen by the timelock. The block time
// attached to the context takes precedence over the clock so that all
// operations of a single transaction observe the same moment.
func (t *Timelock) Now(ctx tokenomics.Context) tokenomics.UnixTime {
	if now, ok := tokenomics.BlockTime(ctx); ok {
		return tokenomics.AsUnixTime(now)
	}
	return tokenomics.AsUnixTime(t.clock.Now())
}

// Config returns the stored configuration, or DefaultConfig if none was
// stored.
func (t *Timelock) Config(db gconf.ReadStore) (Config, error) {
	var conf Config
	switch err := gconf.Load(db, pkgName, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfig(), nil
	default:
		return conf, errors.Wrap(err, "timelock config")
	}
}

// SetConfig stores the configuration.
func (t *Timelock) SetConfig(db gconf.Store, conf Config) error {
	return gconf.Save(db, pkgName, &conf)
}

// Queue stores a new entry for given action and eta.
func (t *Timelock) Queue(ctx tokenomics.Context, db tokenomics.KVStore, actionID string, eta tokenomics.UnixTime) (*Entry, error) {
	if err := validateActionID(actionID); err != nil {
		return nil, err
	}
	conf, err := t.Config(db)
	if err != nil {
		return nil, err
	}
	now := t.Now(ctx)
	if earliest := now.Add(conf.MinimumDelay.Duration()); eta < earliest {
		return nil, errors.Wrapf(errors.ErrDelayTooShort, "eta %s, earliest %s", eta, earliest)
	}

	key := Key(actionID, eta)
	// Executed entries are terminal and are never queued again.
	if ok, err := t.bucket.Has(db, key); err != nil {
		return nil, errors.Wrap(err, "cannot check entry")
	} else if ok {
		return nil, errors.Wrapf(errors.ErrAlreadyQueued, "%q at %s", actionID, eta)
	}

	entry := &Entry{
		ActionID: actionID,
		Eta:      eta,
		State:    StateQueued,
		QueuedAt: now,
	}
	if err := t.bucket.Put(db, key, entry); err != nil {
		return nil, errors.Wrap(err, "cannot save entry")
	}
	tokenomics.Emit(ctx, &QueuedEvent{ActionID: actionID, Eta: eta})
	tokenomics.GetLogger(ctx).Debug("timelock entry queued", "action", actionID, "eta", eta)
	return entry, nil
}

// Execute marks the entry as executed and applies its action. Both happen
// in the same unit of work: if apply fails, the entry stays queued.
func (t *Timelock) Execute(ctx tokenomics.Context, db tokenomics.KVStore, actionID string, eta tokenomics.UnixTime, apply ApplyFunc) error {
	if err := validateActionID(actionID); err != nil {
		return err
	}
	entry, err := t.Get(db, actionID, eta)
	switch {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(errors.ErrNotQueued, "%q at %s", actionID, eta)
	case err != nil:
		return err
	}
	if entry.State != StateQueued {
		return errors.Wrapf(errors.ErrNotQueued, "%q at %s is %s", actionID, eta, entry.State)
	}

	now := t.Now(ctx)
	if now < eta {
		return errors.Wrapf(errors.ErrTooEarly, "eta %s, now %s", eta, now)
	}
	conf, err := t.Config(db)
	if err != nil {
		return err
	}
	if conf.GracePeriod > 0 && now > eta.Add(conf.GracePeriod.Duration()) {
		return errors.Wrapf(errors.ErrExpired, "eta %s, grace period %s", eta, conf.GracePeriod.Duration())
	}

	entry.State = StateExecuted
	entry.ExecutedAt = now
	return x.Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		if err := t.bucket.Put(db, Key(actionID, eta), entry); err != nil {
			return errors.Wrap(err, "cannot save entry")
		}
		if apply != nil {
			if err := apply(ctx, db); err != nil {
				return errors.Wrapf(err, "apply %q", actionID)
			}
		}
		tokenomics.Emit(ctx, &ExecutedEvent{ActionID: actionID, Eta: eta})
		return nil
	})
}

// Get returns the entry for given action and eta. ErrNotFound is returned
// if it was never queued.
func (t *Timelock) Get(db tokenomics.ReadOnlyKVStore, actionID string, eta tokenomics.UnixTime) (*Entry, error) {
	var e Entry
	if err := t.bucket.One(db, Key(actionID, eta), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Pending returns all entries that are queued and not executed yet, ordered
// by action ID and eta.
func (t *Timelock) Pending(db tokenomics.ReadOnlyKVStore) ([]*Entry, error) {
	var pending []*Entry
	err := t.bucket.Visit(db, func(_, raw []byte) error {
		var e Entry
		if err := orm.Unmarshal(raw, &e); err != nil {
			return err
		}
		if e.State == StateQueued {
			pending = append(pending, &e)
		}
		return nil
	})
	return pending, err
}
