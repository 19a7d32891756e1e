package distribution

import (
	"fmt"
	"strconv"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/timelock"
)

// Field names a governed parameter.
type Field string

const (
	FieldOwner        Field = "owner"
	FieldFoundation   Field = "foundation"
	FieldBurnRatio    Field = "burn_ratio"
	FieldReleaseRatio Field = "release_ratio"
)

// Update is a change of a single parameter. Address is used by the owner
// and foundation fields, Ratio by the ratio fields.
type Update struct {
	Field   Field              `json:"field"`
	Address tokenomics.Address `json:"address,omitempty"`
	Ratio   coin.BasisPoints   `json:"ratio,omitempty"`
}

// Validate returns ErrInvalidRatio for ratios out of range.
func (u Update) Validate() error {
	switch u.Field {
	case FieldOwner, FieldFoundation:
		return errors.Wrapf(u.Address.Validate(), "%s", u.Field)
	case FieldBurnRatio, FieldReleaseRatio:
		if u.Address != nil {
			return errors.Wrapf(errors.ErrInput, "%s takes no address", u.Field)
		}
		return errors.Wrapf(u.Ratio.Validate(), "%s", u.Field)
	default:
		return errors.Wrapf(errors.ErrInput, "unknown field %q", u.Field)
	}
}

// Value returns the new value in its human readable form.
func (u Update) Value() string {
	switch u.Field {
	case FieldBurnRatio, FieldReleaseRatio:
		return strconv.FormatUint(uint64(u.Ratio), 10)
	default:
		return u.Address.String()
	}
}

// ActionID identifies the update in the timelock. Two updates setting the
// same field to the same value share the action ID.
func (u Update) ActionID() string {
	return fmt.Sprintf("distribution/%s=%s", u.Field, u.Value())
}

// Governance changes the distributor parameters. Direct updates and
// timelocked updates are provided by separate implementations, an
// application uses exactly one of them.
type Governance interface {
	// Mode returns the name of the governance mode.
	Mode() string
	// Update applies the update immediately.
	Update(ctx tokenomics.Context, db tokenomics.KVStore, u Update) error
	// Queue schedules the update for execution at eta.
	Queue(ctx tokenomics.Context, db tokenomics.KVStore, u Update, eta tokenomics.UnixTime) error
	// Execute applies an update queued for eta.
	Execute(ctx tokenomics.Context, db tokenomics.KVStore, u Update, eta tokenomics.UnixTime) error
}

// Governance modes.
const (
	ModeDirect     = "direct"
	ModeTimelocked = "timelocked"
)

// NewGovernance returns the governance implementation for given mode.
func NewGovernance(mode string, ctrl *Controller, tl *timelock.Timelock) (Governance, error) {
	switch mode {
	case ModeDirect, "":
		return NewDirectGovernance(ctrl), nil
	case ModeTimelocked:
		if tl == nil {
			return nil, errors.Wrap(errors.ErrHuman, "timelocked governance without timelock")
		}
		return NewTimelockedGovernance(ctrl, tl), nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown governance mode %q", mode)
	}
}

// authorize checks that the role entitled to change the field signed the
// operation. Ownership is transferred by the owner, all other fields are
// changed by the governor.
func (c *Controller) authorize(ctx tokenomics.Context, d *Distributor, f Field) error {
	if f == FieldOwner {
		return x.RequireAddress(ctx, c.auth, d.Owner, "owner")
	}
	return x.RequireAddress(ctx, c.auth, d.GovernorAddress(), d.Governor)
}

// apply writes the update.
func (c *Controller) apply(ctx tokenomics.Context, db tokenomics.KVStore, u Update) error {
	if err := u.Validate(); err != nil {
		return err
	}
	d, err := c.Get(db)
	if err != nil {
		return err
	}
	switch u.Field {
	case FieldOwner:
		d.Owner = u.Address
	case FieldFoundation:
		d.Foundation = u.Address
	case FieldBurnRatio:
		d.BurnRatio = u.Ratio
	case FieldReleaseRatio:
		d.ReleaseRatio = u.Ratio
	}
	if err := c.save(db, d); err != nil {
		return err
	}
	tokenomics.Emit(ctx, &ParameterChangedEvent{Field: string(u.Field), Value: u.Value()})
	return nil
}

// DirectGovernance applies updates immediately.
type DirectGovernance struct {
	ctrl *Controller
}

var _ Governance = DirectGovernance{}

func NewDirectGovernance(ctrl *Controller) DirectGovernance {
	return DirectGovernance{ctrl: ctrl}
}

func (DirectGovernance) Mode() string { return ModeDirect }

func (g DirectGovernance) Update(ctx tokenomics.Context, db tokenomics.KVStore, u Update) error {
	if err := u.Validate(); err != nil {
		return err
	}
	d, err := g.ctrl.Get(db)
	if err != nil {
		return err
	}
	if err := g.ctrl.authorize(ctx, d, u.Field); err != nil {
		return err
	}
	return g.ctrl.apply(ctx, db, u)
}

func (DirectGovernance) Queue(tokenomics.Context, tokenomics.KVStore, Update, tokenomics.UnixTime) error {
	return errors.Wrap(errors.ErrUnauthorized, "timelock is not enabled")
}

func (DirectGovernance) Execute(tokenomics.Context, tokenomics.KVStore, Update, tokenomics.UnixTime) error {
	return errors.Wrap(errors.ErrUnauthorized, "timelock is not enabled")
}

// TimelockedGovernance requires every update to be queued first and
// executed after its eta.
type TimelockedGovernance struct {
	ctrl *Controller
	tl   *timelock.Timelock
}

var _ Governance = TimelockedGovernance{}

func NewTimelockedGovernance(ctrl *Controller, tl *timelock.Timelock) TimelockedGovernance {
	return TimelockedGovernance{ctrl: ctrl, tl: tl}
}

func (TimelockedGovernance) Mode() string { return ModeTimelocked }

func (TimelockedGovernance) Update(tokenomics.Context, tokenomics.KVStore, Update) error {
	return errors.Wrap(errors.ErrUnauthorized, "updates must go through the timelock")
}

func (g TimelockedGovernance) Queue(ctx tokenomics.Context, db tokenomics.KVStore, u Update, eta tokenomics.UnixTime) error {
	if err := g.check(ctx, db, u); err != nil {
		return err
	}
	_, err := g.tl.Queue(ctx, db, u.ActionID(), eta)
	return err
}

func (g TimelockedGovernance) Execute(ctx tokenomics.Context, db tokenomics.KVStore, u Update, eta tokenomics.UnixTime) error {
	if err := g.check(ctx, db, u); err != nil {
		return err
	}
	return g.tl.Execute(ctx, db, u.ActionID(), eta, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		return g.ctrl.apply(ctx, db, u)
	})
}

func (g TimelockedGovernance) check(ctx tokenomics.Context, db tokenomics.KVStore, u Update) error {
	if err := u.Validate(); err != nil {
		return err
	}
	d, err := g.ctrl.Get(db)
	if err != nil {
		return err
	}
	return g.ctrl.authorize(ctx, d, u.Field)
}
