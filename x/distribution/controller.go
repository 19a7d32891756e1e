package distribution

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/cash"
	"github.com/iov-one/tokenomics/x/vault"
)

// Controller moves value out of the reward pool. Every method either
// applies all of its changes or none of them.
type Controller struct {
	auth    x.Authenticator
	cash    cash.Controller
	reserve vault.Releaser
	bucket  orm.Bucket
}

// NewController returns a controller paying top-ups out of given reserve.
// The pool account must be the reserve admin for top-ups to succeed.
func NewController(auth x.Authenticator, cash cash.Controller, reserve vault.Releaser) *Controller {
	return &Controller{
		auth:    auth,
		cash:    cash,
		reserve: reserve,
		bucket:  NewBucket(),
	}
}

// Get returns the current distributor state.
func (c *Controller) Get(db tokenomics.ReadOnlyKVStore) (*Distributor, error) {
	var d Distributor
	if err := c.bucket.One(db, stateKey, &d); err != nil {
		return nil, errors.Wrap(err, "distributor")
	}
	return &d, nil
}

// Init stores the initial state, filling in the defaults.
func (c *Controller) Init(db tokenomics.KVStore, d *Distributor) error {
	return c.bucket.Put(db, stateKey, d.withDefaults())
}

func (c *Controller) save(db tokenomics.KVStore, d *Distributor) error {
	if err := c.bucket.Put(db, stateKey, d); err != nil {
		return errors.Wrap(err, "cannot save distributor")
	}
	return nil
}

// Balance returns the value held by the pool.
func (c *Controller) Balance(db tokenomics.ReadOnlyKVStore) (coin.Amount, error) {
	return c.cash.Balance(db, Address)
}

// Owner returns the current owner.
func (c *Controller) Owner(db tokenomics.ReadOnlyKVStore) (tokenomics.Address, error) {
	d, err := c.Get(db)
	if err != nil {
		return nil, err
	}
	return d.Owner, nil
}

// Foundation returns the current foundation address.
func (c *Controller) Foundation(db tokenomics.ReadOnlyKVStore) (tokenomics.Address, error) {
	d, err := c.Get(db)
	if err != nil {
		return nil, err
	}
	return d.Foundation, nil
}

// Ratios returns the current burn and release ratios.
func (c *Controller) Ratios(db tokenomics.ReadOnlyKVStore) (burn, release coin.BasisPoints, err error) {
	d, err := c.Get(db)
	if err != nil {
		return 0, 0, err
	}
	return d.BurnRatio, d.ReleaseRatio, nil
}

// Burn splits the held balance according to the ratios, see PlanSplit.
// Depending on the trigger policy, either the owner or anyone may call it.
func (c *Controller) Burn(ctx tokenomics.Context, db tokenomics.KVStore) (*Split, error) {
	d, err := c.Get(db)
	if err != nil {
		return nil, err
	}
	if d.Trigger != TriggerAnyone {
		if err := x.RequireAddress(ctx, c.auth, d.Owner, "owner"); err != nil {
			return nil, err
		}
	}
	held, err := c.Balance(db)
	if err != nil {
		return nil, err
	}
	reserve, err := c.reserve.Balance(db)
	if err != nil {
		return nil, errors.Wrap(err, "reserve")
	}
	split, err := PlanSplit(held, reserve, d.BurnRatio, d.ReleaseRatio)
	if err != nil {
		return nil, err
	}

	err = x.Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		if err := c.cash.MoveCoins(db, Address, d.BurnSink, split.Burned); err != nil {
			return errors.Wrap(err, "burn")
		}
		if err := c.cash.MoveCoins(db, Address, d.Foundation, split.FromPool); err != nil {
			return errors.Wrap(err, "release")
		}
		if !split.TopUp.IsZero() {
			if err := c.reserve.Release(x.WithModuleAuth(ctx, Address), db, d.Foundation, split.TopUp); err != nil {
				return errors.Wrap(err, "reserve top-up")
			}
		}
		tokenomics.Emit(ctx, &DistributedEvent{
			Burned:       split.Burned.String(),
			Released:     split.Released().String(),
			To:           d.Foundation,
			ReserveTopUp: split.TopUp.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	tokenomics.GetLogger(ctx).Info("distributed",
		"burned", split.Burned, "released", split.Released(), "top_up", split.TopUp)
	return &split, nil
}

// BurnAndRelease is the same as Burn.
func (c *Controller) BurnAndRelease(ctx tokenomics.Context, db tokenomics.KVStore) (*Split, error) {
	return c.Burn(ctx, db)
}

// BurnAndReserveRelease burns and releases explicit amounts. Only the owner
// can call it.
func (c *Controller) BurnAndReserveRelease(ctx tokenomics.Context, db tokenomics.KVStore, burn coin.Amount, to tokenomics.Address, release coin.Amount) error {
	d, err := c.ownerPayout(ctx, db, burn, release)
	if err != nil {
		return err
	}
	return x.Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		if err := c.burn(ctx, db, d, burn); err != nil {
			return err
		}
		if err := c.cash.MoveCoins(db, Address, to, release); err != nil {
			return errors.Wrap(err, "release")
		}
		tokenomics.Emit(ctx, &ReleasedEvent{To: to, Amount: release.String()})
		return nil
	})
}

// Claim pays amount to given account. Only the owner can call it.
func (c *Controller) Claim(ctx tokenomics.Context, db tokenomics.KVStore, to tokenomics.Address, amount coin.Amount) error {
	if _, err := c.ownerPayout(ctx, db, amount); err != nil {
		return err
	}
	return x.Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		return c.claim(ctx, db, to, amount)
	})
}

// ClaimAndBurn pays claim to given account and burns burn. Only the owner
// can call it.
func (c *Controller) ClaimAndBurn(ctx tokenomics.Context, db tokenomics.KVStore, to tokenomics.Address, claim, burn coin.Amount) error {
	d, err := c.ownerPayout(ctx, db, claim, burn)
	if err != nil {
		return err
	}
	return x.Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
		if err := c.claim(ctx, db, to, claim); err != nil {
			return err
		}
		return c.burn(ctx, db, d, burn)
	})
}

// ownerPayout authorizes the owner and ensures the pool holds the total of
// given amounts.
func (c *Controller) ownerPayout(ctx tokenomics.Context, db tokenomics.KVStore, amounts ...coin.Amount) (*Distributor, error) {
	d, err := c.Get(db)
	if err != nil {
		return nil, err
	}
	if err := x.RequireAddress(ctx, c.auth, d.Owner, "owner"); err != nil {
		return nil, err
	}
	total, err := coin.Sum(amounts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInsufficientFunds, err.Error())
	}
	held, err := c.Balance(db)
	if err != nil {
		return nil, err
	}
	if held.LT(total) {
		return nil, errors.Wrapf(errors.ErrInsufficientFunds, "pool holds %s, payout %s", held, total)
	}
	return d, nil
}

func (c *Controller) burn(ctx tokenomics.Context, db tokenomics.KVStore, d *Distributor, amount coin.Amount) error {
	if err := c.cash.MoveCoins(db, Address, d.BurnSink, amount); err != nil {
		return errors.Wrap(err, "burn")
	}
	tokenomics.Emit(ctx, &BurnedEvent{Sink: d.BurnSink, Amount: amount.String()})
	return nil
}

func (c *Controller) claim(ctx tokenomics.Context, db tokenomics.KVStore, to tokenomics.Address, amount coin.Amount) error {
	if err := c.cash.MoveCoins(db, Address, to, amount); err != nil {
		return errors.Wrap(err, "claim")
	}
	tokenomics.Emit(ctx, &ClaimedEvent{To: to, Amount: amount.String()})
	return nil
}
