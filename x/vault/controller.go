package vault

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/cash"
)

// Releaser is the part of the vault other extensions depend on.
type Releaser interface {
	Balance(db tokenomics.ReadOnlyKVStore) (coin.Amount, error)
	Release(ctx tokenomics.Context, db tokenomics.KVStore, to tokenomics.Address, amount coin.Amount) error
}

// Controller gives access to the reserve. All value is held by the cash
// extension on the vault account.
type Controller struct {
	auth   x.Authenticator
	cash   cash.Controller
	bucket orm.Bucket
}

var _ Releaser = (*Controller)(nil)

// NewController returns a vault controller authorizing the admin with given
// authenticator.
func NewController(auth x.Authenticator, cash cash.Controller) *Controller {
	return &Controller{
		auth:   auth,
		cash:   cash,
		bucket: NewBucket(),
	}
}

// Account returns the address holding the reserve.
func (c *Controller) Account() tokenomics.Address {
	return Address
}

// Get returns the stored vault configuration.
func (c *Controller) Get(db tokenomics.ReadOnlyKVStore) (*Vault, error) {
	var v Vault
	if err := c.bucket.One(db, stateKey, &v); err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	return &v, nil
}

// Admin returns the address authorized to release.
func (c *Controller) Admin(db tokenomics.ReadOnlyKVStore) (tokenomics.Address, error) {
	v, err := c.Get(db)
	if err != nil {
		return nil, err
	}
	return v.Admin, nil
}

// Balance returns the value currently held by the reserve.
func (c *Controller) Balance(db tokenomics.ReadOnlyKVStore) (coin.Amount, error) {
	return c.cash.Balance(db, Address)
}

// Deposit moves value from given account into the reserve. Any account may
// deposit.
func (c *Controller) Deposit(ctx tokenomics.Context, db tokenomics.KVStore, from tokenomics.Address, amount coin.Amount) error {
	if err := c.cash.MoveCoins(db, from, Address, amount); err != nil {
		return errors.Wrap(err, "deposit")
	}
	tokenomics.Emit(ctx, &DepositedEvent{From: from, Amount: amount.String()})
	return nil
}

// Release pays amount out of the reserve. The admin must have authorized
// the operation and the reserve must hold at least amount.
func (c *Controller) Release(ctx tokenomics.Context, db tokenomics.KVStore, to tokenomics.Address, amount coin.Amount) error {
	admin, err := c.Admin(db)
	if err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, admin, "vault admin"); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	held, err := c.Balance(db)
	if err != nil {
		return err
	}
	if held.LT(amount) {
		return errors.Wrapf(errors.ErrInsufficientFunds, "reserve holds %s, release %s", held, amount)
	}
	if err := c.cash.MoveCoins(db, Address, to, amount); err != nil {
		return errors.Wrap(err, "release")
	}
	tokenomics.Emit(ctx, &ReleasedEvent{To: to, Amount: amount.String()})
	return nil
}

// UpdateAdmin hands the release authority over to another account. Only
// the current admin can do that.
func (c *Controller) UpdateAdmin(ctx tokenomics.Context, db tokenomics.KVStore, admin tokenomics.Address) error {
	v, err := c.Get(db)
	if err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, v.Admin, "vault admin"); err != nil {
		return err
	}
	prev := v.Admin
	v.Admin = admin
	if err := c.bucket.Put(db, stateKey, v); err != nil {
		return errors.Wrap(err, "cannot save")
	}
	tokenomics.Emit(ctx, &AdminChangedEvent{Previous: prev, Admin: admin})
	return nil
}

// Init stores the initial configuration.
func (c *Controller) Init(db tokenomics.KVStore, v *Vault) error {
	return c.bucket.Put(db, stateKey, v)
}
