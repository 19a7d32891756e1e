package cash

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/orm"
)

// Balancer returns the current balance of an account.
type Balancer interface {
	Balance(tokenomics.ReadOnlyKVStore, tokenomics.Address) (coin.Amount, error)
}

// CoinMover is an interface for moving value between accounts.
type CoinMover interface {
	MoveCoins(tokenomics.KVStore, tokenomics.Address, tokenomics.Address, coin.Amount) error
}

// Controller is the functionality needed by cash.Handler and cash.Decorator.
// BaseController should work plenty fine, but you can add other logic if so
// desired
type Controller interface {
	Balancer
	CoinMover
	// IssueCoins increases the balance of an account without a source.
	// It is used only for genesis and inbound value entering the
	// system.
	IssueCoins(tokenomics.KVStore, tokenomics.Address, coin.Amount) error
}

// BaseController is a simple implementation of controller. Wallets must
// be stored in the wallet bucket.
type BaseController struct {
	bucket orm.Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default wallet bucket.
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

// Balance returns the balance of given account. An unknown account has a
// zero balance.
func (c BaseController) Balance(db tokenomics.ReadOnlyKVStore, addr tokenomics.Address) (coin.Amount, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case errors.ErrNotFound.Is(err):
		return coin.Amount{}, nil
	case err != nil:
		return coin.Amount{}, errors.Wrap(err, "cannot load wallet")
	}
	return w.Amount()
}

// MoveCoins moves the given amount from src to dest. If src doesn't have
// sufficient value, it fails with ErrInsufficientFunds. Moving zero is a
// no-op.
func (c BaseController) MoveCoins(db tokenomics.KVStore, src, dest tokenomics.Address, amount coin.Amount) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if amount.IsZero() {
		return nil
	}

	have, err := c.Balance(db, src)
	if err != nil {
		return err
	}
	if have.LT(amount) {
		return errors.Wrapf(errors.ErrInsufficientFunds, "%s has %s, need %s", src, have, amount)
	}
	if src.Equals(dest) {
		return nil
	}

	if err := c.save(db, src, have.SubFloor(amount)); err != nil {
		return err
	}
	return c.IssueCoins(db, dest, amount)
}

// IssueCoins attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db tokenomics.KVStore, dest tokenomics.Address, amount coin.Amount) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	have, err := c.Balance(db, dest)
	if err != nil {
		return err
	}
	total, err := have.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "wallet %s", dest)
	}
	return c.save(db, dest, total)
}

// save writes the balance. Empty wallets are removed.
func (c BaseController) save(db tokenomics.KVStore, addr tokenomics.Address, balance coin.Amount) error {
	if balance.IsZero() {
		if ok, err := c.bucket.Has(db, addr); err != nil || !ok {
			return err
		}
		return c.bucket.Delete(db, addr)
	}
	return c.bucket.Put(db, addr, &Wallet{Balance: balance.Bytes()})
}
