package app

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/app"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/timelock"
)

// BalanceView is the result of the "balance" query.
type BalanceView struct {
	Address tokenomics.Address `json:"address"`
	Amount  coin.Amount        `json:"amount"`
}

// DistributorView is the result of the "distributor" query.
type DistributorView struct {
	*distribution.Distributor
	Account    tokenomics.Address `json:"account"`
	Held       coin.Amount        `json:"held"`
	Governance string             `json:"governance"`
}

// VaultView is the result of the "vault" query.
type VaultView struct {
	Account tokenomics.Address `json:"account"`
	Admin   tokenomics.Address `json:"admin"`
	Balance coin.Amount        `json:"balance"`
}

// TimelockView is the result of the "timelock" query.
type TimelockView struct {
	Config  timelock.Config   `json:"config"`
	Pending []*timelock.Entry `json:"pending"`
}

// AllowListView is the result of the "allowlist" query.
type AllowListView struct {
	Admin   tokenomics.Address   `json:"admin"`
	MaxSize uint32               `json:"max_size"`
	Members []tokenomics.Address `json:"members"`
}

// QueryRouter returns a query router, allowing access to "balance",
// "distributor", "vault", "timelock", "allowlist" and "member". The audit
// log query is registered by the application itself.
func QueryRouter(m *Modules) app.QueryRouter {
	r := app.NewQueryRouter()

	r.Register("balance", func(db tokenomics.ReadOnlyKVStore, arg string) (interface{}, error) {
		addr, err := tokenomics.ParseAddress(arg)
		if err != nil {
			return nil, err
		}
		amount, err := m.Cash.Balance(db, addr)
		if err != nil {
			return nil, err
		}
		return BalanceView{Address: addr, Amount: amount}, nil
	})

	r.Register("distributor", func(db tokenomics.ReadOnlyKVStore, _ string) (interface{}, error) {
		d, err := m.Distribution.Get(db)
		if err != nil {
			return nil, err
		}
		held, err := m.Distribution.Balance(db)
		if err != nil {
			return nil, err
		}
		return DistributorView{
			Distributor: d,
			Account:     distribution.Address,
			Held:        held,
			Governance:  m.Governance.Mode(),
		}, nil
	})

	r.Register("vault", func(db tokenomics.ReadOnlyKVStore, _ string) (interface{}, error) {
		v, err := m.Vault.Get(db)
		if err != nil {
			return nil, err
		}
		balance, err := m.Vault.Balance(db)
		if err != nil {
			return nil, err
		}
		return VaultView{Account: m.Vault.Account(), Admin: v.Admin, Balance: balance}, nil
	})

	r.Register("timelock", func(db tokenomics.ReadOnlyKVStore, _ string) (interface{}, error) {
		conf, err := m.Timelock.Config(db)
		if err != nil {
			return nil, err
		}
		pending, err := m.Timelock.Pending(db)
		if err != nil {
			return nil, err
		}
		return TimelockView{Config: conf, Pending: pending}, nil
	})

	r.Register("allowlist", func(db tokenomics.ReadOnlyKVStore, _ string) (interface{}, error) {
		conf, err := m.AllowList.Config(db)
		if err != nil {
			return nil, err
		}
		members, err := m.AllowList.List(db)
		if err != nil {
			return nil, err
		}
		return AllowListView{Admin: conf.Admin, MaxSize: conf.MaxSize, Members: members}, nil
	})

	r.Register("member", func(db tokenomics.ReadOnlyKVStore, arg string) (interface{}, error) {
		addr, err := tokenomics.ParseAddress(arg)
		if err != nil {
			return nil, errors.Wrap(err, "member")
		}
		return m.AllowList.IsMember(db, addr)
	})

	return r
}
