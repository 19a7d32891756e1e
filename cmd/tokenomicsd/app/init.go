package app

import (
	"encoding/json"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/app"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x/allowlist"
	"github.com/iov-one/tokenomics/x/cash"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/timelock"
	"github.com/iov-one/tokenomics/x/vault"
)

// GenesisParams are the values a development genesis is built from.
type GenesisParams struct {
	ChainID    string
	Owner      tokenomics.Address
	Foundation tokenomics.Address
	// Supply is issued to the owner.
	Supply coin.Amount
	// Pool and Reserve are issued to the reward pool and the reserve.
	Pool    coin.Amount
	Reserve coin.Amount
	// AllowListSize is the capacity of the free gas allowlist.
	AllowListSize uint32
}

// GenInitOptions produces a genesis with the owner controlling the
// distributor, the allowlist and the timelock defaults. Ratios are set to
// an even split. The reserve is administered by the reward pool, so that
// only the distributor can release reserve funds.
func GenInitOptions(p GenesisParams) (app.Genesis, error) {
	if err := p.Owner.Validate(); err != nil {
		return app.Genesis{}, errors.Wrap(err, "owner")
	}
	if p.Foundation == nil {
		p.Foundation = p.Owner
	}

	var accounts []cash.GenesisAccount
	for _, a := range []cash.GenesisAccount{
		{Address: p.Owner, Amount: p.Supply},
		{Address: distribution.Address, Amount: p.Pool},
		{Address: vault.Address, Amount: p.Reserve},
	} {
		if !a.Amount.IsZero() {
			accounts = append(accounts, a)
		}
	}

	state := map[string]interface{}{
		"cash":  accounts,
		"vault": vault.Vault{Admin: distribution.Address},
		"distribution": distribution.Distributor{
			Owner:        p.Owner,
			Foundation:   p.Foundation,
			BurnRatio:    5000,
			ReleaseRatio: 5000,
			Governor:     distribution.RoleOwner,
			Trigger:      distribution.TriggerOwner,
		},
		"allowlist": []tokenomics.Address{},
		"conf": map[string]interface{}{
			"timelock": timelock.DefaultConfig(),
			"allowlist": allowlist.Configuration{
				Admin:   p.Owner,
				MaxSize: p.AllowListSize,
			},
		},
	}

	opts := make(tokenomics.Options, len(state))
	for name, v := range state {
		raw, err := json.Marshal(v)
		if err != nil {
			return app.Genesis{}, errors.Wrapf(errors.ErrInput, "%s: %s", name, err)
		}
		opts[name] = raw
	}
	return app.Genesis{ChainID: p.ChainID, AppState: opts}, nil
}
