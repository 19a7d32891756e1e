package cash

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use tokenomics.Address, so address in hex, not base64
type GenesisAccount struct {
	Address tokenomics.Address `json:"address"`
	Amount  coin.Amount        `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ tokenomics.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(err, "cash genesis")
	}
	control := NewController()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := control.IssueCoins(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
