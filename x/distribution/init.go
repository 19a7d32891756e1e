package distribution

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Initializer stores the distributor state from the genesis file:
//
//   "distribution": {
//     "owner": "0x...",
//     "foundation": "0x...",
//     "burn_ratio": 5000,
//     "release_ratio": 5000,
//     "governor": "owner",
//     "trigger": "owner"
//   }
//
// The burn sink defaults to the burn address.
type Initializer struct{}

var _ tokenomics.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var d Distributor
	if err := opts.ReadOptions("distribution", &d); err != nil {
		return errors.Wrap(err, "distribution genesis")
	}
	if d.Owner == nil {
		return nil
	}
	if err := NewBucket().Put(kv, stateKey, d.withDefaults()); err != nil {
		return errors.Wrap(err, "distribution genesis")
	}
	return nil
}
