package timelock

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/gconf"
)

// Initializer loads the timelock configuration from the genesis file:
//
//   "conf": {"timelock": {"minimum_delay": "48h", "grace_period": "336h"}}
//
// Without a configuration DefaultConfig applies.
type Initializer struct{}

var _ tokenomics.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var conf Config
	switch err := gconf.InitConfig(kv, opts, pkgName, &conf); {
	case err == nil, errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "timelock genesis")
	}
}
