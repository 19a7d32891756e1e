package allowlist

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/gconf"
)

// Initializer loads the registry configuration and the initial members
// from the genesis file.
//
//   "conf": {"allowlist": {"admin": "...", "max_size": 10}},
//   "allowlist": ["...", "..."]
//
// Initial members are subject to the maximum size.
type Initializer struct{}

var _ tokenomics.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var conf Configuration
	switch err := gconf.InitConfig(kv, opts, pkgName, &conf); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "allowlist genesis")
	}

	var members []tokenomics.Address
	if err := opts.ReadOptions("allowlist", &members); err != nil {
		return errors.Wrap(err, "allowlist genesis")
	}
	reg := NewRegistry(nil)
	for _, addr := range members {
		if err := reg.add(kv, &conf, addr); err != nil {
			return errors.Wrapf(err, "allowlist genesis member %s", addr)
		}
	}
	return nil
}
