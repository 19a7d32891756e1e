package vault

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Initializer stores the vault configuration from the genesis file.
//
//   "vault": {"admin": "cond:distribution/pool/"}
type Initializer struct{}

var _ tokenomics.Initializer = Initializer{}

func (Initializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var v Vault
	if err := opts.ReadOptions("vault", &v); err != nil {
		return errors.Wrap(err, "vault genesis")
	}
	if v.Admin == nil {
		return nil
	}
	if err := NewBucket().Put(kv, stateKey, &v); err != nil {
		return errors.Wrap(err, "vault genesis")
	}
	return nil
}
