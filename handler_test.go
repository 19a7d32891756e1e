package tokenomics_test

import (
	"encoding/json"
	"testing"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	opts := tokenomics.Options{
		"vault": json.RawMessage(`{"admin": "cond:distribution/pool/"}`),
		"bad":   json.RawMessage(`{"admin": 12}`),
	}

	var v struct {
		Admin tokenomics.Address `json:"admin"`
	}
	require.NoError(t, opts.ReadOptions("vault", &v))
	assert.Equal(t, tokenomics.NewCondition("distribution", "pool", nil).Address(), v.Admin)

	// missing key is not an error and does not modify the destination
	require.NoError(t, opts.ReadOptions("missing", &v))
	assert.NotNil(t, v.Admin)

	assert.Error(t, opts.ReadOptions("bad", &v))
}

type storeInitializer struct {
	key string
	err error
}

func (i storeInitializer) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	if i.err != nil {
		return i.err
	}
	return kv.Set([]byte(i.key), opts[i.key])
}

func TestChainInitializers(t *testing.T) {
	opts := tokenomics.Options{
		"a": json.RawMessage(`1`),
		"b": json.RawMessage(`2`),
	}

	db := store.MemStore()
	chain := tokenomics.ChainInitializers{
		storeInitializer{key: "a"},
		storeInitializer{key: "b"},
	}
	require.NoError(t, chain.FromGenesis(opts, db))
	got, err := db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	db = store.MemStore()
	chain = tokenomics.ChainInitializers{
		storeInitializer{key: "a"},
		storeInitializer{err: errors.ErrState},
		storeInitializer{key: "b"},
	}
	err = chain.FromGenesis(opts, db)
	assert.True(t, errors.ErrState.Is(err))
	has, err := db.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has, "processing must stop at the first failure")
}
