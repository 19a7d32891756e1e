package store

import (
	tokenomics "github.com/iov-one/tokenomics"
)

// Move references for all storage types into this package
// for shorter names everywhere
type (
	ReadOnlyKVStore  = tokenomics.ReadOnlyKVStore
	SetDeleter       = tokenomics.SetDeleter
	KVStore          = tokenomics.KVStore
	Batch            = tokenomics.Batch
	Iterator         = tokenomics.Iterator
	CacheableKVStore = tokenomics.CacheableKVStore
	KVCacheWrap      = tokenomics.KVCacheWrap
	CommitKVStore    = tokenomics.CommitKVStore
)
