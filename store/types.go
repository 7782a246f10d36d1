package store

import "github.com/iov-one/rentweave"

// Aliases so that store implementations can be written without importing
// the root package everywhere.
type (
	ReadOnlyKVStore  = rentweave.ReadOnlyKVStore
	SetDeleter       = rentweave.SetDeleter
	KVStore          = rentweave.KVStore
	CacheableKVStore = rentweave.CacheableKVStore
	KVCacheWrap      = rentweave.KVCacheWrap
	CommitKVStore    = rentweave.CommitKVStore
	CommitID         = rentweave.CommitID
)
