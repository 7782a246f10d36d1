package store

import (
	"github.com/google/btree"
)

// MemStore returns a simple in memory implementation useful for tests.
// There is no persistence here.
func MemStore() CacheableKVStore {
	return &memStore{bt: btree.New(2)}
}

// memStore holds only set items. A delete removes the item from the tree.
type memStore struct {
	bt *btree.BTree
}

func (m *memStore) Get(key []byte) ([]byte, error) {
	if res, ok := m.bt.Get(bkey{key}).(setItem); ok {
		return res.value, nil
	}
	return nil, nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	return m.bt.Has(bkey{key}), nil
}

func (m *memStore) Set(key, value []byte) error {
	if key == nil {
		panic("nil key")
	}
	m.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

func (m *memStore) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	m.bt.Delete(bkey{key})
	return nil
}

func (m *memStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(m, nil)
}
