package app

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

// blockState keeps the two working copies of the committed state. Deliver
// collects the writes of the current block and is flushed on commit. Check
// runs mempool validation and is thrown away on commit, so a booking that
// was only checked leaves no trace.
type blockState struct {
	committed rentweave.CommitKVStore
	deliver   rentweave.KVCacheWrap
	check     rentweave.KVCacheWrap
}

func openState(db rentweave.CommitKVStore) (*blockState, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	st := &blockState{committed: db}
	st.reset()
	return st, nil
}

func (st *blockState) reset() {
	st.deliver = st.committed.CacheWrap()
	st.check = st.committed.CacheWrap()
}

// lastCommit returns the height and the app hash of the last commit.
func (st *blockState) lastCommit() rentweave.CommitID {
	return st.committed.LatestVersion()
}

func (st *blockState) commit() (rentweave.CommitID, error) {
	if err := st.deliver.Write(); err != nil {
		return rentweave.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	st.check.Discard()
	id, err := st.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	st.reset()
	return id, nil
}

// chainIDKey is outside of any bucket prefix.
var chainIDKey = []byte("_rentald:chain_id")

func loadChainID(db rentweave.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID writes the chain id once, at genesis.
func saveChainID(db rentweave.KVStore, chainID string) error {
	if !rentweave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case ok:
		return errors.Wrap(errors.ErrState, "chain id is set at genesis only")
	}
	return errors.Wrap(db.Set(chainIDKey, []byte(chainID)), "save chain id")
}
