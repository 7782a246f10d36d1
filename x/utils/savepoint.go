package utils

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ rentweave.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnCheck/OnDeliver so it will be triggered.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that will trigger on CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver returns a savepoint that will trigger on DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

// Check will optionally set a checkpoint.
func (s Savepoint) Check(ctx rentweave.Context, store rentweave.KVStore, tx rentweave.Tx, next rentweave.Checker) (*rentweave.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(rentweave.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store cannot be cache wrapped", store)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// Deliver will optionally set a checkpoint.
func (s Savepoint) Deliver(ctx rentweave.Context, store rentweave.KVStore, tx rentweave.Tx, next rentweave.Deliverer) (*rentweave.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(rentweave.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store cannot be cache wrapped", store)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

// WithSavepoint returns a handler that executes both check and deliver of
// given handler inside of a savepoint, so that a failed call leaves no trace
// in the store.
func WithSavepoint(h rentweave.Handler) rentweave.Handler {
	return savepointHandler{
		sp:   NewSavepoint().OnCheck().OnDeliver(),
		next: h,
	}
}

type savepointHandler struct {
	sp   Savepoint
	next rentweave.Handler
}

func (s savepointHandler) Check(ctx rentweave.Context, store rentweave.KVStore, tx rentweave.Tx) (*rentweave.CheckResult, error) {
	return s.sp.Check(ctx, store, tx, s.next)
}

func (s savepointHandler) Deliver(ctx rentweave.Context, store rentweave.KVStore, tx rentweave.Tx) (*rentweave.DeliverResult, error) {
	return s.sp.Deliver(ctx, store, tx, s.next)
}
