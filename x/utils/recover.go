package utils

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

// Recovery turns a panic raised below it into an ErrPanic error and logs
// the panic together with the message path. A handler that panics never
// takes the node down, and the savepoint above it discards its writes.
type Recovery struct{}

var _ rentweave.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Checker) (res *rentweave.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Deliverer) (res *rentweave.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

// recoverTx must be deferred directly.
func recoverTx(ctx rentweave.Context, tx rentweave.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	rentweave.GetLogger(ctx).Error("transaction panicked",
		"path", rentweave.GetPath(tx),
		"panic", r)
}
