package app

import (
	"reflect"

	"github.com/iov-one/rentweave"
)

// Decorators is an ordered list of decorators. The first one is the
// outermost: it sees every transaction before the others do.
type Decorators []rentweave.Decorator

// ChainDecorators returns the given decorators with nil entries dropped, so
// an optional decorator can be passed without a condition. The node stack
// is built as
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//	).WithHandler(router)
func ChainDecorators(ds ...rentweave.Decorator) Decorators {
	return Decorators(nil).Chain(ds...)
}

// Chain returns a copy of d extended with more decorators, which are run
// after the ones already present.
func (d Decorators) Chain(more ...rentweave.Decorator) Decorators {
	res := make(Decorators, 0, len(d)+len(more))
	res = append(res, d...)
	for _, dec := range more {
		if !isNilDecorator(dec) {
			res = append(res, dec)
		}
	}
	return res
}

// WithHandler returns a handler running h behind all decorators.
func (d Decorators) WithHandler(h rentweave.Handler) rentweave.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{dec: d[i], next: h}
	}
	return h
}

func isNilDecorator(d rentweave.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// decorated binds a decorator to the handler it wraps.
type decorated struct {
	dec  rentweave.Decorator
	next rentweave.Handler
}

func (s decorated) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.CheckResult, error) {
	return s.dec.Check(ctx, db, tx, s.next)
}

func (s decorated) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, tx, s.next)
}
