package app

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs every transaction through a single handler, usually the
// decorated router, on top of the StoreApp state.
type BaseApp struct {
	*StoreApp
	decode  rentweave.TxDecoder
	handler rentweave.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp returns an application decoding raw transactions with decode.
// In debug mode internal error messages are returned to the client.
func NewBaseApp(store *StoreApp, decode rentweave.TxDecoder, handler rentweave.Handler, debug bool) BaseApp {
	return BaseApp{StoreApp: store, decode: decode, handler: handler, debug: debug}
}

// CheckTx validates a transaction against the mempool state.
func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare("check_tx", raw)
	if err != nil {
		return rentweave.CheckOrError(nil, err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return rentweave.CheckOrError(res, err, b.debug)
}

// DeliverTx applies a transaction to the block state.
func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare("deliver_tx", raw)
	if err != nil {
		return rentweave.DeliverOrError(nil, err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return rentweave.DeliverOrError(res, err, b.debug)
}

// prepare decodes raw and returns the block context labeled for logging
// with the ABCI call and the message path. A decoder panic is returned as
// ErrPanic.
func (b BaseApp) prepare(call string, raw []byte) (ctx rentweave.Context, tx rentweave.Tx, err error) {
	defer errors.Recover(&err)
	if tx, err = b.decode(raw); err != nil {
		return nil, nil, err
	}
	ctx = rentweave.WithLogInfo(b.BlockContext(), "call", call, "path", rentweave.GetPath(tx))
	return ctx, tx, nil
}
