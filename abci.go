package rentweave

import (
	"github.com/iov-one/rentweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a handler that accepts a transaction into the
// mempool.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is what the transaction may spend once delivered.
	// Booking is charged up front, withdrawing is free.
	GasAllocated int64
}

// DeliverResult is returned by a handler that applied a transaction. Data
// holds the address of the record the transaction created, if any. Tags
// are indexed by tendermint, so that a client can look up every
// transaction that touched a booking.
type DeliverResult struct {
	Data    []byte
	Log     string
	Tags    []common.KVPair
	GasUsed int64
}

// Tag builds an indexed result tag.
func Tag(key string, value []byte) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: value}
}

// CheckOrError turns the outcome of a handler Check call into a
// tendermint response. Unless debug is set the log of an error without a
// registered code is hidden.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseCheckTx{Code: code, Log: "cannot check tx: " + log}
	}
	return abci.ResponseCheckTx{
		Data:      res.Data,
		Log:       res.Log,
		GasWanted: res.GasAllocated,
	}
}

// DeliverOrError turns the outcome of a handler Deliver call into a
// tendermint response. Errors are converted the same way as by
// CheckOrError.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		code, log := errors.ABCIInfo(err, debug)
		return abci.ResponseDeliverTx{Code: code, Log: "cannot deliver tx: " + log}
	}
	return abci.ResponseDeliverTx{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}
}
