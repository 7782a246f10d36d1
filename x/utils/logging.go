package utils

import (
	"time"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

// Logging writes one entry per processed transaction with the message path,
// the processing time and, for a failure, the ABCI code the client sees.
// Successful checks are logged at debug level, deliveries at info level.
type Logging struct{}

var _ rentweave.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Checker) (*rentweave.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var out string
	if err == nil {
		out = res.Log
	}
	logTx(ctx, tx, "check", time.Since(start), out, err)
	return res, err
}

func (Logging) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Deliverer) (*rentweave.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var out string
	if err == nil {
		out = res.Log
	}
	logTx(ctx, tx, "deliver", time.Since(start), out, err)
	return res, err
}

func logTx(ctx rentweave.Context, tx rentweave.Tx, stage string, took time.Duration, out string, err error) {
	logger := rentweave.GetLogger(ctx).With(
		"stage", stage,
		"path", rentweave.GetPath(tx),
		"took", took.String(),
	)
	if err != nil {
		code, _ := errors.ABCIInfo(err, true)
		logger.Error("transaction failed", "code", code, "err", err)
		return
	}
	if stage == "check" {
		logger.Debug("transaction accepted", "log", out)
		return
	}
	logger.Info("transaction applied", "log", out)
}
