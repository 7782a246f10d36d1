package sigs

import (
	"context"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

// signatureVerifyCost is charged in CheckTx for every verified signature.
const signatureVerifyCost = 500

type signersKey struct{}

// Decorator verifies the signatures of a transaction, bumps the sequence
// of every signer and passes the signers down the stack. Every rental
// transaction needs at least one signature, so an unsigned transaction is
// rejected here.
type Decorator struct{}

var _ rentweave.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

func (d Decorator) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Checker) (*rentweave.CheckResult, error) {
	ctx, signers, err := authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(len(signers) * signatureVerifyCost)
	return res, nil
}

func (d Decorator) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Deliverer) (*rentweave.DeliverResult, error) {
	ctx, _, err := authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func authenticate(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (rentweave.Context, []rentweave.Condition, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "transaction cannot be signed")
	}
	signers, err := VerifyTxSignatures(db, stx, rentweave.GetChainID(ctx))
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return context.WithValue(ctx, signersKey{}, signers), signers, nil
}

// Authenticate reports the signers verified by the Decorator. Only this
// package can add a signer to the context.
type Authenticate struct{}

// GetConditions returns the signers in signature order.
func (Authenticate) GetConditions(ctx rentweave.Context) []rentweave.Condition {
	signers, _ := ctx.Value(signersKey{}).([]rentweave.Condition)
	return signers
}

// HasAddress returns true if the owner of addr signed the transaction.
func (a Authenticate) HasAddress(ctx rentweave.Context, addr rentweave.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
