package weavetest

import (
	"context"

	"github.com/iov-one/rentweave"
)

type signersKey struct{}

// WithSigners marks conditions as the signers of the transaction processed
// with the returned context, in signature order.
func WithSigners(ctx rentweave.Context, signers ...rentweave.Condition) rentweave.Context {
	return context.WithValue(ctx, signersKey{}, signers)
}

// SignerAuth authenticates the conditions set with WithSigners. Handler
// tests use it in place of signature verification.
type SignerAuth struct{}

func (SignerAuth) GetConditions(ctx rentweave.Context) []rentweave.Condition {
	signers, _ := ctx.Value(signersKey{}).([]rentweave.Condition)
	return signers
}

func (a SignerAuth) HasAddress(ctx rentweave.Context, addr rentweave.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
