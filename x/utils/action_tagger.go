package utils

import (
	"github.com/iov-one/rentweave"
)

// ActionKey is the tag under which the message path of every delivered
// transaction is indexed.
const ActionKey = "action"

// ActionTagger tags a successfully delivered transaction with its message
// path, so that a client can search for all bookings or all withdrawals.
// Check is passed through untouched.
type ActionTagger struct{}

var _ rentweave.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Checker) (*rentweave.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx, next rentweave.Deliverer) (*rentweave.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	action := rentweave.Tag(ActionKey, []byte(rentweave.GetPath(tx)))
	res.Tags = append(res.Tags, action)
	return res, nil
}
