package weavetest

import "github.com/iov-one/rentweave"

// Handler is a mock implementing rentweave.Handler that counts calls and
// returns the configured result.
type Handler struct {
	checkCall   int
	CheckResult rentweave.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult rentweave.DeliverResult
	DeliverErr    error

	// Write if set is stored in the database before a result is returned.
	Write *Write
}

// Write is a single key value pair to store.
type Write struct {
	Key, Value []byte
}

var _ rentweave.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db rentweave.KVStore) error {
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// PanicHandler panics on every call.
type PanicHandler struct {
	Value interface{}
}

func (h PanicHandler) Check(rentweave.Context, rentweave.KVStore, rentweave.Tx) (*rentweave.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(rentweave.Context, rentweave.KVStore, rentweave.Tx) (*rentweave.DeliverResult, error) {
	panic(h.Value)
}
