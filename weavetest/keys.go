package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/rentweave"
)

var sequence uint64

// NewCondition returns a unique condition each time it is called. It is not
// backed by any key so it can only be used together with a mocked
// authenticator.
func NewCondition() rentweave.Condition {
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, atomic.AddUint64(&sequence, 1))
	return rentweave.NewCondition("test", "seq", seq)
}

// NewAddress returns a unique address.
func NewAddress() rentweave.Address {
	return NewCondition().Address()
}
