package weavetest

import (
	"github.com/iov-one/rentweave"
)

// Tx represents a transaction holding a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg rentweave.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ rentweave.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (rentweave.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message routed by its path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ rentweave.Msg = (*Msg)(nil)

func (m *Msg) Reset()         {}
func (m *Msg) String() string { return m.RoutePath }
func (m *Msg) ProtoMessage()  {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
