package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/x/rentalescrow"
	"github.com/iov-one/rentweave/x/sigs"
)

// Tx is the transaction format accepted by the node. Exactly one of the
// message fields must be set.
type Tx struct {
	Signatures      []*sigs.StdSignature          `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	BookMsg         *rentalescrow.BookMsg         `protobuf:"bytes,2,opt,name=book_msg,json=bookMsg,proto3" json:"book_msg,omitempty"`
	HostWithdrawMsg *rentalescrow.HostWithdrawMsg `protobuf:"bytes,3,opt,name=host_withdraw_msg,json=hostWithdrawMsg,proto3" json:"host_withdraw_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// make sure tx fulfills all interfaces
var _ rentweave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (rentweave.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode transaction: %s", err)
	}
	return tx, nil
}

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (rentweave.Msg, error) {
	switch {
	case tx.BookMsg != nil && tx.HostWithdrawMsg != nil:
		return nil, errors.Wrap(errors.ErrInput, "more than one message")
	case tx.BookMsg != nil:
		return tx.BookMsg, nil
	case tx.HostWithdrawMsg != nil:
		return tx.HostWithdrawMsg, nil
	}
	return nil, errors.Wrap(errors.ErrEmpty, "no message")
}

// GetSignatures returns the signatures attached to this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// the sign bytes should only come from the data itself,
	// not previous signatures
	unsigned := *tx
	unsigned.Signatures = nil
	bz, err := proto.Marshal(&unsigned)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot serialize: %s", err)
	}
	return bz, nil
}
