package rentalescrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
)

const (
	pathBookMsg         = "rentalescrow/book"
	pathHostWithdrawMsg = "rentalescrow/host_withdraw"
)

// BookMsg creates a booking and deposits its price into a vault. The guest
// is the main signer of the transaction.
type BookMsg struct {
	BookingID string             `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	StartDate rentweave.UnixTime `protobuf:"varint,2,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate   rentweave.UnixTime `protobuf:"varint,3,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Host      rentweave.Address  `protobuf:"bytes,4,opt,name=host,proto3" json:"host,omitempty"`
	// Amount is expressed in the smallest unit of the accepted currency.
	Amount uint64 `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	// Source is the account the guest pays from.
	Source rentweave.Address `protobuf:"bytes,6,opt,name=source,proto3" json:"source,omitempty"`
}

var _ rentweave.Msg = (*BookMsg)(nil)

func (m *BookMsg) Reset()         { *m = BookMsg{} }
func (m *BookMsg) String() string { return proto.CompactTextString(m) }
func (*BookMsg) ProtoMessage()    {}

// Path fulfills rentweave.Msg interface to allow routing.
func (BookMsg) Path() string {
	return pathBookMsg
}

// Validate checks the message is well formed. Booking rules are enforced by
// the handler, so that each violation reports its own error.
func (m *BookMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Host", m.Host.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	return errs
}

// HostWithdrawMsg releases the funds of a finished booking to the host. The
// host must sign the transaction.
type HostWithdrawMsg struct {
	BookingID string            `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	Host      rentweave.Address `protobuf:"bytes,2,opt,name=host,proto3" json:"host,omitempty"`
	Guest     rentweave.Address `protobuf:"bytes,3,opt,name=guest,proto3" json:"guest,omitempty"`
	// Destination is the account receiving the funds.
	Destination rentweave.Address `protobuf:"bytes,4,opt,name=destination,proto3" json:"destination,omitempty"`
}

var _ rentweave.Msg = (*HostWithdrawMsg)(nil)

func (m *HostWithdrawMsg) Reset()         { *m = HostWithdrawMsg{} }
func (m *HostWithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*HostWithdrawMsg) ProtoMessage()    {}

// Path fulfills rentweave.Msg interface to allow routing.
func (HostWithdrawMsg) Path() string {
	return pathHostWithdrawMsg
}

// Validate checks the message is well formed.
func (m *HostWithdrawMsg) Validate() error {
	var errs error
	if len(m.BookingID) == 0 {
		errs = errors.AppendField(errs, "BookingID", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Host", m.Host.Validate())
	errs = errors.AppendField(errs, "Guest", m.Guest.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	return errs
}
