package rentalescrow

import (
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/google/uuid"
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/orm"
)

// BucketName is where booking records are stored.
const BucketName = "bookings"

// BookingIDLength is the exact length of every booking identifier.
const BookingIDLength = 32

// BookingState describes the lifecycle stage of a booking.
type BookingState int32

const (
	BookingStateNone BookingState = 0
	BookingStateNew  BookingState = 1
	// BookingStateCancelled is reserved for a future cancellation policy.
	// No message transitions a booking into it.
	BookingStateCancelled BookingState = 2
)

var bookingStateNames = map[BookingState]string{
	BookingStateNone:      "NONE",
	BookingStateNew:       "NEW",
	BookingStateCancelled: "CANCELLED",
}

func (s BookingState) String() string {
	if n, ok := bookingStateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Booking is the record of a single stay.
type Booking struct {
	ID        string             `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StartDate rentweave.UnixTime `protobuf:"varint,2,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate   rentweave.UnixTime `protobuf:"varint,3,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	State     BookingState       `protobuf:"varint,4,opt,name=state,proto3" json:"state,omitempty"`
	// Nonce is the derivation nonce of the record address.
	Nonce uint32 `protobuf:"varint,5,opt,name=nonce,proto3" json:"nonce,omitempty"`
	// Deposit is the storage deposit paid by the guest for this record.
	Deposit uint64 `protobuf:"varint,6,opt,name=deposit,proto3" json:"deposit,omitempty"`
}

var _ orm.Model = (*Booking)(nil)

func (m *Booking) Reset()         { *m = Booking{} }
func (m *Booking) String() string { return proto.CompactTextString(m) }
func (*Booking) ProtoMessage()    {}

// Validate ensures the booking is valid.
func (b *Booking) Validate() error {
	var errs error
	if len(b.ID) != BookingIDLength {
		errs = errors.AppendField(errs, "ID", ErrBookingIdInvalid)
	}
	if b.StartDate.IsZero() {
		errs = errors.AppendField(errs, "StartDate", ErrStartDateInvalid)
	}
	if b.EndDate <= b.StartDate {
		errs = errors.AppendField(errs, "EndDate", ErrEndDateInvalid)
	}
	if _, ok := bookingStateNames[b.State]; !ok || b.State == BookingStateNone {
		errs = errors.AppendField(errs, "State", errors.ErrState)
	}
	if b.Nonce > maxNonce {
		errs = errors.AppendField(errs, "Nonce", errors.ErrInput)
	}
	return errs
}

// NewBucket returns a bucket for storing Booking records under their
// derived address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Booking{})
}

// NewBookingID returns a random booking identifier of BookingIDLength
// characters.
func NewBookingID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}
