package rentalescrow

import (
	"strings"
	"testing"

	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/weavetest/assert"
)

func TestBookingValidation(t *testing.T) {
	valid := func() *Booking {
		return &Booking{
			ID:        strings.Repeat("A", 32),
			StartDate: 1000,
			EndDate:   2000,
			State:     BookingStateNew,
			Nonce:     255,
		}
	}

	cases := map[string]struct {
		mutate     func(*Booking)
		wantErrors map[string]*errors.Error
	}{
		"valid": {
			mutate: func(*Booking) {},
			wantErrors: map[string]*errors.Error{
				"ID":      nil,
				"EndDate": nil,
				"State":   nil,
			},
		},
		"id too long": {
			mutate:     func(b *Booking) { b.ID += "A" },
			wantErrors: map[string]*errors.Error{"ID": ErrBookingIdInvalid},
		},
		"end before start": {
			mutate:     func(b *Booking) { b.EndDate = b.StartDate },
			wantErrors: map[string]*errors.Error{"EndDate": ErrEndDateInvalid},
		},
		"none state cannot be stored": {
			mutate:     func(b *Booking) { b.State = BookingStateNone },
			wantErrors: map[string]*errors.Error{"State": errors.ErrState},
		},
		"unknown state": {
			mutate:     func(b *Booking) { b.State = 42 },
			wantErrors: map[string]*errors.Error{"State": errors.ErrState},
		},
		"cancelled state is reserved but valid": {
			mutate:     func(b *Booking) { b.State = BookingStateCancelled },
			wantErrors: map[string]*errors.Error{"State": nil},
		},
		"many errors": {
			mutate: func(b *Booking) {
				b.ID = ""
				b.StartDate = 0
				b.Nonce = 256
			},
			wantErrors: map[string]*errors.Error{
				"ID":        ErrBookingIdInvalid,
				"StartDate": ErrStartDateInvalid,
				"Nonce":     errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			b := valid()
			tc.mutate(b)
			err := b.Validate()
			for field, want := range tc.wantErrors {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestBookingStateString(t *testing.T) {
	assert.Equal(t, "NEW", BookingStateNew.String())
	assert.Equal(t, "CANCELLED", BookingStateCancelled.String())
	assert.Equal(t, "UNKNOWN", BookingState(7).String())
}

func TestNewBookingID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewBookingID()
		if len(id) != BookingIDLength {
			t.Fatalf("invalid id length: %q", id)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicated id: %q", id)
		}
		seen[id] = struct{}{}
	}
}
