package rentalescrow

import (
	"github.com/iov-one/rentweave/errors"
)

// rentalescrow takes 2000-2009
var (
	ErrBookingAmountInvalid = errors.Register(2000, "invalid booking amount")
	ErrStartDateInvalid     = errors.Register(2001, "invalid start date")
	ErrEndDateInvalid       = errors.Register(2002, "invalid end date")
	ErrCompletedBooking     = errors.Register(2003, "booking already completed")
	ErrBookingIdInvalid     = errors.Register(2004, "invalid booking id")
	ErrInitializedBooking   = errors.Register(2005, "booking already initialized")
	ErrBookingInvalid       = errors.Register(2006, "invalid booking")
	ErrWithdrawForbidden    = errors.Register(2007, "host can withdraw only after end date")
	ErrInvalidMint          = errors.Register(2008, "invalid mint")
	ErrInvalidGuestAccount  = errors.Register(2009, "invalid guest account")
)
