package rentalescrow

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/orm"
	"github.com/iov-one/rentweave/x/cash"
	"github.com/iov-one/rentweave/x/utils"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// pay booking cost up-front
	bookCost     int64 = 300
	withdrawCost int64 = 0
)

// Authenticator reports the conditions that signed the current
// transaction, in signature order. The first signer of a booking is its
// guest.
type Authenticator interface {
	GetConditions(rentweave.Context) []rentweave.Condition
	HasAddress(rentweave.Context, rentweave.Address) bool
}

// RegisterRoutes will instantiate and register all handlers in this
// package. Every handler runs in its own savepoint.
func RegisterRoutes(r rentweave.Registry, auth Authenticator, bank cash.Controller) {
	bucket := NewBucket()
	r.Handle(pathBookMsg, utils.WithSavepoint(BookHandler{auth: auth, bucket: bucket, bank: bank}))
	r.Handle(pathHostWithdrawMsg, utils.WithSavepoint(HostWithdrawHandler{auth: auth, bucket: bucket, bank: bank}))
}

// BookHandler creates a booking and moves the guest funds into its vault.
type BookHandler struct {
	auth   Authenticator
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ rentweave.Handler = BookHandler{}

// NewBookHandler returns a handler for BookMsg.
func NewBookHandler(auth Authenticator, bank cash.Controller) BookHandler {
	return BookHandler{auth: auth, bucket: NewBucket(), bank: bank}
}

// Check verifies all booking rules and returns the cost of executing it.
func (h BookHandler) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &rentweave.CheckResult{GasAllocated: bookCost}, nil
}

// Deliver stores the booking, opens its vault and deposits the guest funds.
func (h BookHandler) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.DeliverResult, error) {
	b, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := b.msg
	guest := b.guest.Address()

	booking := Booking{
		ID:        msg.BookingID,
		StartDate: msg.StartDate,
		EndDate:   msg.EndDate,
		State:     BookingStateNew,
		Nonce:     b.record.Nonce,
	}
	deposit, err := h.bank.Reserve(db, guest, orm.Size(&booking))
	if err != nil {
		return nil, errors.Wrap(err, "booking deposit")
	}
	booking.Deposit = deposit
	if err := h.bucket.Create(db, b.record.Address, &booking); err != nil {
		return nil, errors.Wrap(err, "cannot store booking")
	}

	vault, capability, err := DeriveVault(b.conf, msg.BookingID, msg.Host, guest)
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if _, err := h.bank.Open(db, vault.Address, b.conf.Ticker, capability.Condition(), guest); err != nil {
		return nil, errors.Wrap(err, "cannot open vault")
	}
	amount := coin.NewCoin(msg.Amount, b.conf.Ticker)
	if err := h.bank.Transfer(db, b.guest, msg.Source, vault.Address, amount); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}

	b.block.Logger().Info("booking created",
		"height", b.block.Height(),
		"booking", msg.BookingID,
		"host", msg.Host,
		"guest", guest,
		"amount", amount)

	return &rentweave.DeliverResult{
		Data: b.record.Address,
		Tags: []common.KVPair{
			rentweave.Tag("booking", []byte(b.record.Address.String())),
		},
	}, nil
}

type bookRequest struct {
	msg    *BookMsg
	conf   *Configuration
	block  rentweave.BlockInfo
	guest  rentweave.Condition
	record Derivation
}

// validate does all common pre-processing between Check and Deliver. Booking
// rules are tested in a fixed order and none of them changes the state.
func (h BookHandler) validate(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*bookRequest, error) {
	var msg BookMsg
	if err := rentweave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signers := h.auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "guest signature required")
	}
	guest := signers[0]
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	block, err := rentweave.NewBlockInfo(ctx)
	if err != nil {
		return nil, err
	}

	source, err := h.bank.Account(db, msg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "funding source")
	}
	if source.Ticker != conf.Ticker {
		return nil, errors.Wrapf(ErrInvalidMint, "funding source holds %s, want %s", source.Ticker, conf.Ticker)
	}
	if msg.Amount == 0 {
		return nil, errors.Wrap(ErrBookingAmountInvalid, "amount must be greater than zero")
	}
	if block.IsExpired(msg.StartDate) {
		return nil, errors.Wrapf(ErrStartDateInvalid, "start date %s is not after %s", msg.StartDate, block.UnixTime())
	}
	if msg.EndDate <= msg.StartDate {
		return nil, errors.Wrapf(ErrEndDateInvalid, "end date %s is not after %s", msg.EndDate, msg.StartDate)
	}
	if n := len(msg.BookingID); n != BookingIDLength {
		return nil, errors.Wrapf(ErrBookingIdInvalid, "length %d", n)
	}

	record, err := DeriveBooking(conf, msg.BookingID, msg.Host, guest.Address())
	if err != nil {
		return nil, errors.Wrap(err, "booking")
	}
	switch err := h.bucket.Has(db, record.Address); {
	case err == nil:
		return nil, errors.Wrapf(ErrInitializedBooking, "booking %s", record.Address)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	return &bookRequest{
		msg:    &msg,
		conf:   conf,
		block:  block,
		guest:  guest,
		record: record,
	}, nil
}

// HostWithdrawHandler releases the funds of a finished booking to the host
// and removes the booking.
type HostWithdrawHandler struct {
	auth   Authenticator
	bucket orm.ModelBucket
	bank   cash.Controller
}

var _ rentweave.Handler = HostWithdrawHandler{}

// NewHostWithdrawHandler returns a handler for HostWithdrawMsg.
func NewHostWithdrawHandler(auth Authenticator, bank cash.Controller) HostWithdrawHandler {
	return HostWithdrawHandler{auth: auth, bucket: NewBucket(), bank: bank}
}

// Check verifies the booking can be withdrawn and returns the cost of
// executing it.
func (h HostWithdrawHandler) Check(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &rentweave.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver moves the whole vault balance to the host destination, closes the
// vault and deletes the booking. Both storage deposits go back to the guest.
func (h HostWithdrawHandler) Deliver(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*rentweave.DeliverResult, error) {
	w, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := w.msg

	vault, capability, err := DeriveVault(w.conf, msg.BookingID, msg.Host, msg.Guest)
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	balance, err := h.bank.Balance(db, vault.Address)
	if err != nil {
		return nil, errors.Wrap(err, "vault balance")
	}
	if !balance.IsZero() {
		if err := h.bank.Transfer(db, capability.Condition(), vault.Address, msg.Destination, balance); err != nil {
			return nil, errors.Wrap(err, "cannot release funds")
		}
	}
	if err := h.bank.Close(db, capability.Condition(), vault.Address, msg.Guest); err != nil {
		return nil, errors.Wrap(err, "cannot close vault")
	}
	if err := h.bucket.Delete(db, w.record); err != nil {
		return nil, errors.Wrap(err, "cannot delete booking")
	}
	if err := h.bank.Release(db, msg.Guest, w.booking.Deposit); err != nil {
		return nil, errors.Wrap(err, "cannot refund booking deposit")
	}

	w.block.Logger().Info("booking withdrawn",
		"height", w.block.Height(),
		"booking", msg.BookingID,
		"host", msg.Host,
		"guest", msg.Guest,
		"amount", balance)

	return &rentweave.DeliverResult{
		Tags: []common.KVPair{
			rentweave.Tag("booking", []byte(w.record.String())),
		},
	}, nil
}

type withdrawRequest struct {
	msg     *HostWithdrawMsg
	conf    *Configuration
	block   rentweave.BlockInfo
	record  rentweave.Address
	booking *Booking
}

// validate does all common pre-processing between Check and Deliver.
func (h HostWithdrawHandler) validate(ctx rentweave.Context, db rentweave.KVStore, tx rentweave.Tx) (*withdrawRequest, error) {
	var msg HostWithdrawMsg
	if err := rentweave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Host) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "host signature required")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	block, err := rentweave.NewBlockInfo(ctx)
	if err != nil {
		return nil, err
	}

	record, err := DeriveBooking(conf, msg.BookingID, msg.Host, msg.Guest)
	if err != nil {
		return nil, errors.Wrap(err, "booking")
	}
	var booking Booking
	switch err := h.bucket.One(db, record.Address, &booking); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrBookingInvalid, "booking does not exist")
	case err != nil:
		return nil, errors.Wrap(err, "cannot load booking")
	}
	switch booking.State {
	case BookingStateNew:
	case BookingStateCancelled:
		return nil, errors.Wrapf(ErrCompletedBooking, "booking %s", booking.State)
	default:
		return nil, errors.Wrapf(ErrBookingInvalid, "booking %s", booking.State)
	}
	if !block.InThePast(booking.EndDate) {
		return nil, errors.Wrapf(ErrWithdrawForbidden, "booking ends %s", booking.EndDate)
	}

	switch plain, err := h.bank.IsPlain(db, msg.Guest); {
	case err != nil:
		return nil, errors.Wrap(err, "guest account")
	case !plain:
		return nil, errors.Wrap(ErrInvalidGuestAccount, "guest must be a plain account")
	}

	return &withdrawRequest{
		msg:     &msg,
		conf:    conf,
		block:   block,
		record:  record.Address,
		booking: &booking,
	}, nil
}
