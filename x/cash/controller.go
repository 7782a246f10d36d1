package cash

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/orm"
)

// Controller is the value transfer primitive. Every method either applies
// all of its changes or returns an error, provided it runs inside of a
// savepoint.
type Controller interface {
	// Balance returns the coins held by given account.
	Balance(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (coin.Coin, error)

	// Account returns the account stored under given address.
	Account(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (*Account, error)

	// IsPlain returns true if given address is not executable and has no
	// delegated authority. An address without an account is plain.
	IsPlain(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (bool, error)

	// Transfer moves amount from src to dest. The authority condition
	// must control the source account. A missing destination account is
	// created.
	Transfer(db rentweave.KVStore, authority rentweave.Condition, src, dest rentweave.Address, amount coin.Coin) error

	// Open creates an account at addr, controlled by the authority
	// condition. Its storage deposit is paid by the payer. A plain account
	// of the same ticker already stored at addr, left by a transfer to a
	// not yet opened address, is claimed together with its balance.
	Open(db rentweave.KVStore, addr rentweave.Address, ticker string, authority rentweave.Condition, payer rentweave.Address) (*Account, error)

	// Close removes an empty account and refunds its storage deposit to
	// the refund address. The authority condition must control the
	// account.
	Close(db rentweave.KVStore, authority rentweave.Condition, addr, refund rentweave.Address) error

	// Reserve charges the payer the storage deposit for size bytes and
	// returns the amount charged.
	Reserve(db rentweave.KVStore, payer rentweave.Address, size int) (uint64, error)

	// Release returns a previously reserved storage deposit to dest.
	Release(db rentweave.KVStore, dest rentweave.Address, amount uint64) error
}

// BaseController is the default Controller implementation, storing
// accounts in a Bucket.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller working on given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (coin.Coin, error) {
	acc, err := c.bucket.Get(db, addr)
	if err != nil {
		return coin.Coin{}, err
	}
	return acc.Coin(), nil
}

func (c BaseController) Account(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (*Account, error) {
	return c.bucket.Get(db, addr)
}

func (c BaseController) IsPlain(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (bool, error) {
	switch acc, err := c.bucket.Get(db, addr); {
	case err == nil:
		return acc.IsPlain(), nil
	case errors.ErrNotFound.Is(err):
		return true, nil
	default:
		return false, err
	}
}

func (c BaseController) Transfer(db rentweave.KVStore, authority rentweave.Condition, src, dest rentweave.Address, amount coin.Coin) error {
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "zero value transfer")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "source account")
	}
	if !controls(authority, src, sender) {
		return errors.Wrap(errors.ErrUnauthorized, "source account")
	}
	left, err := sender.Coin().Subtract(amount)
	if err != nil {
		return errors.Wrap(err, "source account")
	}

	// Load the recipient only after the sender is saved, so that a
	// transfer to self is a noop.
	sender.Amount = left.Amount
	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save source account")
	}

	var recipient *Account
	switch acc, err := c.bucket.Get(db, dest); {
	case err == nil:
		recipient = acc
	case errors.ErrNotFound.Is(err):
		recipient = &Account{Ticker: amount.Ticker}
	default:
		return errors.Wrap(err, "destination account")
	}
	total, err := recipient.Coin().Add(amount)
	if err != nil {
		return errors.Wrap(err, "destination account")
	}
	recipient.Amount = total.Amount
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "save destination account")
	}
	return nil
}

func (c BaseController) Open(db rentweave.KVStore, addr rentweave.Address, ticker string, authority rentweave.Condition, payer rentweave.Address) (*Account, error) {
	if len(authority) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "authority")
	}
	acc := &Account{Ticker: ticker}
	switch existing, err := c.bucket.Get(db, addr); {
	case err == nil:
		// Coins sent to the address before it was opened stay with it.
		// An account that anyone already controls is never taken over.
		if !existing.IsPlain() || existing.Ticker != ticker {
			return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
		}
		acc = existing
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	acc.Authority = authority
	if err := acc.Validate(); err != nil {
		return nil, err
	}

	deposit, err := c.Reserve(db, payer, orm.Size(acc))
	if err != nil {
		return nil, errors.Wrap(err, "account deposit")
	}
	acc.Deposit += deposit
	if err := c.bucket.Put(db, addr, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (c BaseController) Close(db rentweave.KVStore, authority rentweave.Condition, addr, refund rentweave.Address) error {
	acc, err := c.bucket.Get(db, addr)
	if err != nil {
		return err
	}
	if !controls(authority, addr, acc) {
		return errors.Wrap(errors.ErrUnauthorized, "close account")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account holds %s", acc.Coin())
	}
	if err := c.bucket.Delete(db, addr); err != nil {
		return err
	}
	return c.Release(db, refund, acc.Deposit)
}

func (c BaseController) Reserve(db rentweave.KVStore, payer rentweave.Address, size int) (uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	deposit, err := conf.DepositFor(size)
	if err != nil {
		return 0, err
	}
	if deposit.IsZero() {
		return 0, nil
	}

	acc, err := c.bucket.Get(db, payer)
	if err != nil {
		return 0, errors.Wrap(err, "payer account")
	}
	left, err := acc.Coin().Subtract(deposit)
	if err != nil {
		return 0, errors.Wrap(err, "payer account")
	}
	acc.Amount = left.Amount
	if err := c.bucket.Put(db, payer, acc); err != nil {
		return 0, errors.Wrap(err, "save payer account")
	}
	return deposit.Amount, nil
}

func (c BaseController) Release(db rentweave.KVStore, dest rentweave.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	refund := coin.NewCoin(amount, conf.NativeTicker)

	var acc *Account
	switch a, err := c.bucket.Get(db, dest); {
	case err == nil:
		acc = a
	case errors.ErrNotFound.Is(err):
		acc = &Account{Ticker: conf.NativeTicker}
	default:
		return err
	}
	total, err := acc.Coin().Add(refund)
	if err != nil {
		return errors.Wrap(err, "refund account")
	}
	acc.Amount = total.Amount
	if err := c.bucket.Put(db, dest, acc); err != nil {
		return errors.Wrap(err, "save refund account")
	}
	return nil
}

// controls returns true if the authority condition may move funds out of
// the account stored under given address.
func controls(authority rentweave.Condition, addr rentweave.Address, acc *Account) bool {
	if len(authority) == 0 || acc.Executable {
		return false
	}
	if len(acc.Authority) != 0 {
		return authority.Equals(acc.Authority)
	}
	return authority.Address().Equals(addr)
}
