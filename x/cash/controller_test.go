package cash

import (
	"encoding/hex"
	"testing"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/gconf"
	"github.com/iov-one/rentweave/orm"
	"github.com/iov-one/rentweave/store"
	"github.com/iov-one/rentweave/weavetest"
	"github.com/iov-one/rentweave/weavetest/assert"
)

func newTestStore(t testing.TB, conf Configuration) rentweave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	if err := gconf.Save(db, "cash", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db
}

func putAccount(t testing.TB, db rentweave.KVStore, addr rentweave.Address, acc Account) {
	t.Helper()
	if err := NewBucket().Put(db, addr, &acc); err != nil {
		t.Fatalf("cannot store account: %s", err)
	}
}

func TestTransfer(t *testing.T) {
	owner := weavetest.NewCondition()
	delegate := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	vault := weavetest.NewAddress()
	dest := weavetest.NewAddress()

	cases := map[string]struct {
		authority rentweave.Condition
		src       rentweave.Address
		srcAcc    Account
		destAcc   *Account
		amount    coin.Coin
		wantErr   *errors.Error
		wantSrc   uint64
		wantDest  uint64
	}{
		"owner moves funds to a new account": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 100},
			amount:    coin.NewCoin(40, "RENT"),
			wantSrc:   60,
			wantDest:  40,
		},
		"owner moves funds to an existing account": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 100},
			destAcc:   &Account{Ticker: "RENT", Amount: 5},
			amount:    coin.NewCoin(100, "RENT"),
			wantSrc:   0,
			wantDest:  105,
		},
		"stranger cannot move funds": {
			authority: stranger,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 100},
			amount:    coin.NewCoin(1, "RENT"),
			wantErr:   errors.ErrUnauthorized,
		},
		"delegated authority moves funds": {
			authority: delegate,
			src:       vault,
			srcAcc:    Account{Ticker: "RENT", Amount: 7, Authority: delegate},
			amount:    coin.NewCoin(7, "RENT"),
			wantSrc:   0,
			wantDest:  7,
		},
		"address owner cannot bypass delegated authority": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7, Authority: delegate},
			amount:    coin.NewCoin(7, "RENT"),
			wantErr:   errors.ErrUnauthorized,
		},
		"executable account cannot be debited": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7, Executable: true},
			amount:    coin.NewCoin(1, "RENT"),
			wantErr:   errors.ErrUnauthorized,
		},
		"insufficient funds": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7},
			amount:    coin.NewCoin(8, "RENT"),
			wantErr:   errors.ErrInsufficientAmount,
		},
		"source currency mismatch": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7},
			amount:    coin.NewCoin(1, "ETH"),
			wantErr:   errors.ErrCurrency,
		},
		"destination currency mismatch": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7},
			destAcc:   &Account{Ticker: "ETH"},
			amount:    coin.NewCoin(1, "RENT"),
			wantErr:   errors.ErrCurrency,
		},
		"zero amount": {
			authority: owner,
			src:       owner.Address(),
			srcAcc:    Account{Ticker: "RENT", Amount: 7},
			amount:    coin.NewCoin(0, "RENT"),
			wantErr:   errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestStore(t, Configuration{NativeTicker: "RENT"})
			putAccount(t, db, tc.src, tc.srcAcc)
			if tc.destAcc != nil {
				putAccount(t, db, dest, *tc.destAcc)
			}

			ctrl := NewController(NewBucket())
			cache := db.CacheWrap()
			err := ctrl.Transfer(cache, tc.authority, tc.src, dest, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err != nil {
				return
			}
			assert.Nil(t, cache.Write())

			got, err := ctrl.Balance(db, tc.src)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrc, got.Amount)
			got, err = ctrl.Balance(db, dest)
			assert.Nil(t, err)
			assert.Equal(t, coin.NewCoin(tc.wantDest, tc.amount.Ticker), got)
		})
	}
}

func TestTransferMissingSource(t *testing.T) {
	db := newTestStore(t, Configuration{NativeTicker: "RENT"})
	owner := weavetest.NewCondition()
	err := NewController(NewBucket()).Transfer(db, owner, owner.Address(), weavetest.NewAddress(), coin.NewCoin(1, "RENT"))
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestOpenAndClose(t *testing.T) {
	conf := Configuration{NativeTicker: "RENT", ByteCost: 3, AccountOverhead: 128}
	db := newTestStore(t, conf)
	ctrl := NewController(NewBucket())

	payer := weavetest.NewAddress()
	putAccount(t, db, payer, Account{Ticker: "RENT", Amount: 10000})
	authority := weavetest.NewCondition()
	addr := authority.Address()

	want, err := conf.DepositFor(orm.Size(&Account{Ticker: "RENT", Authority: authority}))
	assert.Nil(t, err)

	acc, err := ctrl.Open(db, addr, "RENT", authority, payer)
	assert.Nil(t, err)
	assert.Equal(t, want.Amount, acc.Deposit)

	bal, err := ctrl.Balance(db, payer)
	assert.Nil(t, err)
	assert.Equal(t, 10000-want.Amount, bal.Amount)

	_, err = ctrl.Open(db, addr, "RENT", authority, payer)
	assert.IsErr(t, errors.ErrDuplicate, err)

	plain, err := ctrl.IsPlain(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, false, plain)

	// Funds must be moved out before the account can be closed.
	assert.IsErr(t, errors.ErrUnauthorized, ctrl.Transfer(db, weavetest.NewCondition(), payer, addr, coin.NewCoin(1, "RENT")))
	owner := weavetest.NewCondition()
	putAccount(t, db, owner.Address(), Account{Ticker: "RENT", Amount: 5})
	assert.Nil(t, ctrl.Transfer(db, owner, owner.Address(), addr, coin.NewCoin(5, "RENT")))
	assert.IsErr(t, errors.ErrState, ctrl.Close(db, authority, addr, payer))

	assert.IsErr(t, errors.ErrUnauthorized, ctrl.Close(db, owner, addr, payer))

	assert.Nil(t, ctrl.Transfer(db, authority, addr, owner.Address(), coin.NewCoin(5, "RENT")))
	refund := weavetest.NewAddress()
	assert.Nil(t, ctrl.Close(db, authority, addr, refund))

	_, err = ctrl.Account(db, addr)
	assert.IsErr(t, errors.ErrNotFound, err)
	bal, err = ctrl.Balance(db, refund)
	assert.Nil(t, err)
	assert.Equal(t, want, bal)
}

func TestOpenClaimsUnopenedAccount(t *testing.T) {
	cases := map[string]struct {
		existing   Account
		wantErr    *errors.Error
		wantAmount uint64
	}{
		"balance sent before opening is kept": {
			existing:   Account{Ticker: "RENT", Amount: 700},
			wantAmount: 700,
		},
		"account with a different ticker": {
			existing: Account{Ticker: "IOV", Amount: 700},
			wantErr:  errors.ErrDuplicate,
		},
		"account with an authority": {
			existing: Account{Ticker: "RENT", Amount: 700, Authority: weavetest.NewCondition()},
			wantErr:  errors.ErrDuplicate,
		},
		"executable account": {
			existing: Account{Ticker: "RENT", Executable: true},
			wantErr:  errors.ErrDuplicate,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestStore(t, Configuration{NativeTicker: "RENT", ByteCost: 1})
			ctrl := NewController(NewBucket())
			payer := weavetest.NewAddress()
			putAccount(t, db, payer, Account{Ticker: "RENT", Amount: 10000})
			addr := weavetest.NewAddress()
			putAccount(t, db, addr, tc.existing)
			authority := weavetest.NewCondition()

			acc, err := ctrl.Open(db, addr, "RENT", authority, payer)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantAmount, acc.Amount)
			assert.Equal(t, true, acc.Deposit > 0)

			stored, err := ctrl.Account(db, addr)
			assert.Nil(t, err)
			assert.Equal(t, authority, stored.Authority)
			assert.Equal(t, tc.wantAmount, stored.Amount)

			// The previous owner, whoever it was, lost control.
			assert.IsErr(t, errors.ErrUnauthorized, ctrl.Transfer(db, weavetest.NewCondition(), addr, payer, coin.NewCoin(1, "RENT")))
			assert.Nil(t, ctrl.Transfer(db, authority, addr, payer, coin.NewCoin(tc.wantAmount, "RENT")))
		})
	}
}

func TestOpenRequiresAuthority(t *testing.T) {
	db := newTestStore(t, Configuration{NativeTicker: "RENT"})
	_, err := NewController(NewBucket()).Open(db, weavetest.NewAddress(), "RENT", nil, weavetest.NewAddress())
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestOpenInsufficientDeposit(t *testing.T) {
	db := newTestStore(t, Configuration{NativeTicker: "RENT", ByteCost: 1000})
	payer := weavetest.NewAddress()
	putAccount(t, db, payer, Account{Ticker: "RENT", Amount: 10})

	_, err := NewController(NewBucket()).Open(db, weavetest.NewAddress(), "RENT", weavetest.NewCondition(), payer)
	assert.IsErr(t, errors.ErrInsufficientAmount, err)
}

func TestFreeStorage(t *testing.T) {
	db := newTestStore(t, Configuration{NativeTicker: "RENT"})
	ctrl := NewController(NewBucket())

	// With zero byte cost the payer does not need an account at all.
	deposit, err := ctrl.Reserve(db, weavetest.NewAddress(), 4096)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), deposit)

	dest := weavetest.NewAddress()
	assert.Nil(t, ctrl.Release(db, dest, 0))
	_, err = ctrl.Account(db, dest)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestReserveAndRelease(t *testing.T) {
	conf := Configuration{NativeTicker: "RENT", ByteCost: 2, AccountOverhead: 10}
	db := newTestStore(t, conf)
	ctrl := NewController(NewBucket())
	payer := weavetest.NewAddress()
	putAccount(t, db, payer, Account{Ticker: "RENT", Amount: 100})

	deposit, err := ctrl.Reserve(db, payer, 20)
	assert.Nil(t, err)
	assert.Equal(t, uint64(60), deposit)

	bal, err := ctrl.Balance(db, payer)
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), bal.Amount)

	assert.Nil(t, ctrl.Release(db, payer, deposit))
	bal, err = ctrl.Balance(db, payer)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), bal.Amount)

	// Deposits are paid in the native currency only.
	other := weavetest.NewAddress()
	putAccount(t, db, other, Account{Ticker: "ETH", Amount: 100})
	_, err = ctrl.Reserve(db, other, 1)
	assert.IsErr(t, errors.ErrCurrency, err)
}

func TestIsPlain(t *testing.T) {
	db := newTestStore(t, Configuration{NativeTicker: "RENT"})
	ctrl := NewController(NewBucket())

	plain := weavetest.NewAddress()
	putAccount(t, db, plain, Account{Ticker: "RENT"})
	program := weavetest.NewAddress()
	putAccount(t, db, program, Account{Ticker: "RENT", Executable: true})
	delegated := weavetest.NewAddress()
	putAccount(t, db, delegated, Account{Ticker: "RENT", Authority: weavetest.NewCondition()})

	cases := map[string]struct {
		addr rentweave.Address
		want bool
	}{
		"plain account":       {addr: plain, want: true},
		"missing account":     {addr: weavetest.NewAddress(), want: true},
		"executable account":  {addr: program, want: false},
		"delegated authority": {addr: delegated, want: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ctrl.IsPlain(db, tc.addr)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigurationDeposit(t *testing.T) {
	cases := map[string]struct {
		conf    Configuration
		size    int
		want    uint64
		wantErr *errors.Error
	}{
		"free":           {conf: Configuration{NativeTicker: "RENT", AccountOverhead: 128}, size: 10, want: 0},
		"overhead added": {conf: Configuration{NativeTicker: "RENT", ByteCost: 2, AccountOverhead: 128}, size: 10, want: 276},
		"overflow":       {conf: Configuration{NativeTicker: "RENT", ByteCost: 1 << 62, AccountOverhead: 128}, size: 10, wantErr: errors.ErrOverflow},
		"negative size":  {conf: Configuration{NativeTicker: "RENT", ByteCost: 1}, size: -1, wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.conf.DepositFor(tc.size)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, coin.NewCoin(tc.want, "RENT"), got)
			}
		})
	}

	assert.IsErr(t, errors.ErrCurrency, (&Configuration{NativeTicker: "rent"}).Validate())
}

func fromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex: %s", err)
	}
	return b
}
