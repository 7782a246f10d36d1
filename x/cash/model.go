package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/orm"
)

// BucketName is where we store the balances.
const BucketName = "cash"

// Account is the balance of a single currency kept under an address.
type Account struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	// Authority if set is the only condition allowed to move funds out of
	// this account.
	Authority rentweave.Condition `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
	// Deposit is the storage deposit paid when the account was opened.
	Deposit    uint64 `protobuf:"varint,4,opt,name=deposit,proto3" json:"deposit,omitempty"`
	Executable bool   `protobuf:"varint,5,opt,name=executable,proto3" json:"executable,omitempty"`
}

var _ orm.Model = (*Account)(nil)

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

func (a *Account) Validate() error {
	var errs error
	if !coin.IsCC(a.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.ErrCurrency)
	}
	if len(a.Authority) != 0 {
		errs = errors.AppendField(errs, "Authority", a.Authority.Validate())
	}
	return errs
}

// Coin returns the balance of this account.
func (a *Account) Coin() coin.Coin {
	return coin.NewCoin(a.Amount, a.Ticker)
}

// IsPlain returns true if the account is controlled directly by the owner
// of its address: it is not executable and has no delegated authority.
func (a *Account) IsPlain() bool {
	return !a.Executable && len(a.Authority) == 0
}

// Bucket stores accounts by their address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Account{}),
	}
}

// Get returns the account stored under given address or ErrNotFound.
func (b Bucket) Get(db rentweave.ReadOnlyKVStore, addr rentweave.Address) (*Account, error) {
	var acc Account
	if err := b.One(db, addr, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}
