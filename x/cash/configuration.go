package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/gconf"
)

const confPkg = "cash"

// Configuration sets the price of storing data in the state.
type Configuration struct {
	// NativeTicker is the currency storage deposits are paid in.
	NativeTicker string `protobuf:"bytes,1,opt,name=native_ticker,json=nativeTicker,proto3" json:"native_ticker,omitempty"`
	// ByteCost is the deposit charged for every stored byte. Zero makes
	// storage free.
	ByteCost uint64 `protobuf:"varint,2,opt,name=byte_cost,json=byteCost,proto3" json:"byte_cost,omitempty"`
	// AccountOverhead is the number of bytes added to the size of every
	// stored record.
	AccountOverhead uint64 `protobuf:"varint,3,opt,name=account_overhead,json=accountOverhead,proto3" json:"account_overhead,omitempty"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	if !coin.IsCC(c.NativeTicker) {
		return errors.Wrapf(errors.ErrCurrency, "native ticker %q", c.NativeTicker)
	}
	return nil
}

// DepositFor returns the storage deposit for a record of given size.
func (c *Configuration) DepositFor(size int) (coin.Coin, error) {
	if size < 0 {
		return coin.Coin{}, errors.Wrap(errors.ErrInput, "negative size")
	}
	bytes := c.AccountOverhead + uint64(size)
	if bytes < c.AccountOverhead {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "storage size")
	}
	if c.ByteCost != 0 && bytes > ^uint64(0)/c.ByteCost {
		return coin.Coin{}, errors.Wrap(errors.ErrOverflow, "storage deposit")
	}
	return coin.NewCoin(bytes*c.ByteCost, c.NativeTicker), nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
