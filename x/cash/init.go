package cash

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/gconf"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file.
// Address is decoded with rentweave.Address rules, so hex by default.
type GenesisAccount struct {
	Address    rentweave.Address   `json:"address"`
	Balance    coin.Coin           `json:"balance"`
	Authority  rentweave.Condition `json:"authority"`
	Executable bool                `json:"executable"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file.
type Initializer struct{}

var _ rentweave.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database.
func (Initializer) FromGenesis(opts rentweave.Options, db rentweave.KVStore) error {
	if err := gconf.InitConfig(db, opts, confPkg, &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, a := range accts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		acc := Account{
			Ticker:     a.Balance.Ticker,
			Amount:     a.Balance.Amount,
			Authority:  a.Authority,
			Executable: a.Executable,
		}
		if err := bucket.Create(db, a.Address, &acc); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
