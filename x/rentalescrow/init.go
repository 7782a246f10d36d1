package rentalescrow

import (
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/gconf"
)

// Initializer fulfils the Initializer interface to load the configuration
// from the genesis file.
type Initializer struct{}

var _ rentweave.Initializer = Initializer{}

// FromGenesis saves the configuration. There is no way to create bookings
// from genesis.
func (Initializer) FromGenesis(opts rentweave.Options, db rentweave.KVStore) error {
	return gconf.InitConfig(db, opts, confPkg, &Configuration{})
}
