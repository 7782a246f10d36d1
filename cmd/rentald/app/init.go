package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/coin"
	"github.com/iov-one/rentweave/commands/server"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/x/cash"
	"github.com/iov-one/rentweave/x/rentalescrow"
	"github.com/iov-one/rentweave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
)

const (
	defaultTicker    = "IOV"
	defaultProgramID = "rentals"
	genesisBalance   = 123456789
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// Accepted arguments are the ticker and the hex encoded address of the
// funded account. When no address is given, a new key is generated and
// printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := defaultTicker
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %s", ticker)
		}
	}

	var addr rentweave.Address
	if len(args) > 1 {
		raw, err := hex.DecodeString(args[1])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "address: %s", err)
		}
		addr = rentweave.Address(raw)
		if err := addr.Validate(); err != nil {
			return nil, err
		}
	} else {
		key, err := sigs.GenPrivateKey()
		if err != nil {
			return nil, err
		}
		addr = key.PublicKey().Address()
		fmt.Printf("Generated key for %s: %X\n", addr, []byte(key))
	}

	return genesis(ticker, addr)
}

func genesis(ticker string, addr rentweave.Address) (json.RawMessage, error) {
	state := map[string]interface{}{
		"conf": map[string]interface{}{
			"cash": cash.Configuration{
				NativeTicker:    ticker,
				ByteCost:        1,
				AccountOverhead: 128,
			},
			"rentalescrow": rentalescrow.Configuration{
				ProgramID: defaultProgramID,
				Ticker:    ticker,
			},
		},
		"cash": []cash.GenesisAccount{
			{Address: addr, Balance: coin.NewCoin(genesisBalance, ticker)},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot serialize genesis: %s", err)
	}
	return raw, nil
}

// GenerateApp is used to create a stub for server/start.go command.
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "rental.db")
	}

	application, err := Application("rentald", Stack(), TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(rentweave.ChainInitializers(
		cash.Initializer{},
		rentalescrow.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}
