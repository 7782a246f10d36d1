/*
Package app assembles the rental escrow node: the transaction format, the
decorator stack in front of the rental handlers and the genesis setup.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/app"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/store/iavl"
	"github.com/iov-one/rentweave/x/cash"
	"github.com/iov-one/rentweave/x/rentalescrow"
	"github.com/iov-one/rentweave/x/sigs"
	"github.com/iov-one/rentweave/x/utils"
)

// Chain returns the decorators every transaction passes before it reaches
// a rental handler. The order matters: a panic anywhere below Recovery is
// an error, and the deliver savepoint sits below signature verification so
// that a failed booking still consumes the signer sequence.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router registers the book and host withdraw handlers. Handlers learn who
// signed the transaction from auth.
func Router(auth rentalescrow.Authenticator) *app.Router {
	r := app.NewRouter()
	rentalescrow.RegisterRoutes(r, auth, cash.NewController(cash.NewBucket()))
	return r
}

// Stack is the full node handler: Chain in front of the Router, with
// signatures as the only authentication.
func Stack() rentweave.Handler {
	return Chain().WithHandler(Router(sigs.Authenticate{}))
}

// Application returns the ABCI application serving h on top of the store
// found at dbPath.
func Application(name string, h rentweave.Handler, decode rentweave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store, err := app.NewStoreApp(name, kv, context.Background())
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "store app")
	}
	return app.NewBaseApp(store, decode, h, debug), nil
}

// CommitKVStore opens the iavl store at dbPath. An empty path gives an in
// memory store that is lost on exit.
func CommitKVStore(dbPath string) (rentweave.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database path %q", dbPath)
	}
	// leveldb appends its own .db suffix
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
}
