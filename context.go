package rentweave

import (
	"context"
	"fmt"
	"regexp"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context carries the block header, the chain id and the logger down the
// handler stack. Values are set once by the application and never
// overwritten by a decorator.
type Context = context.Context

type (
	headerKey  struct{}
	chainIDKey struct{}
	loggerKey  struct{}
)

// DefaultLogger is returned by GetLogger when no logger was set.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID reports whether the chain id is 6 to 20 characters of
// letters, digits, underscore and dash. Signatures commit to the chain id,
// so a booking signed for one chain is never valid on another.
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

// WithHeader sets the header of the block being processed. It panics if a
// header is already set.
func WithHeader(ctx Context, header abci.Header) Context {
	if _, ok := GetHeader(ctx); ok {
		panic("block header already set")
	}
	return context.WithValue(ctx, headerKey{}, header)
}

// GetHeader returns the header of the block being processed. Use
// NewBlockInfo to read the block clock.
func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(headerKey{}).(abci.Header)
	return h, ok
}

// WithChainID sets the chain id. It panics if a chain id is already set or
// the value is not valid.
func WithChainID(ctx Context, chainID string) Context {
	if _, ok := ctx.Value(chainIDKey{}).(string); ok {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain id %q", chainID))
	}
	return context.WithValue(ctx, chainIDKey{}, chainID)
}

// GetChainID returns the chain id. The application sets it at genesis, so
// a missing value is a programming error and GetChainID panics.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey{}).(string)
	if !ok {
		panic("chain id not set")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithLogInfo returns a context whose logger includes keyvals in every
// entry.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
