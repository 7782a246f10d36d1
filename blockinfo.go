package rentweave

import (
	"time"

	"github.com/iov-one/rentweave/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

var errBlockTime = errors.Wrap(errors.ErrHuman, "block time not present in the context")

// UnixTime is a point in time as POSIX seconds. Booking dates are stored in
// this unit and compared against the block clock.
type UnixTime int64

// AsUnixTime truncates given time to whole seconds.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// Time returns the same moment in UTC.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}

// BlockInfo is the part of the block header a handler may depend on. The
// header time is the only clock available to the state machine, so that
// every node gets the same answer.
type BlockInfo struct {
	header abci.Header
	logger log.Logger
}

// NewBlockInfo reads the block header set on the context. It fails if the
// header or its time is missing.
func NewBlockInfo(ctx Context) (BlockInfo, error) {
	header, ok := GetHeader(ctx)
	if !ok || header.Time.IsZero() {
		return BlockInfo{}, errBlockTime
	}
	return BlockInfo{header: header, logger: GetLogger(ctx)}, nil
}

func (b BlockInfo) Height() int64 {
	return b.header.Height
}

func (b BlockInfo) BlockTime() time.Time {
	return b.header.Time
}

func (b BlockInfo) UnixTime() UnixTime {
	return AsUnixTime(b.header.Time)
}

func (b BlockInfo) Logger() log.Logger {
	return b.logger
}

// IsExpired returns true if given time is not after the block time.
// Expiration is inclusive: a time equal to the block time is expired.
func (b BlockInfo) IsExpired(t UnixTime) bool {
	return t <= b.UnixTime()
}

// InThePast returns true if given time is strictly before the block time.
func (b BlockInfo) InThePast(t UnixTime) bool {
	return t < b.UnixTime()
}
