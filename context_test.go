package rentweave

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextValuesAreSetOnce(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeader(ctx)
	assert.False(t, ok)
	header := abci.Header{Height: 12, Time: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	ctx = WithHeader(ctx, header)
	got, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.Equal(t, header, got)
	assert.Panics(t, func() { WithHeader(ctx, abci.Header{Height: 13}) })

	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "bad") })
	withID := WithChainID(ctx, "rent-chain")
	assert.Equal(t, "rent-chain", GetChainID(withID))
	assert.Panics(t, func() { WithChainID(withID, "rent-chain-2") })
}

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	var out bytes.Buffer
	ctx := WithLogger(bg, log.NewTMLogger(&out))
	ctx = WithLogInfo(ctx, "booking", "abc")
	GetLogger(ctx).Info("booked")
	assert.Contains(t, out.String(), "booking=abc")

	// the parent logger is not modified
	out.Reset()
	GetLogger(WithLogger(bg, log.NewTMLogger(&out))).Info("booked")
	assert.NotContains(t, out.String(), "booking=abc")
}

func TestChainID(t *testing.T) {
	cases := map[string]bool{
		"":                              false,
		"rent":                          false,
		"rental":                        true,
		"rent-net_2026":                 true,
		"rent;net":                      false,
		"this-chain-id-is-way-too-long": false,
	}

	for chainID, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(chainID), chainID)
	}
}
