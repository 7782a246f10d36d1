package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/gconf"
	"github.com/iov-one/rentweave/store"
	"github.com/iov-one/rentweave/weavetest/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"conf": {
			"cash": {"native_ticker": "RENT", "byte_cost": 2, "account_overhead": 128}
		},
		"cash": [
			{"address": "5AE2C58796B0AD48FFE7602EAC3353488C859A2B", "balance": "1000000 RENT"},
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "balance": {"ticker": "RENT", "amount": 3}, "executable": true}
		]
	}`
	var opts rentweave.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	var conf Configuration
	require.NoError(t, gconf.Load(db, "cash", &conf))
	assert.Equal(t, Configuration{NativeTicker: "RENT", ByteCost: 2, AccountOverhead: 128}, conf)

	ctrl := NewController(NewBucket())
	guest := rentweave.Address(fromHex(t, "5AE2C58796B0AD48FFE7602EAC3353488C859A2B"))
	acc, err := ctrl.Account(db, guest)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), acc.Amount)
	assert.Equal(t, "RENT", acc.Ticker)

	program := rentweave.Address(fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"))
	plain, err := ctrl.IsPlain(db, program)
	require.NoError(t, err)
	assert.Equal(t, false, plain)
}

func TestGenesisErrors(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"missing configuration": {
			genesis: `{"cash": []}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid native ticker": {
			genesis: `{"conf": {"cash": {"native_ticker": "x"}}}`,
			wantErr: errors.ErrCurrency,
		},
		"invalid address": {
			genesis: `{"conf": {"cash": {"native_ticker": "RENT"}}, "cash": [{"address": "0011", "balance": "1 RENT"}]}`,
			wantErr: errors.ErrInput,
		},
		"invalid balance ticker": {
			genesis: `{"conf": {"cash": {"native_ticker": "RENT"}}, "cash": [{"address": "5AE2C58796B0AD48FFE7602EAC3353488C859A2B", "balance": {"ticker": "x", "amount": 1}}]}`,
			wantErr: errors.ErrCurrency,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts rentweave.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
