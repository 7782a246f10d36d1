package rentweave_test

import (
	"fmt"
	"testing"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestErrorResponse(t *testing.T) {
	cases := map[string]struct {
		err   error
		debug bool
		log   string
		code  uint32
	}{
		"stdlib error is redacted": {
			err:  fmt.Errorf("base"),
			log:  "internal error",
			code: 1,
		},
		"stdlib error in debug mode": {
			err:   fmt.Errorf("base"),
			debug: true,
			log:   "base",
			code:  1,
		},
		"registered error": {
			err:  errors.Wrap(errors.ErrUnauthorized, "host"),
			log:  "host: unauthorized",
			code: errors.ErrUnauthorized.ABCICode(),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := rentweave.DeliverOrError(nil, tc.err, tc.debug)
			assert.True(t, dres.IsErr())
			assert.Equal(t, "cannot deliver tx: "+tc.log, dres.Log)
			assert.Equal(t, tc.code, dres.Code)

			cres := rentweave.CheckOrError(nil, tc.err, tc.debug)
			assert.True(t, cres.IsErr())
			assert.Equal(t, "cannot check tx: "+tc.log, cres.Log)
			assert.Equal(t, tc.code, cres.Code)
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	dres := rentweave.DeliverOrError(&rentweave.DeliverResult{
		Data: []byte{1, 3, 4},
		Log:  "booked",
		Tags: []common.KVPair{rentweave.Tag("booking", []byte("ref"))},
	}, nil, false)
	assert.False(t, dres.IsErr())
	assert.EqualValues(t, []byte{1, 3, 4}, dres.Data)
	assert.Equal(t, "booked", dres.Log)
	assert.Len(t, dres.Tags, 1)
	assert.Equal(t, []byte("booking"), dres.Tags[0].Key)

	cres := rentweave.CheckOrError(&rentweave.CheckResult{GasAllocated: 300}, nil, false)
	assert.False(t, cres.IsErr())
	assert.Equal(t, int64(300), cres.GasWanted)
	assert.Empty(t, cres.Data)
}
