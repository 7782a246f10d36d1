package utils

import (
	"context"
	"testing"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/app"
	"github.com/iov-one/rentweave/errors"
	"github.com/iov-one/rentweave/store"
	"github.com/iov-one/rentweave/weavetest"
	"github.com/iov-one/rentweave/weavetest/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		path     string
		handler  *weavetest.Handler
		wantErr  *errors.Error
		wantTags []common.KVPair
	}{
		"successful delivery is tagged": {
			path:     "rentalescrow/book",
			handler:  &weavetest.Handler{},
			wantTags: []common.KVPair{rentweave.Tag(ActionKey, []byte("rentalescrow/book"))},
		},
		"existing tags are preserved": {
			path: "rentalescrow/host_withdraw",
			handler: &weavetest.Handler{
				DeliverResult: rentweave.DeliverResult{
					Tags: []common.KVPair{rentweave.Tag("booking", []byte("abc"))},
				},
			},
			wantTags: []common.KVPair{
				rentweave.Tag("booking", []byte("abc")),
				rentweave.Tag(ActionKey, []byte("rentalescrow/host_withdraw")),
			},
		},
		"failure is not tagged": {
			path:    "rentalescrow/book",
			handler: &weavetest.Handler{DeliverErr: errors.ErrState},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			h := app.ChainDecorators(NewActionTagger()).WithHandler(tc.handler)
			tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: tc.path}}
			res, err := h.Deliver(context.Background(), store.MemStore(), tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantTags, res.Tags)
		})
	}
}
