package rentweave_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexadecimal address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := rentweave.Address(b)

		So(addr.String(), ShouldNotEqual, fmt.Sprintf("%X", b[:5]))
		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", b))
	})

	Convey("test hexadecimal condition printing", t, func() {
		cond := rentweave.NewCondition("rentals", "booking", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", cond))
		So(cond.String(), ShouldEqual, fmt.Sprintf("rentals/booking/%X", []byte("ABCD123456LHB")))
	})

	Convey("empty address has a placeholder", t, func() {
		So(rentweave.Address(nil).String(), ShouldEqual, "(nil)")
	})
}

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond     rentweave.Condition
		wantErr  *errors.Error
		wantExt  string
		wantType string
		wantData []byte
	}{
		"valid condition": {
			cond:     rentweave.NewCondition("rentals", "vault", []byte{0, 1, 2}),
			wantExt:  "rentals",
			wantType: "vault",
			wantData: []byte{0, 1, 2},
		},
		"data may contain newline": {
			cond:     rentweave.NewCondition("sigs", "ed25519", []byte("a\nb")),
			wantExt:  "sigs",
			wantType: "ed25519",
			wantData: []byte("a\nb"),
		},
		"extension too short": {
			cond:    rentweave.NewCondition("ab", "vault", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"type too long": {
			cond:    rentweave.NewCondition("rentals", "verylongtype", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"missing data": {
			cond:    rentweave.Condition("rentals/vault/"),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if !tc.wantErr.Is(tc.cond.Validate()) {
				t.Fatal("validate and parse disagree")
			}
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantType, typ)
			assert.Equal(t, tc.wantData, data)
		})
	}
}

func TestConditionAddress(t *testing.T) {
	a := rentweave.NewCondition("rentals", "vault", []byte{1})
	b := rentweave.NewCondition("rentals", "vault", []byte{2})

	assert.Len(t, a.Address(), rentweave.AddressLength)
	assert.True(t, a.Address().Equals(a.Address()))
	assert.False(t, a.Address().Equals(b.Address()))
	assert.NoError(t, a.Address().Validate())
	assert.Nil(t, rentweave.NewAddress(nil))
}

func TestAddressUnmarshalJSON(t *testing.T) {
	raw := []byte("twenty-bytes-address")
	cond := rentweave.NewCondition("foo", "bar", []byte("conditiondata"))
	b32, err := rentweave.Address(raw).Bech32()
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr rentweave.Address
	}{
		"default decoding": {
			json:     fmt.Sprintf("%q", hex.EncodeToString(raw)),
			wantAddr: raw,
		},
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%s"`, hex.EncodeToString(raw)),
			wantAddr: raw,
		},
		"hex of invalid length": {
			json:    `"hex:6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: cond.Address(),
		},
		"bech32 decoding": {
			json:     fmt.Sprintf(`"bech32:%s"`, b32),
			wantAddr: raw,
		},
		"malformed bech32": {
			json:    `"bech32:rent1xxxxx"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a rentweave.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressBech32RoundTrip(t *testing.T) {
	addr := rentweave.NewCondition("rentals", "booking", []byte("x")).Address()
	enc, err := addr.Bech32()
	require.NoError(t, err)
	assert.Contains(t, enc, rentweave.AddressHRP+"1")

	got, err := rentweave.ParseBech32(enc)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition rentweave.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: rentweave.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"zero condition": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got rentweave.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   rentweave.Condition
		wantJSON string
	}{
		"cond encoding": {
			source:   rentweave.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJSON: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJSON: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJSON, string(got))
		})
	}
}
