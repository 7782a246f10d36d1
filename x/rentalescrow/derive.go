package rentalescrow

import (
	"filippo.io/edwards25519"
	"github.com/fxamacker/cbor/v2"
	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"github.com/zeebo/blake3"
)

const (
	// derivationContext is the blake3 key derivation context. It must never
	// change, or all existing bookings become unreachable.
	derivationContext = "rentweave rentalescrow 2024-06-01 address derivation"

	conditionExt = "rentals"
	bookingSeed  = "booking"
	vaultSeed    = "vault"

	maxNonce = 255
)

// detEncoding is the deterministic cbor encoding of the derivation tuple.
var detEncoding = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// derivationTuple is the material hashed into an address.
type derivationTuple struct {
	_         struct{} `cbor:",toarray"`
	ProgramID string
	Seed      string
	BookingID string
	Host      []byte
	Guest     []byte
	Nonce     uint8
}

// Derivation is the result of deriving an address from a booking tuple.
type Derivation struct {
	Address rentweave.Address
	// Nonce is the value that moved the digest off the ed25519 curve.
	Nonce uint32

	cond rentweave.Condition
}

// Capability authorizes moving funds out of a booking vault. It can be
// computed by anyone from public data and it is never stored.
type Capability struct {
	cond rentweave.Condition
}

// Condition returns the vault authority.
func (c Capability) Condition() rentweave.Condition {
	return c.cond
}

// DeriveBooking returns the address of the booking record of given tuple.
func DeriveBooking(conf *Configuration, bookingID string, host, guest rentweave.Address) (Derivation, error) {
	return derive(conf, bookingSeed, bookingID, host, guest)
}

// DeriveVault returns the address of the vault account of given tuple
// together with the capability controlling it.
func DeriveVault(conf *Configuration, bookingID string, host, guest rentweave.Address) (Derivation, Capability, error) {
	d, err := derive(conf, vaultSeed, bookingID, host, guest)
	if err != nil {
		return Derivation{}, Capability{}, err
	}
	return d, Capability{cond: d.cond}, nil
}

// derive searches nonces from 255 down to 0 and returns the first digest
// that is not a valid ed25519 point, so that the nonce is reproducible by
// any client. Only this package can present the resulting condition: its
// extension is never produced by a signature.
func derive(conf *Configuration, seed, bookingID string, host, guest rentweave.Address) (Derivation, error) {
	if err := host.Validate(); err != nil {
		return Derivation{}, errors.Wrap(err, "host")
	}
	if err := guest.Validate(); err != nil {
		return Derivation{}, errors.Wrap(err, "guest")
	}

	tuple := derivationTuple{
		ProgramID: conf.ProgramID,
		Seed:      seed,
		BookingID: bookingID,
		Host:      host,
		Guest:     guest,
	}
	var digest [32]byte
	for nonce := maxNonce; nonce >= 0; nonce-- {
		tuple.Nonce = uint8(nonce)
		material, err := detEncoding.Marshal(tuple)
		if err != nil {
			return Derivation{}, errors.Wrapf(errors.ErrInput, "cannot encode derivation tuple: %s", err)
		}
		blake3.DeriveKey(derivationContext, material, digest[:])
		if onCurve(digest[:]) {
			continue
		}
		cond := rentweave.NewCondition(conditionExt, seed, digest[:])
		return Derivation{
			Address: cond.Address(),
			Nonce:   uint32(nonce),
			cond:    cond,
		}, nil
	}
	return Derivation{}, errors.Wrap(errors.ErrState, "no off curve address for the booking")
}

func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
