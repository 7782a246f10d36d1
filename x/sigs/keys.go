package sigs

import (
	"bytes"
	"crypto/rand"

	"github.com/iov-one/rentweave"
	"github.com/iov-one/rentweave/errors"
	"golang.org/x/crypto/ed25519"
)

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Condition returns the condition fulfilled by a valid signature of this key.
func (k PublicKey) Condition() rentweave.Condition {
	return rentweave.NewCondition("sigs", "ed25519", k)
}

// Address returns the address controlled by this key.
func (k PublicKey) Address() rentweave.Address {
	return k.Condition().Address()
}

// Verify checks the signature of the message.
func (k PublicKey) Verify(message, sig []byte) bool {
	if len(k) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(k), message, sig)
}

// PrivateKey is an ed25519 private key.
type PrivateKey []byte

// GenPrivateKey returns a new random private key.
func GenPrivateKey() (PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "cannot generate key: %s", err)
	}
	return PrivateKey(priv), nil
}

// PrivateKeyFromSeed returns a deterministic key. Use it in tests only.
func PrivateKeyFromSeed(seed []byte) PrivateKey {
	padded := make([]byte, ed25519.SeedSize)
	copy(padded, seed)
	return PrivateKey(ed25519.NewKeyFromSeed(padded))
}

// PublicKey returns the matching public key.
func (k PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(k).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// Sign returns the signature of given message.
func (k PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(k) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(k), message), nil
}

// Equals compares two public keys.
func (k PublicKey) Equals(o PublicKey) bool {
	return bytes.Equal(k, o)
}
