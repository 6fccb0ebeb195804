// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ka implements the key-agreement primitive the swap core relies
// on: per-swap ephemeral secrets, diversified public keys derived against a
// recipient-chosen basepoint, and the resulting shared secret. It is a thin,
// domain-flavored wrapper around internal/group.
package ka

import (
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"

	"github.com/luxfi/swap/internal/group"
)

// ErrKeyAgreementFailed is returned when a Diffie-Hellman agreement
// degenerates (a peer supplied, or a basepoint decompressed to, a
// low-order point). The distilled specification treats this path as
// declared-infallible for valid inputs; callers that have already
// validated their inputs via Decompress/DecodePublic should treat this as
// a programming error rather than routine control flow.
var ErrKeyAgreementFailed = errors.New("ka: key agreement failed")

// Secret is an ephemeral (or long-lived, for a receiver's incoming
// viewing scalar) Diffie-Hellman secret scalar.
type Secret struct {
	scalar group.Scalar
}

// Public is a party's Diffie-Hellman public key in its canonical 32-octet
// encoding.
type Public struct {
	element group.Element
}

// SharedSecret is the output of a completed Diffie-Hellman agreement.
type SharedSecret struct {
	b [group.ElementLen]byte
}

// Bytes returns a read-only view of the 32-octet shared secret.
func (s SharedSecret) Bytes() []byte {
	out := make([]byte, len(s.b))
	copy(out, s.b[:])
	return out
}

// NewSecret draws a fresh random secret scalar.
func NewSecret() (Secret, error) {
	s, err := group.RandomScalar()
	if err != nil {
		return Secret{}, err
	}
	return Secret{scalar: s}, nil
}

// SecretFromBytes decodes a 32-octet scalar encoding into a Secret.
func SecretFromBytes(b []byte) (Secret, error) {
	s, err := group.DecodeScalar(b)
	if err != nil {
		return Secret{}, err
	}
	return Secret{scalar: s}, nil
}

// Bytes returns the canonical 32-octet encoding of the secret scalar.
func (s Secret) Bytes() []byte {
	return s.scalar.Bytes()
}

// DiversifiedPublic computes esk * b_d: the sender's ephemeral public key
// against the recipient's diversified basepoint, i.e. epk.
func (s Secret) DiversifiedPublic(bd group.Element) (Public, error) {
	e, err := s.scalar.Mult(bd)
	if err != nil {
		return Public{}, ErrKeyAgreementFailed
	}
	return Public{element: e}, nil
}

// Agree performs esk * pk_d, producing the shared secret this secret holds
// in common with the party whose public key is pk.
func (s Secret) Agree(pk Public) (SharedSecret, error) {
	e, err := s.scalar.Mult(pk.element)
	if err != nil {
		return SharedSecret{}, ErrKeyAgreementFailed
	}
	var ss SharedSecret
	copy(ss.b[:], e.Compress())
	return ss, nil
}

// DecodePublic validates and wraps a 32-octet public-key encoding.
func DecodePublic(b []byte) (Public, error) {
	e, err := group.Decompress(b)
	if err != nil {
		return Public{}, err
	}
	return Public{element: e}, nil
}

// Bytes returns the canonical 32-octet encoding of the public key.
func (p Public) Bytes() []byte {
	return p.element.Compress()
}

// SecretFromSeed deterministically derives a secret scalar from an
// arbitrary-length seed via HKDF-Blake2b-256, with info binding the output
// to this package's domain so the same seed used elsewhere never collides
// with a ka.Secret. Intended for building reproducible test vectors, not
// for per-swap ephemeral secrets, which must come from NewSecret's CSPRNG.
func SecretFromSeed(seed []byte) (Secret, error) {
	newBlake2b256 := func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	}
	r := hkdf.New(newBlake2b256, seed, nil, []byte("luxfi/swap ka.SecretFromSeed"))

	var buf [group.ScalarLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Secret{}, err
	}
	s, err := group.DecodeScalar(buf[:])
	if err != nil {
		return Secret{}, err
	}
	return Secret{scalar: s}, nil
}

// DecodeBasepoint validates and wraps a 32-octet diversified-basepoint
// encoding. It is the same decompression as DecodePublic; the distinct name
// mirrors the distilled spec's separate b_d / pk_d roles for the same
// underlying group-element encoding.
func DecodeBasepoint(b []byte) (group.Element, error) {
	return group.Decompress(b)
}
