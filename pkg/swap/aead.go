// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	"golang.org/x/crypto/chacha20poly1305"
)

// encryptionNonce is the fixed 96-bit nonce used for both AEAD operations
// on a given swap (sealing the plaintext, and wrapping the outgoing
// cipher key). Reuse is safe only because both keys are derived from
// per-swap ephemeral material and are therefore single-use: neither
// seal below is ever called twice under the same derived key.
var encryptionNonce = [chacha20poly1305.NonceSize]byte{}

// CiphertextLen is the canonical byte width of an encrypted swap
// plaintext (153 octets of plaintext plus a 16-octet Poly1305 tag).
const CiphertextLen = PlaintextLen + chacha20poly1305.Overhead

// WrappedOVKLen is the canonical byte width of a wrapped outgoing
// viewing key payload (64 octets of pk_d‖esk plus a 16-octet tag).
const WrappedOVKLen = 64 + chacha20poly1305.Overhead

func aeadSeal(key [32]byte, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, encryptionNonce[:], plaintext, nil), nil
}

func aeadOpen(key [32]byte, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, encryptionNonce[:], ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}
