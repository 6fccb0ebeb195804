// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/ka"
)

// Ciphertext is the opaque 169-octet AEAD encryption of a swap plaintext.
type Ciphertext struct {
	b [CiphertextLen]byte
}

// Bytes returns the canonical 169-octet encoding of the ciphertext.
func (c Ciphertext) Bytes() []byte {
	out := make([]byte, CiphertextLen)
	copy(out, c.b[:])
	return out
}

// CiphertextFromBytes wraps an exact-length ciphertext buffer.
func CiphertextFromBytes(b []byte) (Ciphertext, error) {
	if len(b) != CiphertextLen {
		return Ciphertext{}, ErrSwapDeserialization
	}
	var c Ciphertext
	copy(c.b[:], b)
	return c, nil
}

// WrappedOVK is the opaque 80-octet AEAD encryption of (pk_d ‖ esk) under
// the sender's outgoing-cipher key, letting the sender alone recover a
// swap they created.
type WrappedOVK struct {
	b [WrappedOVKLen]byte
}

// Bytes returns the canonical 80-octet encoding of the wrapped OVK.
func (w WrappedOVK) Bytes() []byte {
	out := make([]byte, WrappedOVKLen)
	copy(out, w.b[:])
	return out
}

// WrappedOVKFromBytes wraps an exact-length wrapped-OVK buffer.
func WrappedOVKFromBytes(b []byte) (WrappedOVK, error) {
	if len(b) != WrappedOVKLen {
		return WrappedOVK{}, ErrSwapDeserialization
	}
	var w WrappedOVK
	copy(w.b[:], b)
	return w, nil
}

// Encrypt seals the plaintext under a key derived from esk and the
// plaintext's own (pk_d, b_d), returning the 169-octet ciphertext and the
// ephemeral public key epk the receiver needs to recompute the same key.
//
// esk must be fresh for every call: the derived key is used exactly once,
// under the fixed all-zero nonce, and reuse across two distinct plaintexts
// would break the AEAD's confidentiality guarantee.
func (p Plaintext) Encrypt(esk ka.Secret) (Ciphertext, ka.Public, error) {
	epk, err := esk.DiversifiedPublic(p.bd)
	if err != nil {
		return Ciphertext{}, ka.Public{}, err
	}

	shared, err := esk.Agree(p.pkd)
	if err != nil {
		// The distilled specification declares key agreement infallible
		// for valid inputs; a caller that reaches this with a pkd already
		// validated via DecodePublic has hit a programming error, not a
		// recoverable condition.
		panic("swap: key agreement failed for validated transmission key: " + err.Error())
	}

	key := deriveDataKey(shared, epk)
	sealed, err := aeadSeal(key, p.Bytes())
	if err != nil {
		return Ciphertext{}, ka.Public{}, err
	}

	ct, err := CiphertextFromBytes(sealed)
	if err != nil {
		return Ciphertext{}, ka.Public{}, err
	}
	return ct, epk, nil
}

// EncryptKey wraps the recipient's transmission key and the sender's own
// ephemeral secret under a key derived from the sender's outgoing viewing
// key and epk, so the sender can later recover (pk_d, esk) — and hence the
// plaintext — from ovk and epk alone, without having kept esk around.
func (p Plaintext) EncryptKey(esk ka.Secret, ovk []byte) (WrappedOVK, error) {
	epk, err := esk.DiversifiedPublic(p.bd)
	if err != nil {
		return WrappedOVK{}, err
	}

	ock := deriveOutgoingCipherKey(ovk, epk)

	op := make([]byte, 0, 64)
	op = append(op, p.pkd.Bytes()...)
	op = append(op, esk.Bytes()...)

	sealed, err := aeadSeal(ock, op)
	if err != nil {
		return WrappedOVK{}, err
	}
	return WrappedOVKFromBytes(sealed)
}

// Decrypt recovers the swap plaintext given the shared ephemeral secret
// esk, the recipient's transmission key, and the recipient's diversified
// basepoint. esk here is supplied by the enclosing protocol (typically
// recovered by the receiver via address scanning, or by the sender via
// Recover below) — this core never derives it on its own.
func (c Ciphertext) Decrypt(esk ka.Secret, transmissionKey ka.Public, diversifiedBasepoint group.Element) (Plaintext, error) {
	shared, err := esk.Agree(transmissionKey)
	if err != nil {
		return Plaintext{}, ErrDecryption
	}
	epk, err := esk.DiversifiedPublic(diversifiedBasepoint)
	if err != nil {
		return Plaintext{}, ErrDecryption
	}

	key := deriveDataKey(shared, epk)
	opened, err := aeadOpen(key, c.Bytes())
	if err != nil {
		return Plaintext{}, ErrDecryption
	}

	return PlaintextFromBytes(opened)
}

// Recover unwraps a WrappedOVK using the sender's outgoing viewing key and
// the swap's ephemeral public key, returning the recipient's transmission
// key and the original ephemeral secret — everything needed to call
// Decrypt and recover the plaintext the sender sent.
func Recover(w WrappedOVK, ovk []byte, epk ka.Public) (ka.Public, ka.Secret, error) {
	ock := deriveOutgoingCipherKey(ovk, epk)

	op, err := aeadOpen(ock, w.Bytes())
	if err != nil {
		return ka.Public{}, ka.Secret{}, ErrDecryption
	}
	if len(op) != 64 {
		return ka.Public{}, ka.Secret{}, ErrSwapDeserialization
	}

	pkd, err := ka.DecodePublic(op[:32])
	if err != nil {
		return ka.Public{}, ka.Secret{}, ErrSwapDeserialization
	}
	esk, err := ka.SecretFromBytes(op[32:])
	if err != nil {
		return ka.Public{}, ka.Secret{}, ErrSwapDeserialization
	}

	return pkd, esk, nil
}
