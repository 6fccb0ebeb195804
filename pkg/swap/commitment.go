// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	luxcrypto "github.com/luxfi/crypto"
)

// CommitmentLen is the byte width of a swap commitment handle.
const CommitmentLen = 32

// Commitment derives a public, non-secret handle for a (ciphertext,
// wrapped-OVK) pair: Keccak256(ciphertext ‖ wrapped). It lets an external
// indexer harness (out of scope for this core, per its external-interfaces
// contract) reference a swap without ever decrypting it.
//
// This is deliberately not folded into either KDF — doing so would violate
// the KDFs' domain-separation invariant, which rests solely on their
// differing first input — and is never used as AEAD associated data, so it
// carries no claim about additional integrity beyond what the AEAD tags
// already provide. It exists purely as a lookup key.
func Commitment(c Ciphertext, w WrappedOVK) [CommitmentLen]byte {
	digest := luxcrypto.Keccak256(c.Bytes(), w.Bytes())
	var out [CommitmentLen]byte
	copy(out[:], digest)
	return out
}
