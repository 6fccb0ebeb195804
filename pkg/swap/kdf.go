// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	"golang.org/x/crypto/blake2b"

	"github.com/luxfi/swap/pkg/ka"
)

// deriveDataKey computes k_enc = Blake2b-256(shared_secret ‖ epk), the
// per-swap symmetric key used to seal the plaintext. Domain separation
// between this key and the OVK-wrapping key (deriveOutgoingCipherKey)
// comes solely from the differing first input; no length prefix or
// personalization string is added, so that peers deriving the same inputs
// always land on the same key.
func deriveDataKey(shared ka.SharedSecret, epk ka.Public) [32]byte {
	return blake2b256(shared.Bytes(), epk.Bytes())
}

// deriveOutgoingCipherKey computes ock = Blake2b-256(ovk ‖ epk), the key
// that wraps (pk_d, esk) so the original sender can recover a swap they
// sent using only their outgoing viewing key.
func deriveOutgoingCipherKey(ovk []byte, epk ka.Public) [32]byte {
	return blake2b256(ovk, epk.Bytes())
}

func blake2b256(parts ...[]byte) [32]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails when a non-nil key exceeds 64 bytes;
		// this call site never passes a key, so this path is
		// unreachable in practice and is a programming error if hit.
		panic("swap: blake2b-256 initialization failed: " + err.Error())
	}
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
