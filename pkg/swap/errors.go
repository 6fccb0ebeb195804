// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import "errors"

var (
	// ErrSwapTypeUnsupported is returned when a 153-octet buffer's leading
	// type octet is not TypeSwap. Future swap types widen this check; an
	// unrecognized tag is never treated as version-compatible.
	ErrSwapTypeUnsupported = errors.New("swap: unsupported swap type")

	// ErrSwapDeserialization is returned for any length mismatch,
	// sub-slice conversion failure, or group-decompression failure while
	// parsing a swap plaintext.
	ErrSwapDeserialization = errors.New("swap: deserialization error")

	// ErrDecryption is returned when AEAD tag verification fails, for
	// either the swap ciphertext or the wrapped OVK payload. It
	// deliberately does not distinguish a tag mismatch from a length
	// mismatch: both collapse to this single error kind.
	ErrDecryption = errors.New("swap: decryption error")
)
