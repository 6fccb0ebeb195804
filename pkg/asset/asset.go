// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package asset holds the fixed-width asset identifier and trading-pair
// types a swap payload commits to. Asset identifiers themselves are
// produced by an external registry (out of scope here, per the swap
// core's external-interfaces contract); this package treats them as
// opaque 32-octet values, equal only by bytes.
package asset

import (
	"encoding/hex"
	"errors"
)

// IDLen is the canonical byte width of an AssetId.
const IDLen = 32

// ErrInvalidIDLength is returned when a byte slice of the wrong length is
// presented as an asset identifier.
var ErrInvalidIDLength = errors.New("asset: invalid asset id length")

// ID is an opaque, registry-assigned asset identifier.
type ID [IDLen]byte

// IDFromBytes validates and wraps a 32-octet asset identifier.
func IDFromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != IDLen {
		return id, ErrInvalidIDLength
	}
	copy(id[:], b)
	return id, nil
}

// IDFromHex parses a hex-encoded asset identifier.
func IDFromHex(s string) (ID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, err
	}
	return IDFromBytes(b)
}

// Bytes returns the raw 32-octet encoding of the identifier.
func (id ID) Bytes() []byte {
	out := make([]byte, IDLen)
	copy(out, id[:])
	return out
}

// String returns the hex representation of the identifier.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}
