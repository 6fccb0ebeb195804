// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fee holds the swap payload's fee amount.
package fee

import "encoding/binary"

// Len is the canonical byte width of a serialized Fee.
const Len = 8

// Fee is a 64-bit unsigned fee amount, little-endian on the wire.
type Fee struct {
	Amount uint64
}

// New builds a Fee from a raw amount.
func New(amount uint64) Fee {
	return Fee{Amount: amount}
}

// Bytes serializes the fee as 8 little-endian octets.
func (f Fee) Bytes() []byte {
	out := make([]byte, Len)
	binary.LittleEndian.PutUint64(out, f.Amount)
	return out
}

// FromBytes parses an 8-octet little-endian fee amount. The caller is
// expected to have already validated the slice length; FromBytes panics
// via binary.LittleEndian.Uint64 semantics only if given a too-short
// slice, so callers working off the canonical swap layout (which fixes
// this field's width at parse time) never hit that path.
func FromBytes(b []byte) Fee {
	return Fee{Amount: binary.LittleEndian.Uint64(b)}
}
