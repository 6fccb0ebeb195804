// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package asset

import "errors"

// PairLen is the canonical byte width of a serialized TradingPair.
const PairLen = 2 * IDLen

// ErrInvalidPairLength is returned when a byte slice of the wrong length is
// presented as a trading pair.
var ErrInvalidPairLength = errors.New("asset: invalid trading pair length")

// Pair is an ordered pair of asset identifiers identifying a swap market
// direction. The ordering is positional, not canonical: this package does
// not enforce Asset1 < Asset2, nor any other admissibility policy — that is
// left to higher layers, per the swap core's Non-goals.
type Pair struct {
	Asset1 ID
	Asset2 ID
}

// NewPair builds a Pair from its two asset identifiers.
func NewPair(asset1, asset2 ID) Pair {
	return Pair{Asset1: asset1, Asset2: asset2}
}

// Bytes serializes the pair as Asset1 ‖ Asset2, 64 octets.
func (p Pair) Bytes() []byte {
	out := make([]byte, 0, PairLen)
	out = append(out, p.Asset1.Bytes()...)
	out = append(out, p.Asset2.Bytes()...)
	return out
}

// PairFromBytes parses a 64-octet trading pair.
func PairFromBytes(b []byte) (Pair, error) {
	if len(b) != PairLen {
		return Pair{}, ErrInvalidPairLength
	}
	asset1, err := IDFromBytes(b[0:IDLen])
	if err != nil {
		return Pair{}, err
	}
	asset2, err := IDFromBytes(b[IDLen:PairLen])
	if err != nil {
		return Pair{}, err
	}
	return NewPair(asset1, asset2), nil
}
