// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package swap implements the confidential swap payload: its canonical
// 153-octet plaintext encoding, the 169-octet AEAD ciphertext it encrypts
// to, and the 80-octet wrapped outgoing-viewing-key blob that lets the
// original sender recover what they sent.
package swap

import (
	"encoding/binary"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/asset"
	"github.com/luxfi/swap/pkg/fee"
	"github.com/luxfi/swap/pkg/ka"
)

const (
	// TypeSwap is the only currently defined swap type tag.
	TypeSwap byte = 0x00

	typeOffset  = 0
	typeLen     = 1
	pairOffset  = typeOffset + typeLen
	pairLen     = asset.PairLen
	t1Offset    = pairOffset + pairLen
	t1Len       = 8
	t2Offset    = t1Offset + t1Len
	t2Len       = 8
	feeOffset   = t2Offset + t2Len
	feeLen      = fee.Len
	pkdOffset   = feeOffset + feeLen
	pkdLen      = group.ElementLen
	bdOffset    = pkdOffset + pkdLen
	bdLen       = group.ElementLen

	// PlaintextLen is the canonical byte width of an encoded swap
	// plaintext (SWAP_LEN_BYTES in the distilled specification).
	PlaintextLen = bdOffset + bdLen
)

// Plaintext is the confidential content of a swap order: the trading
// pair, the two offered amounts, the fee, and the recipient's diversified
// key material.
type Plaintext struct {
	tradingPair asset.Pair
	t1          uint64
	t2          uint64
	fee         fee.Fee
	bd          group.Element
	pkd         ka.Public
}

// FromParts builds a Plaintext from its components. It does not validate
// that bd is a genuine diversified generator or that pkd lies on the
// group beyond the well-formedness already implied by their Go types —
// parsing from bytes or from the protobuf bridge performs that extra
// decompression check. This asymmetry is intentional (see DESIGN.md);
// callers that construct a Plaintext from already-decompressed values, or
// from elements computed by scalar multiplication (as every in-repo caller
// does), are unaffected.
func FromParts(pair asset.Pair, t1, t2 uint64, f fee.Fee, bd group.Element, pkd ka.Public) Plaintext {
	return Plaintext{
		tradingPair: pair,
		t1:          t1,
		t2:          t2,
		fee:         f,
		bd:          bd,
		pkd:         pkd,
	}
}

// TradingPair returns the swap's trading pair.
func (p Plaintext) TradingPair() asset.Pair { return p.tradingPair }

// T1 returns the amount of asset_1 offered.
func (p Plaintext) T1() uint64 { return p.t1 }

// T2 returns the amount of asset_2 offered.
func (p Plaintext) T2() uint64 { return p.t2 }

// Fee returns the swap's fee.
func (p Plaintext) Fee() fee.Fee { return p.fee }

// DiversifiedGenerator returns b_d, the diversified basepoint the
// recipient supplied in their address.
func (p Plaintext) DiversifiedGenerator() group.Element { return p.bd }

// TransmissionKey returns pk_d, the recipient's diversified transmission
// public key.
func (p Plaintext) TransmissionKey() ka.Public { return p.pkd }

// Bytes encodes the plaintext into its canonical 153-octet layout.
func (p Plaintext) Bytes() []byte {
	out := make([]byte, PlaintextLen)
	out[typeOffset] = TypeSwap
	copy(out[pairOffset:pairOffset+pairLen], p.tradingPair.Bytes())
	binary.LittleEndian.PutUint64(out[t1Offset:t1Offset+t1Len], p.t1)
	binary.LittleEndian.PutUint64(out[t2Offset:t2Offset+t2Len], p.t2)
	copy(out[feeOffset:feeOffset+feeLen], p.fee.Bytes())
	copy(out[pkdOffset:pkdOffset+pkdLen], p.pkd.Bytes())
	copy(out[bdOffset:bdOffset+bdLen], p.bd.Compress())
	return out
}

// PlaintextFromBytes parses a canonical 153-octet swap plaintext.
func PlaintextFromBytes(b []byte) (Plaintext, error) {
	if len(b) != PlaintextLen {
		return Plaintext{}, ErrSwapDeserialization
	}
	if b[typeOffset] != TypeSwap {
		return Plaintext{}, ErrSwapTypeUnsupported
	}

	pair, err := asset.PairFromBytes(b[pairOffset : pairOffset+pairLen])
	if err != nil {
		return Plaintext{}, ErrSwapDeserialization
	}

	t1 := binary.LittleEndian.Uint64(b[t1Offset : t1Offset+t1Len])
	t2 := binary.LittleEndian.Uint64(b[t2Offset : t2Offset+t2Len])
	f := fee.FromBytes(b[feeOffset : feeOffset+feeLen])

	pkd, err := ka.DecodePublic(b[pkdOffset : pkdOffset+pkdLen])
	if err != nil {
		return Plaintext{}, ErrSwapDeserialization
	}

	bd, err := group.Decompress(b[bdOffset : bdOffset+bdLen])
	if err != nil {
		return Plaintext{}, ErrSwapDeserialization
	}

	return FromParts(pair, t1, t2, f, bd, pkd), nil
}

// Equal reports whether two plaintexts encode to the same canonical bytes.
func (p Plaintext) Equal(other Plaintext) bool {
	a, b := p.Bytes(), other.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
