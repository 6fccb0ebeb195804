// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pb implements the raw wire-format bridge for the swap payload
// messages: field-by-field encode and decode using
// google.golang.org/protobuf/encoding/protowire directly, without a
// protoc-generated descriptor. Only the field framing protobuf itself
// defines is in scope here; no reflection-based proto.Message runtime is
// built around it.
package pb

import (
	"errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers for the bridge messages. These mirror a conventional
// proto3 layout for the swap payload: SwapPlaintext carries the trading
// pair, the two offered amounts, the fee, and the recipient's diversified
// key material; TradingPair and Fee are themselves messages so that both
// nest the same way a real .proto schema would.
const (
	fieldSwapPlaintextTradingPair = 1
	fieldSwapPlaintextT1          = 2
	fieldSwapPlaintextT2          = 3
	fieldSwapPlaintextFee         = 4
	fieldSwapPlaintextBD          = 5
	fieldSwapPlaintextPKD         = 6

	fieldTradingPairAsset1 = 1
	fieldTradingPairAsset2 = 2

	fieldFeeAmount = 1
)

// ErrMissingField is returned when a required message field is absent from
// the wire bytes.
var ErrMissingField = errors.New("pb: missing required field")

// ErrWrongLength is returned when a fixed-width bytes field is present but
// not of its required length.
var ErrWrongLength = errors.New("pb: field has wrong length")

// ErrMalformed is returned when the wire bytes themselves cannot be parsed
// as a sequence of protobuf fields.
var ErrMalformed = errors.New("pb: malformed wire bytes")

// AssetId is the wire-level asset identifier: 32 raw octets.
type AssetId struct {
	Bytes []byte
}

// Fee is the wire-level fee message.
type Fee struct {
	Amount uint64
}

// MarshalFee encodes a Fee message.
func MarshalFee(f Fee) []byte {
	var out []byte
	out = protowire.AppendTag(out, fieldFeeAmount, protowire.VarintType)
	out = protowire.AppendVarint(out, f.Amount)
	return out
}

// UnmarshalFee decodes a Fee message. MarshalFee always writes amount, but a
// proto3 encoder may omit a zero amount entirely; an empty Fee message is
// therefore treated as a valid (present, zero-valued) fee rather than a
// missing field — Fee has no required sub-fields of its own.
func UnmarshalFee(b []byte) (Fee, error) {
	var f Fee
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Fee{}, ErrMalformed
		}
		b = b[n:]
		switch {
		case num == fieldFeeAmount && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Fee{}, ErrMalformed
			}
			f.Amount = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Fee{}, ErrMalformed
			}
			b = b[n:]
		}
	}
	return f, nil
}

// MarshalTradingPair encodes a TradingPair message.
func MarshalTradingPair(asset1, asset2 AssetId) []byte {
	var out []byte
	out = protowire.AppendTag(out, fieldTradingPairAsset1, protowire.BytesType)
	out = protowire.AppendBytes(out, asset1.Bytes)
	out = protowire.AppendTag(out, fieldTradingPairAsset2, protowire.BytesType)
	out = protowire.AppendBytes(out, asset2.Bytes)
	return out
}

// UnmarshalTradingPair decodes a TradingPair message, requiring both
// asset_1 and asset_2 to be present.
func UnmarshalTradingPair(b []byte) (asset1, asset2 AssetId, err error) {
	var seen1, seen2 bool
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return AssetId{}, AssetId{}, ErrMalformed
		}
		b = b[n:]
		switch {
		case num == fieldTradingPairAsset1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return AssetId{}, AssetId{}, ErrMalformed
			}
			asset1 = AssetId{Bytes: append([]byte(nil), v...)}
			seen1 = true
			b = b[n:]
		case num == fieldTradingPairAsset2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return AssetId{}, AssetId{}, ErrMalformed
			}
			asset2 = AssetId{Bytes: append([]byte(nil), v...)}
			seen2 = true
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return AssetId{}, AssetId{}, ErrMalformed
			}
			b = b[n:]
		}
	}
	if !seen1 || !seen2 {
		return AssetId{}, AssetId{}, ErrMissingField
	}
	return asset1, asset2, nil
}

// SwapPlaintext is the wire-level swap plaintext message.
type SwapPlaintext struct {
	TradingPair []byte // encoded TradingPair submessage
	T1          uint64
	T2          uint64
	Fee         []byte // encoded Fee submessage
	BD          []byte
	PKD         []byte
}

// MarshalSwapPlaintext encodes a SwapPlaintext message. A nil TradingPair or
// Fee submessage is left off the wire, so the decoder reports it missing.
func MarshalSwapPlaintext(m SwapPlaintext) []byte {
	var out []byte
	if m.TradingPair != nil {
		out = protowire.AppendTag(out, fieldSwapPlaintextTradingPair, protowire.BytesType)
		out = protowire.AppendBytes(out, m.TradingPair)
	}
	out = protowire.AppendTag(out, fieldSwapPlaintextT1, protowire.VarintType)
	out = protowire.AppendVarint(out, m.T1)
	out = protowire.AppendTag(out, fieldSwapPlaintextT2, protowire.VarintType)
	out = protowire.AppendVarint(out, m.T2)
	if m.Fee != nil {
		out = protowire.AppendTag(out, fieldSwapPlaintextFee, protowire.BytesType)
		out = protowire.AppendBytes(out, m.Fee)
	}
	out = protowire.AppendTag(out, fieldSwapPlaintextBD, protowire.BytesType)
	out = protowire.AppendBytes(out, m.BD)
	out = protowire.AppendTag(out, fieldSwapPlaintextPKD, protowire.BytesType)
	out = protowire.AppendBytes(out, m.PKD)
	return out
}

// UnmarshalSwapPlaintext decodes a SwapPlaintext message. trading_pair and
// fee are required submessages (§4.7); pk_d and b_d are required bytes
// fields since the payload cannot exist without them.
func UnmarshalSwapPlaintext(b []byte) (SwapPlaintext, error) {
	var m SwapPlaintext
	var seenPair, seenFee, seenBD, seenPKD bool

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return SwapPlaintext{}, ErrMalformed
		}
		b = b[n:]
		switch {
		case num == fieldSwapPlaintextTradingPair && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.TradingPair = append([]byte(nil), v...)
			seenPair = true
			b = b[n:]
		case num == fieldSwapPlaintextT1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.T1 = v
			b = b[n:]
		case num == fieldSwapPlaintextT2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.T2 = v
			b = b[n:]
		case num == fieldSwapPlaintextFee && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.Fee = append([]byte(nil), v...)
			seenFee = true
			b = b[n:]
		case num == fieldSwapPlaintextBD && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.BD = append([]byte(nil), v...)
			seenBD = true
			b = b[n:]
		case num == fieldSwapPlaintextPKD && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			m.PKD = append([]byte(nil), v...)
			seenPKD = true
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return SwapPlaintext{}, ErrMalformed
			}
			b = b[n:]
		}
	}

	if !seenPair || !seenFee || !seenBD || !seenPKD {
		return SwapPlaintext{}, ErrMissingField
	}
	return m, nil
}
