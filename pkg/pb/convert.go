// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pb

import (
	"errors"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/asset"
	"github.com/luxfi/swap/pkg/fee"
	"github.com/luxfi/swap/pkg/ka"
	"github.com/luxfi/swap/pkg/metric"
	"github.com/luxfi/swap/pkg/swap"
)

// ErrInvalidAssetID is returned when an asset_1/asset_2 field is present
// but not a well-formed 32-octet asset identifier.
var ErrInvalidAssetID = errors.New("pb: invalid asset id")

// ToProto encodes a swap.Plaintext as wire bytes for the SwapPlaintext
// message of §A.6/§4.7.
func ToProto(p swap.Plaintext) []byte {
	pair := p.TradingPair()
	tradingPairBytes := MarshalTradingPair(
		AssetId{Bytes: pair.Asset1.Bytes()},
		AssetId{Bytes: pair.Asset2.Bytes()},
	)
	feeBytes := MarshalFee(Fee{Amount: p.Fee().Amount})

	return MarshalSwapPlaintext(SwapPlaintext{
		TradingPair: tradingPairBytes,
		T1:          p.T1(),
		T2:          p.T2(),
		Fee:         feeBytes,
		BD:          p.DiversifiedGenerator().Compress(),
		PKD:         p.TransmissionKey().Bytes(),
	})
}

// FromProto decodes wire bytes into a swap.Plaintext, enforcing the
// required-field and fixed-width checks of §4.7: a missing trading_pair,
// fee, asset_1, or asset_2 is reported distinctly from a wrong-length
// fixed-width field, and an invalid b_d is reported distinctly from both
// via group decompression failing.
func FromProto(b []byte) (swap.Plaintext, error) {
	m, err := UnmarshalSwapPlaintext(b)
	if err != nil {
		return swap.Plaintext{}, err
	}

	asset1, asset2, err := UnmarshalTradingPair(m.TradingPair)
	if err != nil {
		return swap.Plaintext{}, err
	}
	a1, err := asset.IDFromBytes(asset1.Bytes)
	if err != nil {
		return swap.Plaintext{}, ErrInvalidAssetID
	}
	a2, err := asset.IDFromBytes(asset2.Bytes)
	if err != nil {
		return swap.Plaintext{}, ErrInvalidAssetID
	}
	pair := asset.NewPair(a1, a2)

	f, err := UnmarshalFee(m.Fee)
	if err != nil {
		return swap.Plaintext{}, err
	}

	if len(m.BD) != group.ElementLen {
		return swap.Plaintext{}, ErrWrongLength
	}
	bd, err := group.Decompress(m.BD)
	if err != nil {
		return swap.Plaintext{}, err
	}
	if len(m.PKD) != group.ElementLen {
		return swap.Plaintext{}, ErrWrongLength
	}
	pkd, err := ka.DecodePublic(m.PKD)
	if err != nil {
		return swap.Plaintext{}, err
	}

	return swap.FromParts(pair, m.T1, m.T2, fee.New(f.Amount), bd, pkd), nil
}

// ToProtoWithMetrics behaves exactly like ToProto, additionally recording
// the encode on m. m may be nil.
func ToProtoWithMetrics(p swap.Plaintext, m *metric.Metrics) []byte {
	out := ToProto(p)
	if m != nil {
		m.RecordProtoEncode()
	}
	return out
}

// FromProtoWithMetrics behaves exactly like FromProto, additionally
// recording the decode's success/failure by error kind on m. m may be nil.
func FromProtoWithMetrics(b []byte, m *metric.Metrics) (swap.Plaintext, error) {
	p, err := FromProto(b)
	if m != nil {
		m.RecordProtoDecode(err)
	}
	return p, err
}
