// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/asset"
	"github.com/luxfi/swap/pkg/fee"
	"github.com/luxfi/swap/pkg/ka"
	"github.com/luxfi/swap/pkg/swap"
)

func samplePlaintext(t *testing.T) swap.Plaintext {
	require := require.New(t)

	var a1, a2 [asset.IDLen]byte
	a1[0] = 0x01
	a2[0] = 0x02
	id1, err := asset.IDFromBytes(a1[:])
	require.NoError(err)
	id2, err := asset.IDFromBytes(a2[:])
	require.NoError(err)
	pair := asset.NewPair(id1, id2)

	s, err := group.RandomScalar()
	require.NoError(err)
	bd, err := s.MultBase()
	require.NoError(err)

	recv, err := ka.NewSecret()
	require.NoError(err)
	pkd, err := recv.DiversifiedPublic(bd)
	require.NoError(err)

	return swap.FromParts(pair, 1000, 2000, fee.New(5), bd, pkd)
}

func TestProtoRoundTrip(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	wire := ToProto(p)

	decoded, err := FromProto(wire)
	require.NoError(err)
	require.True(p.Equal(decoded))
}

func TestProtoRejectsMissingTradingPair(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	feeBytes := MarshalFee(Fee{Amount: p.Fee().Amount})

	wire := MarshalSwapPlaintext(SwapPlaintext{
		T1:  p.T1(),
		T2:  p.T2(),
		Fee: feeBytes,
		BD:  p.DiversifiedGenerator().Compress(),
		PKD: p.TransmissionKey().Bytes(),
	})

	_, err := FromProto(wire)
	require.ErrorIs(err, ErrMissingField)
}

func TestProtoRejectsMissingFee(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	pair := p.TradingPair()
	pairBytes := MarshalTradingPair(
		AssetId{Bytes: pair.Asset1.Bytes()},
		AssetId{Bytes: pair.Asset2.Bytes()},
	)

	wire := MarshalSwapPlaintext(SwapPlaintext{
		TradingPair: pairBytes,
		T1:          p.T1(),
		T2:          p.T2(),
		BD:          p.DiversifiedGenerator().Compress(),
		PKD:         p.TransmissionKey().Bytes(),
	})

	_, err := FromProto(wire)
	require.ErrorIs(err, ErrMissingField)
}

func TestProtoRejectsMissingAsset2(t *testing.T) {
	require := require.New(t)

	var partial []byte
	partial = protowire.AppendTag(partial, fieldTradingPairAsset1, protowire.BytesType)
	partial = protowire.AppendBytes(partial, make([]byte, asset.IDLen))
	// asset_2 is deliberately omitted.

	_, _, err := UnmarshalTradingPair(partial)
	require.ErrorIs(err, ErrMissingField)
}

func TestProtoRejectsWrongLengthAssetID(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	feeBytes := MarshalFee(Fee{Amount: p.Fee().Amount})
	pairBytes := MarshalTradingPair(AssetId{Bytes: []byte{0x01, 0x02}}, AssetId{Bytes: make([]byte, asset.IDLen)})

	wire := MarshalSwapPlaintext(SwapPlaintext{
		TradingPair: pairBytes,
		T1:          p.T1(),
		T2:          p.T2(),
		Fee:         feeBytes,
		BD:          p.DiversifiedGenerator().Compress(),
		PKD:         p.TransmissionKey().Bytes(),
	})

	_, err := FromProto(wire)
	require.ErrorIs(err, ErrInvalidAssetID)
}

func TestProtoRejectsWrongLengthDiversifiedBasepoint(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	pair := p.TradingPair()
	pairBytes := MarshalTradingPair(
		AssetId{Bytes: pair.Asset1.Bytes()},
		AssetId{Bytes: pair.Asset2.Bytes()},
	)
	feeBytes := MarshalFee(Fee{Amount: p.Fee().Amount})

	wire := MarshalSwapPlaintext(SwapPlaintext{
		TradingPair: pairBytes,
		T1:          p.T1(),
		T2:          p.T2(),
		Fee:         feeBytes,
		BD:          []byte{0x01, 0x02, 0x03},
		PKD:         p.TransmissionKey().Bytes(),
	})

	_, err := FromProto(wire)
	require.ErrorIs(err, ErrWrongLength)
}

func TestProtoRejectsInvalidDiversifiedBasepoint(t *testing.T) {
	require := require.New(t)

	p := samplePlaintext(t)
	pair := p.TradingPair()
	pairBytes := MarshalTradingPair(
		AssetId{Bytes: pair.Asset1.Bytes()},
		AssetId{Bytes: pair.Asset2.Bytes()},
	)
	feeBytes := MarshalFee(Fee{Amount: p.Fee().Amount})

	wire := MarshalSwapPlaintext(SwapPlaintext{
		TradingPair: pairBytes,
		T1:          p.T1(),
		T2:          p.T2(),
		Fee:         feeBytes,
		BD:          make([]byte, group.ElementLen), // u = 0, a low-order point
		PKD:         p.TransmissionKey().Bytes(),
	})

	_, err := FromProto(wire)
	require.ErrorIs(err, group.ErrInvalidElement)
}

func TestFeeRoundTrip(t *testing.T) {
	require := require.New(t)

	wire := MarshalFee(Fee{Amount: 424242})
	decoded, err := UnmarshalFee(wire)
	require.NoError(err)
	require.Equal(uint64(424242), decoded.Amount)
}
