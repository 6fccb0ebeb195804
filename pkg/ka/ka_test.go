// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ka

import (
	"testing"

	"github.com/luxfi/swap/internal/group"
	"github.com/stretchr/testify/require"
)

func TestAgreementMatchesBothSides(t *testing.T) {
	require := require.New(t)

	alice, err := NewSecret()
	require.NoError(err)
	bob, err := NewSecret()
	require.NoError(err)

	bd, err := group.RandomScalar()
	require.NoError(err)
	basepoint, err := bd.MultBase()
	require.NoError(err)

	alicePub, err := alice.DiversifiedPublic(basepoint)
	require.NoError(err)
	bobPub, err := bob.DiversifiedPublic(basepoint)
	require.NoError(err)

	sharedAlice, err := alice.Agree(bobPub)
	require.NoError(err)
	sharedBob, err := bob.Agree(alicePub)
	require.NoError(err)

	require.Equal(sharedAlice.Bytes(), sharedBob.Bytes())
}

func TestSecretBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	s, err := NewSecret()
	require.NoError(err)

	decoded, err := SecretFromBytes(s.Bytes())
	require.NoError(err)
	require.Equal(s.Bytes(), decoded.Bytes())
}

func TestDecodePublicRejectsLowOrderPoint(t *testing.T) {
	require := require.New(t)

	zero := make([]byte, group.ElementLen)
	_, err := DecodePublic(zero)
	require.ErrorIs(err, group.ErrInvalidElement)
}

func TestSecretFromSeedIsDeterministic(t *testing.T) {
	require := require.New(t)

	seed := []byte("test vector seed")
	a, err := SecretFromSeed(seed)
	require.NoError(err)
	b, err := SecretFromSeed(seed)
	require.NoError(err)
	require.Equal(a.Bytes(), b.Bytes())

	other, err := SecretFromSeed([]byte("a different seed"))
	require.NoError(err)
	require.NotEqual(a.Bytes(), other.Bytes())
}

func TestDifferentBasepointsYieldDifferentEphemeralKeys(t *testing.T) {
	require := require.New(t)

	esk, err := NewSecret()
	require.NoError(err)

	s1, err := group.RandomScalar()
	require.NoError(err)
	bd1, err := s1.MultBase()
	require.NoError(err)

	s2, err := group.RandomScalar()
	require.NoError(err)
	bd2, err := s2.MultBase()
	require.NoError(err)

	epk1, err := esk.DiversifiedPublic(bd1)
	require.NoError(err)
	epk2, err := esk.DiversifiedPublic(bd2)
	require.NoError(err)

	require.NotEqual(epk1.Bytes(), epk2.Bytes())
}
