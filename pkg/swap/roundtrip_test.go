// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/asset"
	"github.com/luxfi/swap/pkg/fee"
	"github.com/luxfi/swap/pkg/ka"
)

type fixture struct {
	plaintext Plaintext
	esk       ka.Secret
	bd        group.Element
	pkd       ka.Public
}

func newFixture(t *testing.T, t1, t2, feeAmount uint64) fixture {
	require := require.New(t)

	var a1, a2 [asset.IDLen]byte
	a1[0], a2[0] = 0x01, 0x02
	id1, err := asset.IDFromBytes(a1[:])
	require.NoError(err)
	id2, err := asset.IDFromBytes(a2[:])
	require.NoError(err)
	pair := asset.NewPair(id1, id2)

	s, err := group.RandomScalar()
	require.NoError(err)
	bd, err := s.MultBase()
	require.NoError(err)

	ivk, err := ka.NewSecret()
	require.NoError(err)
	pkd, err := ivk.DiversifiedPublic(bd)
	require.NoError(err)

	esk, err := ka.NewSecret()
	require.NoError(err)

	plaintext := FromParts(pair, t1, t2, fee.New(feeAmount), bd, pkd)
	return fixture{plaintext: plaintext, esk: esk, bd: bd, pkd: pkd}
}

// S1 / invariant 1: receiver round-trip.
func TestReceiverRoundTrip(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 100, 0, 3)

	ct, _, err := f.plaintext.Encrypt(f.esk)
	require.NoError(err)
	require.Len(ct.Bytes(), CiphertextLen)
	require.Equal(169, CiphertextLen)

	recovered, err := ct.Decrypt(f.esk, f.pkd, f.bd)
	require.NoError(err)
	require.True(recovered.Equal(f.plaintext))
}

// S2 / invariant 2: sender recovery via the wrapped OVK.
func TestSenderRecovery(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 100, 0, 3)
	ovk := make([]byte, 32)
	for i := range ovk {
		ovk[i] = byte(i)
	}

	ct, epk, err := f.plaintext.Encrypt(f.esk)
	require.NoError(err)

	wrapped, err := f.plaintext.EncryptKey(f.esk, ovk)
	require.NoError(err)
	require.Len(wrapped.Bytes(), WrappedOVKLen)
	require.Equal(80, WrappedOVKLen)

	pkd, esk, err := Recover(wrapped, ovk, epk)
	require.NoError(err)
	require.Equal(f.pkd.Bytes(), pkd.Bytes())
	require.Equal(f.esk.Bytes(), esk.Bytes())

	recovered, err := ct.Decrypt(esk, pkd, f.bd)
	require.NoError(err)
	require.True(recovered.Equal(f.plaintext))
}

// Invariant 3: canonical encoding is always exactly 153 octets and parses
// back to the same plaintext.
func TestCanonicalEncodingLengthAndRoundTrip(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 12345, 67890, 42)
	encoded := f.plaintext.Bytes()
	require.Len(encoded, PlaintextLen)
	require.Equal(153, PlaintextLen)

	parsed, err := PlaintextFromBytes(encoded)
	require.NoError(err)
	require.True(parsed.Equal(f.plaintext))
}

// Invariant 4: ciphertext and wrapped-key size invariants, independent of
// the particular amounts carried.
func TestSizeInvariants(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 1, 2, 3)
	ct, _, err := f.plaintext.Encrypt(f.esk)
	require.NoError(err)
	require.Len(ct.Bytes(), 169)

	wrapped, err := f.plaintext.EncryptKey(f.esk, make([]byte, 32))
	require.NoError(err)
	require.Len(wrapped.Bytes(), 80)
}

// S3 / invariant 6: flipping any octet of the ciphertext causes
// decryption to fail, never silently succeed with altered content.
func TestBitFlipCausesDecryptionError(t *testing.T) {
	f := newFixture(t, 100, 0, 3)

	ct, _, err := f.plaintext.Encrypt(f.esk)
	require.NoError(t, err)

	for i := 0; i < CiphertextLen; i++ {
		flipped := ct.Bytes()
		flipped[i] ^= 0x01

		tampered, err := CiphertextFromBytes(flipped)
		require.NoError(t, err)

		_, err = tampered.Decrypt(f.esk, f.pkd, f.bd)
		require.ErrorIs(t, err, ErrDecryption, "byte %d", i)
	}
}

// S4 / invariant 7: two independent swaps derive distinct keys; a
// ciphertext from one never decrypts under the other's esk.
func TestCrossSwapKeyIsolation(t *testing.T) {
	require := require.New(t)

	a := newFixture(t, 10, 20, 1)
	b := newFixture(t, 30, 40, 2)

	ctA, _, err := a.plaintext.Encrypt(a.esk)
	require.NoError(err)

	_, err = ctA.Decrypt(b.esk, a.pkd, a.bd)
	require.ErrorIs(err, ErrDecryption)
}

// Invariant 7: decrypting with a wrong pk_d or wrong b_d also fails.
func TestWrongTransmissionKeyOrBasepointFails(t *testing.T) {
	require := require.New(t)

	a := newFixture(t, 10, 20, 1)
	b := newFixture(t, 30, 40, 2)

	ct, _, err := a.plaintext.Encrypt(a.esk)
	require.NoError(err)

	_, err = ct.Decrypt(a.esk, b.pkd, a.bd)
	require.ErrorIs(err, ErrDecryption)

	_, err = ct.Decrypt(a.esk, a.pkd, b.bd)
	require.ErrorIs(err, ErrDecryption)
}

// S5 / invariant 8: an unrecognized leading type octet is rejected
// distinctly from a length failure.
func TestBadTypeTagRejected(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 1, 2, 3)
	buf := f.plaintext.Bytes()
	buf[0] = 0x42

	_, err := PlaintextFromBytes(buf)
	require.ErrorIs(err, ErrSwapTypeUnsupported)
}

func TestBadTypeTagRejectedAtOne(t *testing.T) {
	require := require.New(t)

	f := newFixture(t, 1, 2, 3)
	buf := f.plaintext.Bytes()
	buf[0] = 0x01

	_, err := PlaintextFromBytes(buf)
	require.ErrorIs(err, ErrSwapTypeUnsupported)
}

// Invariant 9: any buffer whose length isn't exactly 153 is a
// deserialization error, never a type-tag error.
func TestWrongLengthAlwaysDeserializationError(t *testing.T) {
	require := require.New(t)

	for _, n := range []int{0, 1, 152, 154, 300} {
		_, err := PlaintextFromBytes(make([]byte, n))
		require.ErrorIs(err, ErrSwapDeserialization, "length %d", n)
	}
}

func TestCiphertextFromBytesRejectsWrongLength(t *testing.T) {
	require := require.New(t)

	_, err := CiphertextFromBytes(make([]byte, CiphertextLen-1))
	require.ErrorIs(err, ErrSwapDeserialization)
}

func TestWrappedOVKFromBytesRejectsWrongLength(t *testing.T) {
	require := require.New(t)

	_, err := WrappedOVKFromBytes(make([]byte, WrappedOVKLen+1))
	require.ErrorIs(err, ErrSwapDeserialization)
}

func TestCommitmentIsDeterministicAndBindsBothInputs(t *testing.T) {
	require := require.New(t)

	a := newFixture(t, 1, 2, 3)
	ct, _, err := a.plaintext.Encrypt(a.esk)
	require.NoError(err)
	wrapped, err := a.plaintext.EncryptKey(a.esk, make([]byte, 32))
	require.NoError(err)

	c1 := Commitment(ct, wrapped)
	c2 := Commitment(ct, wrapped)
	require.Equal(c1, c2)

	b := newFixture(t, 4, 5, 6)
	ctB, _, err := b.plaintext.Encrypt(b.esk)
	require.NoError(err)
	require.NotEqual(c1, Commitment(ctB, wrapped))

	wrappedB, err := b.plaintext.EncryptKey(b.esk, make([]byte, 32))
	require.NoError(err)
	require.NotEqual(c1, Commitment(ct, wrappedB))
}
