// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package group provides the prime-order-group primitive the swap core's
// key agreement is built on: scalar multiplication at an arbitrary input
// point (not just the fixed basepoint), with canonical 32-octet encoding
// for both scalars and elements.
//
// The distilled specification this package serves names its group
// abstractly; decaf377, the group the originating system actually uses,
// has no Go binding anywhere in the examined corpus. This package
// substitutes Curve25519/X25519, which already appears in this codebase's
// lineage (the HPKE implementation of the codebase it derives from) performing exactly the
// same arbitrary-basepoint multiplication this package needs.
package group

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/curve25519"
)

// ElementLen is the canonical encoded width of a group element, in octets.
const ElementLen = 32

// ScalarLen is the canonical encoded width of a scalar, in octets.
const ScalarLen = 32

// ErrInvalidElement indicates a 32-octet string does not decompress to a
// usable element (wrong length, or a known low-order point that would make
// the resulting shared secret predictable regardless of the peer's scalar).
var ErrInvalidElement = errors.New("group: invalid element encoding")

// ErrInvalidScalar indicates a 32-octet string is not an admissible scalar
// encoding.
var ErrInvalidScalar = errors.New("group: invalid scalar encoding")

// Basepoint is the group's conventional generator.
var Basepoint = mustDecompress(curve25519.Basepoint)

// lowOrderPoints lists the small-order Curve25519 u-coordinates that must
// never be accepted as a peer's public input: multiplying by them collapses
// the Diffie-Hellman output to one of a handful of values independent of
// the caller's own scalar.
var lowOrderPoints = [][ElementLen]byte{
	{0x00}, // 0
	{0x01}, // 1
	{0xe0, 0xeb, 0x7a, 0x7c, 0x3b, 0x41, 0xb8, 0xae, 0x16, 0x56, 0xe3, 0xfa, 0xf1, 0x9f, 0xc4, 0x6a,
		0xda, 0x09, 0x8d, 0xeb, 0x9c, 0x32, 0xb1, 0xfd, 0x86, 0x62, 0x05, 0x16, 0x5f, 0x49, 0xb8, 0x00},
	{0x5f, 0x9c, 0x95, 0xbc, 0xa3, 0x50, 0x8c, 0x24, 0xb1, 0xd0, 0xb1, 0x55, 0x9c, 0x83, 0xef, 0x5b,
		0x04, 0x44, 0x5c, 0xc4, 0x58, 0x1c, 0x8e, 0x86, 0xd8, 0x22, 0x4e, 0xdd, 0xd0, 0x9f, 0x11, 0x57},
	{0xec, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, // p - 1
	{0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, // p
	{0xee, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, // p + 1
}

// Element is a point on the curve, held in its canonical compressed
// (u-coordinate) encoding.
type Element struct {
	b [ElementLen]byte
}

// Decompress validates and wraps a 32-octet element encoding.
func Decompress(b []byte) (Element, error) {
	if len(b) != ElementLen {
		return Element{}, ErrInvalidElement
	}
	var e Element
	copy(e.b[:], b)
	for _, lo := range lowOrderPoints {
		if e.b == lo {
			return Element{}, ErrInvalidElement
		}
	}
	return e, nil
}

func mustDecompress(b []byte) Element {
	var e Element
	copy(e.b[:], b)
	return e
}

// Compress returns the canonical 32-octet encoding of the element.
func (e Element) Compress() []byte {
	out := make([]byte, ElementLen)
	copy(out, e.b[:])
	return out
}

// Bytes is an alias of Compress kept for call sites that read more
// naturally without the group-theoretic name.
func (e Element) Bytes() []byte {
	return e.Compress()
}

// Scalar is a Curve25519 scalar in its canonical 32-octet encoding. The
// bytes are held unclamped; Mult/MultBase clamp them per RFC 7748.
type Scalar struct {
	b [ScalarLen]byte
}

// DecodeScalar validates and wraps a 32-octet scalar encoding. The bytes are
// clamped per RFC 7748 on first use by Mult/MultBase, not here, so that
// DecodeScalar followed by Bytes is an exact round trip.
func DecodeScalar(b []byte) (Scalar, error) {
	if len(b) != ScalarLen {
		return Scalar{}, ErrInvalidScalar
	}
	var s Scalar
	copy(s.b[:], b)
	return s, nil
}

// RandomScalar draws a fresh scalar from a CSPRNG.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := rand.Read(s.b[:]); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// Bytes returns the canonical 32-octet encoding of the scalar.
func (s Scalar) Bytes() []byte {
	out := make([]byte, ScalarLen)
	copy(out, s.b[:])
	return out
}

// Mult multiplies the given element by this scalar: s*p.
func (s Scalar) Mult(p Element) (Element, error) {
	out, err := curve25519.X25519(s.b[:], p.b[:])
	if err != nil {
		return Element{}, err
	}
	var e Element
	copy(e.b[:], out)
	return e, nil
}

// MultBase multiplies the conventional basepoint by this scalar: s*G.
func (s Scalar) MultBase() (Element, error) {
	return s.Mult(Basepoint)
}
