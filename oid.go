// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asinine

import (
	"math"
	"strconv"
)

// MaxArcValue is the largest value a single arc may hold.
const MaxArcValue = math.MaxUint32

// MaxArcs is the maximum number of arcs an [ObjectIdentifier] can hold. The
// source reference (asinine, in C) fixes this bound at compile time to avoid
// heap allocation; spec.md §9 leaves the exact value a tunable so long as it
// accommodates common X.509 OIDs (at least 16). 32 comfortably covers every
// OID arising in certificate practice while keeping ObjectIdentifier a small
// value type.
const MaxArcs = 32

// ObjectIdentifier is an ASN.1 OBJECT IDENTIFIER: an ordered sequence of
// unsigned arc values. Unlike a slice-backed representation, ObjectIdentifier
// has fixed capacity and owns its storage, so it can be constructed as a
// compile-time constant (see [OID]) and compared and copied without
// allocation.
//
// The zero ObjectIdentifier has n == 0 and is not a valid OID (spec.md §3
// requires at least two arcs); it only occurs as the zero value of the type.
type ObjectIdentifier struct {
	arcs [MaxArcs]uint32
	n    int
}

// OID constructs an ObjectIdentifier from a literal arc list. It is intended
// for use in package-level var declarations of well-known identifiers, e.g.
//
//	var oidRSAEncryption = asinine.OID(1, 2, 840, 113549, 1, 1, 1)
//
// OID panics if arcs does not fit within [MaxArcs]; this is a programmer error
// for a compile-time constant and is never reached for decoded input, which
// goes through [ObjectIdentifier.Append] instead.
func OID(arcs ...uint32) ObjectIdentifier {
	if len(arcs) > MaxArcs {
		panic("asinine: too many arcs for ObjectIdentifier")
	}
	var oid ObjectIdentifier
	oid.n = copy(oid.arcs[:], arcs)
	return oid
}

// Len returns the number of arcs in oid.
func (oid ObjectIdentifier) Len() int { return oid.n }

// Arc returns the i-th arc of oid. Arc panics if i is out of range.
func (oid ObjectIdentifier) Arc(i int) uint32 {
	if i < 0 || i >= oid.n {
		panic("asinine: arc index out of range")
	}
	return oid.arcs[i]
}

// Append adds an arc to oid, reporting whether there was room. It is used by
// the OID decoder in package der while building up an ObjectIdentifier from
// wire sub-identifiers; most callers construct an ObjectIdentifier via [OID]
// instead.
func (oid *ObjectIdentifier) Append(arc uint32) bool {
	if oid.n >= MaxArcs {
		return false
	}
	oid.arcs[oid.n] = arc
	oid.n++
	return true
}

// Equal reports whether oid and other have the same arc sequence.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return oid.Compare(other) == 0
}

// Compare returns a negative number if oid sorts before other, a positive
// number if it sorts after, and 0 if they are equal. Ordering is lexicographic
// arc by arc, with a shorter prefix ordering before a longer extension of it
// (spec.md §3).
func (oid ObjectIdentifier) Compare(other ObjectIdentifier) int {
	n := oid.n
	if other.n < n {
		n = other.n
	}
	for i := 0; i < n; i++ {
		if oid.arcs[i] < other.arcs[i] {
			return -1
		}
		if oid.arcs[i] > other.arcs[i] {
			return 1
		}
	}
	switch {
	case oid.n < other.n:
		return -1
	case oid.n > other.n:
		return 1
	default:
		return 0
	}
}

// String returns the dotted-decimal representation of oid, e.g. "1.2.840".
// A single-arc OID (which is never valid DER, but can occur transiently while
// decoding) formats as just the one arc, without a trailing dot.
func (oid ObjectIdentifier) String() string {
	var scratch [MaxArcs * 11]byte // worst case: 10 digits + '.' per arc
	n, _ := oid.Format(scratch[:])
	return string(scratch[:n])
}

// Format renders the dotted-decimal representation of oid into the
// caller-supplied buf, writing as many whole arcs as fit while keeping one byte
// free, and writes a NUL byte at buf[n] whenever buf is non-empty, so that
// buf[:n+1] is a C-style string. It returns the number of bytes written (not
// including the trailing NUL) and whether the output was truncated because buf
// was too small for the full representation plus its NUL.
//
// Format never grows buf; callers that need the full text regardless of
// buffer size should use [ObjectIdentifier.String].
func (oid ObjectIdentifier) Format(buf []byte) (n int, truncated bool) {
	var digits [11]byte // '.' plus up to 10 digits for a uint32 value
	for i := 0; i < oid.n; i++ {
		part := digits[:0]
		if i > 0 {
			part = append(part, '.')
		}
		part = strconv.AppendUint(part, uint64(oid.arcs[i]), 10)
		if n+len(part) >= len(buf) {
			truncated = true
			break
		}
		n += copy(buf[n:], part)
	}
	if n < len(buf) {
		buf[n] = 0
	} else if len(buf) > 0 {
		buf[len(buf)-1] = 0
		truncated = true
	}
	return n, truncated
}
