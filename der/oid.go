// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"github.com/ajkhoury/asinine"
	"github.com/ajkhoury/asinine/internal/base128"
)

// DecodeOID decodes t as an ASN.1 OBJECT IDENTIFIER (tag 06). Content is a
// sequence of base-128 sub-identifiers (spec.md §4.3); the first decoded
// sub-identifier is split into the first two arcs per the 40*arc1+arc2 rule
// (spec.md §3). Non-minimal sub-identifiers, an unterminated trailing
// sub-identifier, empty content, and more arcs than [asinine.MaxArcs] are all
// [asinine.Malformed].
func DecodeOID(t Token) (asinine.ObjectIdentifier, *asinine.Error) {
	data := t.Data
	if len(data) == 0 {
		return asinine.ObjectIdentifier{}, errorf(asinine.Malformed, 0, "empty OBJECT IDENTIFIER content")
	}

	first, pos, kind := base128.Decode(data, 0)
	if kind != base128.OK {
		return asinine.ObjectIdentifier{}, base128Error(kind, 0)
	}

	var oid asinine.ObjectIdentifier
	var arc1, arc2 uint32
	switch {
	case first < 40:
		arc1, arc2 = 0, first
	case first < 80:
		arc1, arc2 = 1, first-40
	default:
		arc1, arc2 = 2, first-80
	}
	if !oid.Append(arc1) || !oid.Append(arc2) {
		return asinine.ObjectIdentifier{}, errorf(asinine.Malformed, 0, "too many arcs")
	}

	for pos < len(data) {
		arc, next, kind := base128.Decode(data, pos)
		if kind != base128.OK {
			return asinine.ObjectIdentifier{}, base128Error(kind, pos)
		}
		if !oid.Append(arc) {
			return asinine.ObjectIdentifier{}, errorf(asinine.Malformed, pos, "too many arcs")
		}
		pos = next
	}
	return oid, nil
}

// base128Error translates a base128.ErrKind (package base128 defines its own
// error kinds rather than importing package asinine) into an *asinine.Error at
// the given content offset.
func base128Error(kind base128.ErrKind, offset int) *asinine.Error {
	switch kind {
	case base128.NotMinimal:
		return errorf(asinine.Malformed, offset, "sub-identifier is not minimally encoded")
	case base128.Overflow:
		return errorf(asinine.Malformed, offset, "sub-identifier exceeds 32 bits")
	default: // base128.Truncated
		return errorf(asinine.Malformed, offset, "unterminated sub-identifier")
	}
}
