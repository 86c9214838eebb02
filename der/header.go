// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"math"

	"github.com/ajkhoury/asinine"
)

// Header is the decoded identifier and length of a data value encoding. It
// does not include the content octets themselves.
type Header struct {
	Tag         asinine.Tag
	Constructed bool
	Length      int // number of content octets; always >= 0
}

// maxLengthBytes bounds the number of long-form length octets this module
// supports: a length that does not fit in this many big-endian bytes is
// reported as Unsupported rather than Malformed (spec.md §4.1: "N greater
// than the machine word size... is unsupported").
const maxLengthBytes = 8

// decodeHeader reads the identifier and length octets of a data value
// encoding from data starting at offset. On success it returns the decoded
// Header and the offset of the first content octet. On failure it returns a
// non-nil *asinine.Error and an unspecified Header and offset.
//
// decodeHeader never reads past len(data).
func decodeHeader(data []byte, offset int) (Header, int, *asinine.Error) {
	start := offset
	if offset >= len(data) {
		return Header{}, offset, errorf(asinine.Malformed, start, "truncated identifier octet")
	}
	b := data[offset]
	offset++

	if b&0x1f == 0x1f {
		// High-tag-number (multi-byte tag) form. Out of scope (spec.md §4.1).
		return Header{}, offset, errorf(asinine.Unsupported, start, "high-tag-number form not supported")
	}

	h := Header{
		Tag:         asinine.Tag(b&0xc0)<<8 | asinine.Tag(b&0x1f),
		Constructed: b&0x20 != 0,
	}

	if offset >= len(data) {
		return Header{}, offset, errorf(asinine.Malformed, start, "truncated length octet")
	}
	lb := data[offset]
	offset++

	switch {
	case lb&0x80 == 0:
		// Short form: the remaining seven bits are the length.
		h.Length = int(lb & 0x7f)
	case lb == 0x80:
		// Indefinite length. Out of scope (spec.md §1 Non-goals).
		return Header{}, offset, errorf(asinine.Malformed, start, "indefinite length not supported")
	default:
		n := int(lb & 0x7f)
		if n > maxLengthBytes {
			return Header{}, offset, errorf(asinine.Unsupported, start, "length field too wide")
		}
		if offset+n > len(data) {
			return Header{}, offset, errorf(asinine.Malformed, start, "truncated length octets")
		}
		if data[offset] == 0 {
			return Header{}, offset, errorf(asinine.Malformed, start, "long-form length has leading zero octet")
		}
		length := 0
		for i := 0; i < n; i++ {
			if length > math.MaxInt>>8 {
				return Header{}, offset, errorf(asinine.Unsupported, start, "length does not fit in an int")
			}
			length = length<<8 | int(data[offset+i])
		}
		offset += n
		if length < 0x80 {
			// A value under 128 must use the short form (spec.md §4.1 minimality
			// rule).
			return Header{}, offset, errorf(asinine.Malformed, start, "non-minimal long-form length")
		}
		h.Length = length
	}

	if h.Length > len(data)-offset {
		return Header{}, offset, errorf(asinine.Malformed, start, "content length overruns input")
	}
	return h, offset, nil
}
