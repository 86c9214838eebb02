// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// reverseBitsTable maps a byte to its bit-reversed form. Bit-reversal is a
// deliberate presentation choice carried over from the original reference
// (spec.md §9): wire order is most-significant-bit-first within each octet;
// the decoded form presents bit 0 of each output byte as the first bit of
// that octet's group.
var reverseBitsTable = func() (t [256]byte) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		var r byte
		for bit := 0; bit < 8; bit++ {
			r <<= 1
			r |= b & 1
			b >>= 1
		}
		t[i] = r
	}
	return t
}()

// DecodeBitString decodes t as an ASN.1 BIT STRING (tag 03) into buf. t must
// be primitive; a constructed encoding is [asinine.Unsupported] (spec.md
// §4.3). Content must be at least one octet, the first of which gives the
// number of unused bits (0..7) in the last content octet; any unused-bit
// positions must be zero on the wire. The remaining octets are copied into
// buf with each byte bit-reversed. DecodeBitString returns the number of
// bytes written to buf (the number of data octets, i.e. len(t.Data)-1) and
// the number of unused bits.
//
// If buf is smaller than the number of data octets, DecodeBitString fails
// with [asinine.Memory] and writes nothing.
func DecodeBitString(t Token, buf []byte) (n int, unusedBits int, err *asinine.Error) {
	if t.Constructed {
		return 0, 0, errorf(asinine.Unsupported, 0, "constructed BIT STRING not supported")
	}
	if len(t.Data) == 0 {
		return 0, 0, errorf(asinine.Malformed, 0, "empty BIT STRING content")
	}

	unused := int(t.Data[0])
	if unused > 7 {
		return 0, 0, errorf(asinine.Malformed, 0, "unused-bit count out of range")
	}
	data := t.Data[1:]
	if unused > 0 && len(data) == 0 {
		return 0, 0, errorf(asinine.Malformed, 0, "unused bits with no data octets")
	}
	if len(data) > len(buf) {
		return 0, 0, errorf(asinine.Memory, 0, "output buffer too small")
	}

	if len(data) > 0 {
		last := data[len(data)-1]
		mask := byte(1<<uint(unused)) - 1
		if last&mask != 0 {
			return 0, 0, errorf(asinine.Malformed, 0, "non-zero padding bits")
		}
	}

	for i, b := range data {
		buf[i] = reverseBitsTable[b]
	}
	return len(data), unused, nil
}
