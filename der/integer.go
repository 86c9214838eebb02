// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// DecodeInteger decodes t as an ASN.1 INTEGER (tag 02) into an int64. The
// content must be non-empty and minimally encoded: a leading 0x00 whose
// following byte's top bit is clear, or a leading 0xFF whose following byte's
// top bit is set, is rejected as non-minimal (spec.md §4.3). Content wider
// than 8 octets, or whose value does not fit in an int64, is [asinine.Malformed].
func DecodeInteger(t Token) (int64, *asinine.Error) {
	data := t.Data
	if len(data) == 0 {
		return 0, errorf(asinine.Malformed, 0, "empty INTEGER content")
	}
	if len(data) >= 2 {
		if data[0] == 0x00 && data[1]&0x80 == 0 {
			return 0, errorf(asinine.Malformed, 0, "non-minimal INTEGER encoding (leading 0x00)")
		}
		if data[0] == 0xff && data[1]&0x80 != 0 {
			return 0, errorf(asinine.Malformed, 0, "non-minimal INTEGER encoding (leading 0xff)")
		}
	}
	if len(data) > 8 {
		return 0, errorf(asinine.Malformed, 0, "INTEGER overflows 64 bits")
	}

	var v int64
	if data[0]&0x80 != 0 {
		v = -1 // sign-extend
	}
	for _, b := range data {
		v = v<<8 | int64(b)
	}
	return v, nil
}
