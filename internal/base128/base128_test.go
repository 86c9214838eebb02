// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base128

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		offset  int
		want    uint32
		wantNxt int
		wantErr ErrKind
	}{
		{"single byte", []byte{0x29}, 0, 0x29, 1, OK},
		{"two bytes", []byte{0x88, 0x37}, 0, (0x08 << 7) | 0x37, 2, OK},
		{"three bytes", []byte{0x81, 0x80, 0x01}, 0, (1 << 14) | 1, 3, OK},
		{"with trailing data", []byte{0x29, 0x02, 0x04}, 0, 0x29, 1, OK},
		{"offset into slice", []byte{0xFF, 0x29, 0x02}, 1, 0x29, 2, OK},
		{"leading 0x80 not minimal", []byte{0x80, 0x01}, 0, 0, 0, NotMinimal},
		{"unterminated", []byte{0x81, 0x80, 0x80}, 0, 0, 0, Truncated},
		{"empty", []byte{}, 0, 0, 0, Truncated},
		{
			"overflow", []byte{0x8F, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, 0, 0, 0, Overflow,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, next, kind := Decode(tc.content, tc.offset)
			if kind != tc.wantErr {
				t.Fatalf("Decode(%#v, %d) kind = %v, want %v", tc.content, tc.offset, kind, tc.wantErr)
			}
			if kind != OK {
				return
			}
			if got != tc.want {
				t.Errorf("Decode(%#v, %d) value = %#x, want %#x", tc.content, tc.offset, got, tc.want)
			}
			if next != tc.wantNxt {
				t.Errorf("Decode(%#v, %d) next = %d, want %d", tc.content, tc.offset, next, tc.wantNxt)
			}
		})
	}
}

func TestDecode_MaxUint32(t *testing.T) {
	// 0xFFFFFFFF encoded as base-128: 5 groups of 7 bits (35 bits capacity, value
	// uses the low 32).
	content := []byte{0x8F, 0xFF, 0xFF, 0xFF, 0x7F}
	got, next, kind := Decode(content, 0)
	if kind != OK {
		t.Fatalf("Decode() kind = %v, want OK", kind)
	}
	if got != 0xFFFFFFFF {
		t.Errorf("Decode() = %#x, want 0xFFFFFFFF", got)
	}
	if next != len(content) {
		t.Errorf("Decode() next = %d, want %d", next, len(content))
	}
}
