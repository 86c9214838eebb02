// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/ajkhoury/asinine"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantTag     asinine.Tag
		wantConstr  bool
		wantLength  int
		wantNext    int
		wantKind    asinine.Kind
	}{
		{
			name:       "short form sequence",
			data:       []byte{0x30, 0x03, 0x01, 0x02, 0x03},
			wantTag:    asinine.TagSequence,
			wantConstr: true,
			wantLength: 3,
			wantNext:   2,
		},
		{
			name:       "primitive integer",
			data:       []byte{0x02, 0x01, 0x05},
			wantTag:    asinine.TagInteger,
			wantConstr: false,
			wantLength: 1,
			wantNext:   2,
		},
		{
			name:       "long form length two bytes",
			data:       append([]byte{0x04, 0x82, 0x01, 0x00}, make([]byte, 256)...),
			wantTag:    asinine.TagOctetString,
			wantConstr: false,
			wantLength: 256,
			wantNext:   4,
		},
		{
			name:     "truncated identifier",
			data:     []byte{},
			wantKind: asinine.Malformed,
		},
		{
			name:     "truncated length",
			data:     []byte{0x30},
			wantKind: asinine.Malformed,
		},
		{
			name:     "high tag number unsupported",
			data:     []byte{0x1f, 0x00},
			wantKind: asinine.Unsupported,
		},
		{
			name:     "indefinite length",
			data:     []byte{0x30, 0x80},
			wantKind: asinine.Malformed,
		},
		{
			name:     "length field too wide",
			data:     []byte{0x30, 0x89, 0, 0, 0, 0, 0, 0, 0, 0},
			wantKind: asinine.Unsupported,
		},
		{
			name:     "non-minimal long form length",
			data:     []byte{0x30, 0x81, 0x02, 0x00, 0x00},
			wantKind: asinine.Malformed,
		},
		{
			name:     "long form leading zero",
			data:     append([]byte{0x30, 0x82, 0x00, 0x80}, make([]byte, 128)...),
			wantKind: asinine.Malformed,
		},
		{
			name:     "content overruns input",
			data:     []byte{0x30, 0x05, 0x01},
			wantKind: asinine.Malformed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, next, err := decodeHeader(tc.data, 0)
			if tc.wantKind != asinine.OK {
				if err == nil || err.Kind != tc.wantKind {
					t.Fatalf("decodeHeader() err = %v, want kind %v", err, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHeader() err = %v, want nil", err)
			}
			if h.Tag != tc.wantTag {
				t.Errorf("decodeHeader() tag = %v, want %v", h.Tag, tc.wantTag)
			}
			if h.Constructed != tc.wantConstr {
				t.Errorf("decodeHeader() constructed = %v, want %v", h.Constructed, tc.wantConstr)
			}
			if h.Length != tc.wantLength {
				t.Errorf("decodeHeader() length = %d, want %d", h.Length, tc.wantLength)
			}
			if next != tc.wantNext {
				t.Errorf("decodeHeader() next = %d, want %d", next, tc.wantNext)
			}
		})
	}
}
