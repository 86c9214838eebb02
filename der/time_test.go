// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"testing"

	"github.com/ajkhoury/asinine"
)

func TestDecodeUTCTime(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     asinine.Time
		wantKind asinine.Kind
	}{
		{"epoch", "700101000000Z", asinine.Time{Year: 1970, Month: 1, Day: 1}, asinine.OK},
		{"y2k leap day", "000229000000Z", asinine.Time{Year: 2000, Month: 2, Day: 29}, asinine.OK},
		{"non-leap day rejected", "010229000000Z", asinine.Time{}, asinine.Malformed},
		{"hour 24 rejected", "100101240000Z", asinine.Time{}, asinine.Malformed},
		{"april 31 rejected", "010431000000Z", asinine.Time{}, asinine.Malformed},
		{"wrong length", "70010100000Z", asinine.Time{}, asinine.Malformed},
		{"missing Z", "700101000000A", asinine.Time{}, asinine.Malformed},
		{"non-digit", "7A0101000000Z", asinine.Time{}, asinine.Malformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := Token{Header: Header{Tag: asinine.TagUTCTime}, Data: []byte(tc.content)}
			got, err := DecodeUTCTime(tok)
			if tc.wantKind != asinine.OK {
				if err == nil || err.Kind != tc.wantKind {
					t.Fatalf("DecodeUTCTime(%q) err = %v, want kind %v", tc.content, err, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeUTCTime(%q) err = %v, want nil", tc.content, err)
			}
			if got.Compare(tc.want) != 0 {
				t.Errorf("DecodeUTCTime(%q) = %+v, want %+v", tc.content, got, tc.want)
			}
		})
	}
}

func TestDecodeGeneralizedTime(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     asinine.Time
		wantKind asinine.Kind
	}{
		{"y2k38 rollover", "20380119031408Z", asinine.Time{Year: 2038, Month: 1, Day: 19, Hour: 3, Minute: 14, Second: 8}, asinine.OK},
		{"century leap year", "24000229000000Z", asinine.Time{Year: 2400, Month: 2, Day: 29}, asinine.OK},
		{"century non-leap year", "19000229000000Z", asinine.Time{}, asinine.Malformed},
		{"wrong length", "2038011903148Z", asinine.Time{}, asinine.Malformed},
		{"missing Z", "20380119031408A", asinine.Time{}, asinine.Malformed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tok := Token{Header: Header{Tag: asinine.TagGeneralizedTime}, Data: []byte(tc.content)}
			got, err := DecodeGeneralizedTime(tok)
			if tc.wantKind != asinine.OK {
				if err == nil || err.Kind != tc.wantKind {
					t.Fatalf("DecodeGeneralizedTime(%q) err = %v, want kind %v", tc.content, err, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeGeneralizedTime(%q) err = %v, want nil", tc.content, err)
			}
			if got.Compare(tc.want) != 0 {
				t.Errorf("DecodeGeneralizedTime(%q) = %+v, want %+v", tc.content, got, tc.want)
			}
		})
	}
}
