// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// Token is a parsed data value: its header, plus the content octets borrowed
// from the input slice that produced it (spec.md §3). A Token never owns its
// bytes and is only valid as long as the slice passed to the [Parser] that
// produced it is valid.
type Token struct {
	Header
	// Data is the content octets of the value, a sub-slice of the Parser's
	// input. It is empty (but never nil) for a zero-length value.
	Data []byte
}

// Is reports whether the token's tag equals want exactly (class and number).
func (t Token) Is(want asinine.Tag) bool { return t.Tag == want }

// IsSequence reports whether t is a constructed universal SEQUENCE.
func (t Token) IsSequence() bool { return t.Is(asinine.TagSequence) && t.Constructed }

// IsSet reports whether t is a constructed universal SET.
func (t Token) IsSet() bool { return t.Is(asinine.TagSet) && t.Constructed }

// IsInt reports whether t is a primitive universal INTEGER.
func (t Token) IsInt() bool { return t.Is(asinine.TagInteger) && !t.Constructed }

// IsNull reports whether t is a primitive universal NULL.
func (t Token) IsNull() bool { return t.Is(asinine.TagNull) && !t.Constructed }

// IsOID reports whether t is a primitive universal OBJECT IDENTIFIER.
func (t Token) IsOID() bool { return t.Is(asinine.TagOID) && !t.Constructed }

// IsBitString reports whether t is a primitive universal BIT STRING.
func (t Token) IsBitString() bool { return t.Is(asinine.TagBitString) && !t.Constructed }

// IsUTCTime reports whether t is a primitive universal UTCTime.
func (t Token) IsUTCTime() bool { return t.Is(asinine.TagUTCTime) && !t.Constructed }

// IsGeneralizedTime reports whether t is a primitive universal GeneralizedTime.
func (t Token) IsGeneralizedTime() bool {
	return t.Is(asinine.TagGeneralizedTime) && !t.Constructed
}
