// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package der implements a streaming, zero-copy parser for the Distinguished
// Encoding Rules (DER) subset of ASN.1/X.690, together with decoders for the
// primitive types it carries: OBJECT IDENTIFIER, INTEGER, BIT STRING, NULL,
// UTCTime, and GeneralizedTime.
//
// [Parser] walks a borrowed byte slice and exposes each data value as a
// [Token] — a header plus a content sub-slice of the input, never copied.
// The decode functions in this package (DecodeInteger, DecodeOID, and so on)
// turn a Token's content into a value from package asinine.
//
// The parser never allocates, never blocks, and never reads past the slice it
// was given. A [Parser] value and any [Token] it produces are only valid for
// as long as the input slice backing them is; neither type owns its bytes.
package der
