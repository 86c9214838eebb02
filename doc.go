// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asinine implements the data model shared by the DER (Distinguished
// Encoding Rules) subset of ASN.1 used throughout this module: tag classes and
// numbers, the four-member error taxonomy, object identifiers, and the two
// calendar-time formats carried by X.690 encodings.
//
// This package defines values only. The codec that turns a byte slice into
// these values — the identifier/length codec, the token cursor, and the
// primitive decoders — lives in the sub-package "der".
//
// Nothing in this package allocates, blocks, or performs I/O.
package asinine
