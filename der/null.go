// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// DecodeNull validates that t holds the ASN.1 NULL value (tag 05): its
// content must be empty.
func DecodeNull(t Token) (asinine.Null, *asinine.Error) {
	if len(t.Data) != 0 {
		return asinine.Null{}, errorf(asinine.Malformed, 0, "NULL must have empty content")
	}
	return asinine.Null{}, nil
}
