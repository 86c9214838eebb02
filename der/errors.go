// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// errorf constructs an *asinine.Error at the given offset. offset is relative
// to whatever slice the caller of the enclosing function was given (the
// original input for Parser methods, or a token's content for the primitive
// decoders).
func errorf(kind asinine.Kind, offset int, msg string) *asinine.Error {
	return &asinine.Error{Kind: kind, Offset: offset, Msg: msg}
}
