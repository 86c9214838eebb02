// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asinine

// Null represents the ASN.1 NULL value (tag 05). It carries no data; its only
// role is to be present or absent.
type Null struct{}
