// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import "github.com/ajkhoury/asinine"

// MaxDepth is the maximum nesting depth a [Parser] will descend into. It
// replaces a recursive-descent parser structure with a fixed-size array plus
// a depth counter, giving bounded worst-case memory (spec.md §3, §9). Descent
// beyond MaxDepth is reported as [asinine.Unsupported].
const MaxDepth = 8

// Parser is a stateful, constant-auxiliary-memory walker over a borrowed byte
// slice containing one or more DER-encoded data values (spec.md §4.2).
//
// The zero Parser is not ready for use; call [Parser.Init] first. A Parser
// and any [Token] it produces via [Parser.Token] are valid only as long as
// the slice passed to Init remains unchanged.
//
// Parser is single-threaded: concurrent use of the same Parser from multiple
// goroutines is undefined and must be serialised by the caller (spec.md §5).
type Parser struct {
	data []byte

	pos        int // current offset
	end        int // end of the current container
	stack      [MaxDepth]int
	depth      int
	tok        Token
	haveToken  bool
	err        *asinine.Error
}

// Init resets p to walk data from the beginning. Any previous state,
// including a latched error, is discarded.
func (p *Parser) Init(data []byte) {
	p.data = data
	p.pos = 0
	p.end = len(data)
	p.depth = 0
	p.haveToken = false
	p.err = nil
}

// Err returns the latched error, or nil if none has occurred. Once Err
// returns non-nil, every subsequent call to [Parser.Next], [Parser.Descend],
// and [Parser.Ascend] is a no-op (spec.md §4.2, §7).
func (p *Parser) Err() *asinine.Error { return p.err }

// fail latches err (if one is not already latched) and returns false, the
// convention every step operation uses to report failure.
func (p *Parser) fail(err *asinine.Error) bool {
	if p.err == nil {
		p.err = err
	}
	return false
}

// EOT reports whether p's position has reached the end of the current
// container (or the end of the input, at the root).
func (p *Parser) EOT() bool {
	return p.pos == p.end
}

// Valid reports whether the entire input was consumed cleanly: no error
// occurred, every descended container was ascended back out of, and the
// cursor sits at the end of the (root) container (spec.md §4.2, §8).
func (p *Parser) Valid() bool {
	return p.err == nil && p.depth == 0 && p.EOT()
}

// Token returns the most recently parsed token. It is only meaningful
// immediately after a call to [Parser.Next] that returned true.
func (p *Parser) Token() Token { return p.tok }

// Next parses the next sibling data value within the current container and
// advances past it. It returns true on success. It returns false both when an
// error occurs (in which case [Parser.Err] is non-nil) and when the current
// container has been cleanly exhausted (in which case [Parser.EOT] is true
// and [Parser.Err] remains nil) — these two cases are distinguished exactly
// as spec.md §4.2 describes.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	if p.EOT() {
		return false
	}

	// Bound the header decode by the current container's end, not the whole
	// input, so a header cannot read into a sibling container's bytes.
	h, contentStart, err := decodeHeader(p.data[:p.end], p.pos)
	if err != nil {
		return p.fail(err)
	}
	if h.Length > p.end-contentStart {
		// The value's declared length claims bytes past the enclosing
		// container's boundary, even though it fits within the whole input.
		return p.fail(errorf(asinine.Malformed, p.pos, "content extends past end of container"))
	}

	p.tok = Token{Header: h, Data: p.data[contentStart : contentStart+h.Length]}
	p.haveToken = true
	p.pos = contentStart + h.Length
	return true
}

// Descend enters the constructed token most recently returned by [Parser.Next],
// pushing the current container boundary onto the stack. Descend into a
// primitive token, without a preceding successful Next, or past [MaxDepth]
// levels, is an error.
func (p *Parser) Descend() bool {
	if p.err != nil {
		return false
	}
	if !p.haveToken || !p.tok.Constructed {
		return p.fail(errorf(asinine.Malformed, p.pos, "descend into primitive token"))
	}
	if p.depth >= MaxDepth {
		return p.fail(errorf(asinine.Unsupported, p.pos, "maximum nesting depth exceeded"))
	}

	tok := p.tok
	contentStart := p.pos - len(tok.Data)

	p.stack[p.depth] = p.end
	p.depth++
	p.pos = contentStart
	p.end = contentStart + len(tok.Data)
	p.haveToken = false
	return true
}

// Ascend pops k levels off the container stack, returning to the enclosing
// container(s). It is an error to ascend out of a container whose content has
// not been fully consumed (trailing bytes inside a container are rejected,
// spec.md §4.2), or to ascend more levels than are currently open.
func (p *Parser) Ascend(k int) bool {
	if p.err != nil {
		return false
	}
	if k < 0 || k > p.depth {
		return p.fail(errorf(asinine.Malformed, p.pos, "ascend count exceeds open containers"))
	}
	if !p.EOT() {
		return p.fail(errorf(asinine.Malformed, p.pos, "trailing data inside container"))
	}
	for i := 1; i < k; i++ {
		if p.stack[p.depth-i] != p.pos {
			return p.fail(errorf(asinine.Malformed, p.pos, "trailing data inside container"))
		}
	}

	for i := 0; i < k; i++ {
		p.depth--
		p.end = p.stack[p.depth]
	}
	p.haveToken = false
	return true
}
