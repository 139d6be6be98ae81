// Copyright 2026 The regexlex Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package scanner implements an external scanner for a regular expression
// grammar.
//
// The scanner resolves the few lexical ambiguities of regular expression
// syntax that a context-free grammar cannot express: a \0 escape versus a
// numbered back-reference, the validity of a named group name following <, and
// whether { starts a count quantifier, a Unicode code point or a Unicode
// property.
//
// At each call the parser supplies a Cursor positioned at the next
// unconsumed rune and the set of token kinds it currently accepts. The
// scanner either emits exactly one of those kinds or declines. Apart from
// NullChar, every kind is a zero-width marker: its end is marked on the opening
// delimiter and the delimited text is left for the grammar to consume.
//
package scanner

import (
	"github.com/wizard04wsu/regexlex/token"
)

// Cursor is the view of the input stream the scanner works with.
//
// Lookahead returns the next unconsumed rune, or 0 at the end of the input.
// Advance consumes it; skip is always false for this scanner. MarkEnd sets the
// end of the token at the current position; it may be called more than once,
// the last call wins.
//
type Cursor interface {
	Lookahead() rune
	Advance(skip bool)
	MarkEnd()
}

// A Scanner holds the scanner configuration. It keeps no state between calls
// to Scan and may be used concurrently with distinct cursors.
//
type Scanner struct {
	strictProperties bool
}

// New creates a new Scanner.
//
func New(opts ...Option) *Scanner {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{
		strictProperties: o.strictProperties,
	}
}

// Destroy releases the scanner. It is a no-op and exists for parsers that
// expect create/destroy hooks.
//
func (s *Scanner) Destroy() {}

// Serialize writes the scanner state to buf and returns the number of bytes
// written. The scanner is stateless, so this is always 0.
//
func (s *Scanner) Serialize(buf []byte) int {
	return 0
}

// Deserialize restores the scanner state from buf. Since Serialize never
// writes anything, this is a no-op.
//
func (s *Scanner) Deserialize(buf []byte) {}

// Scan looks at the input under c and returns the kind of the token found
// there. It returns false if no kind in valid matches, in which case the
// cursor may have been advanced: the caller resumes from the end of the last
// accepted token, not from the cursor position.
//
func (s *Scanner) Scan(c Cursor, valid token.ValidSet) (token.Kind, bool) {
	switch c.Lookahead() {
	case '\\':
		c.MarkEnd()
		c.Advance(false)
		if valid.Has(token.NullChar) && c.Lookahead() == '0' {
			c.Advance(false)
			if isDigit(c.Lookahead()) {
				// back-reference
				return 0, false
			}
			c.MarkEnd()
			return token.NullChar, true
		}
	case '<':
		if !valid.Has(token.HasGroupName) {
			break
		}
		c.MarkEnd()
		c.Advance(false)
		if scanGroupName(c) {
			return token.HasGroupName, true
		}
	case '{':
		c.MarkEnd()
		c.Advance(false)
		if valid.Has(token.BeginCountQuantifier) && scanCountQuantifier(c) {
			return token.BeginCountQuantifier, true
		}
		if valid.Has(token.BeginUnicodeCodepoint) && scanCodepoint(c) {
			return token.BeginUnicodeCodepoint, true
		}
		if valid.Has(token.BeginUnicodeProperty) && s.scanProperty(c) {
			return token.BeginUnicodeProperty, true
		}
	}
	return 0, false
}
