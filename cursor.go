// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
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

package regexlex

import "unicode/utf8"

// EOF is the value returned by Cursor.Lookahead at the end of the input.
// A NUL byte in the input is indistinguishable from EOF.
//
const EOF rune = 0

// A Cursor is a lookahead cursor over the source of a File. It implements the
// interface expected by the scanner: the current lookahead rune, a one-rune
// Advance and MarkEnd, which sets the end of the current token independently
// of how far the cursor has read.
//
// A token spans [Start(), End()). Newlines are registered in the File line
// table the first time they are read.
//
type Cursor struct {
	f     *File
	start Pos // token start
	pos   Pos // offset of the lookahead rune
	end   Pos // token end, set by MarkEnd
	seen  Pos // furthest offset read so far
}

// NewCursor returns a new Cursor positioned at the start of f.
//
func NewCursor(f *File) *Cursor {
	return &Cursor{f: f}
}

// File returns the File read by the cursor.
//
func (c *Cursor) File() *File {
	return c.f
}

// Lookahead returns the rune at the cursor position without consuming it. It
// returns EOF at the end of the input. Invalid UTF-8 sequences are returned as
// utf8.RuneError, one byte at a time.
//
func (c *Cursor) Lookahead() rune {
	r, _ := c.decode()
	return r
}

func (c *Cursor) decode() (rune, int) {
	src := c.f.src
	if int(c.pos) >= len(src) {
		return EOF, 0
	}
	// Common case: ASCII
	if b := src[c.pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(src[c.pos:])
}

// Advance consumes the lookahead rune. When skip is true, the consumed rune
// is excluded from the token: the token start and end move along with the
// cursor. Advance at EOF is a no-op.
//
func (c *Cursor) Advance(skip bool) {
	r, w := c.decode()
	if w == 0 {
		return
	}
	c.pos += Pos(w)
	if c.pos > c.seen {
		c.seen = c.pos
		if r == '\n' {
			c.f.AddLine(c.pos, c.f.LineCount()+1)
		}
	}
	if skip {
		c.start = c.pos
		c.end = c.pos
	}
}

// MarkEnd marks the cursor position as the end of the current token.
//
func (c *Cursor) MarkEnd() {
	c.end = c.pos
}

// Start returns the start offset of the current token.
//
func (c *Cursor) Start() Pos {
	return c.start
}

// Offset returns the offset of the lookahead rune.
//
func (c *Cursor) Offset() Pos {
	return c.pos
}

// End returns the end offset of the current token as set by the last call to
// MarkEnd.
//
func (c *Cursor) End() Pos {
	return c.end
}

// Text returns the source text of the current token.
//
func (c *Cursor) Text() string {
	if c.end < c.start {
		return ""
	}
	return string(c.f.src[c.start:c.end])
}

// Reset moves the cursor to p and starts a new, empty token there. Positions
// outside of the source are clamped.
//
func (c *Cursor) Reset(p Pos) {
	if p < 0 {
		p = 0
	}
	if n := Pos(len(c.f.src)); p > n {
		p = n
	}
	// register lines skipped over
	for ; c.seen < p; c.seen++ {
		if c.f.src[c.seen] == '\n' {
			c.f.AddLine(c.seen+1, c.f.LineCount()+1)
		}
	}
	c.start, c.pos, c.end = p, p, p
}
