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

package scanner

// Maximum number of significant hex digits in a code point. A leading 1
// lowers it by one so that nothing above 10FFFF is accepted.
const maxCodepointDigits = 5

// scanCountQuantifier checks for the body of a count quantifier: {n}, {n,}
// or {n,m}. The opening { has already been consumed, the closing } is not
// consumed.
//
func scanCountQuantifier(c Cursor) bool {
	if !isDigit(c.Lookahead()) {
		return false
	}
	skipDigits(c)
	if c.Lookahead() == ',' {
		c.Advance(false)
		skipDigits(c)
	}
	return c.Lookahead() == '}'
}

func skipDigits(c Cursor) {
	for isDigit(c.Lookahead()) {
		c.Advance(false)
	}
}

// scanCodepoint checks for the body of a code point escape {h...}. The
// opening { has already been consumed, the closing } is not consumed.
//
// Leading zeros are not significant. After them, at most five hex digits may
// follow, or a 1 (optionally followed by a 0) and at most four hex digits.
//
func scanCodepoint(c Cursor) bool {
	if !isHex(c.Lookahead()) {
		return false
	}
	n := 0
	for c.Lookahead() == '0' {
		c.Advance(false)
		n++
	}
	budget := maxCodepointDigits
	if c.Lookahead() == '1' {
		c.Advance(false)
		n++
		budget--
		if c.Lookahead() == '0' {
			c.Advance(false)
			n++
		}
	}
	for i := 0; i < budget; i++ {
		r := c.Lookahead()
		if r == '}' {
			break
		}
		if !isHex(r) {
			return false
		}
		c.Advance(false)
		n++
	}
	return n > 0 && c.Lookahead() == '}'
}
