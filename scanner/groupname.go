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

// scanGroupName checks for a non-empty group name terminated by >. The
// opening < has already been consumed. Names are made of ASCII letters,
// digits, $ and _, or \uXXXX escapes. The closing > is not consumed.
//
func scanGroupName(c Cursor) bool {
	if c.Lookahead() == '>' {
		// <>
		return false
	}
	for r := c.Lookahead(); r != 0 && r != '>'; r = c.Lookahead() {
		switch {
		case isWord(r):
			c.Advance(false)
		case r == '\\':
			c.Advance(false)
			if c.Lookahead() != 'u' {
				return false
			}
			for i := 0; i < 4; i++ {
				c.Advance(false)
				if !isHex(c.Lookahead()) {
					return false
				}
			}
			c.Advance(false)
		default:
			return false
		}
	}
	return c.Lookahead() == '>'
}
