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

import "strings"

// scanProperty checks for the body of a Unicode property escape. The opening
// { has already been consumed, the closing } is not consumed:
//
//	body  = name [ ( "=" | "!=" ) value ]
//	name  = 1*( ALPHA / DIGIT / "_" )
//	value = 1*( ALPHA / DIGIT / "_" )
//
// In strict mode, names and values are also looked up.
//
func (s *Scanner) scanProperty(c Cursor) bool {
	name, ok := scanPropertyWord(c)
	if !ok {
		return false
	}
	switch c.Lookahead() {
	case '}':
		return !s.strictProperties || isLoneProperty(name)
	case '!':
		c.Advance(false)
		if c.Lookahead() != '=' {
			return false
		}
		fallthrough
	case '=':
		c.Advance(false)
		value, ok := scanPropertyWord(c)
		if !ok || c.Lookahead() != '}' {
			return false
		}
		return !s.strictProperties || isPropertyValue(name, value)
	}
	return false
}

func scanPropertyWord(c Cursor) (string, bool) {
	var b strings.Builder
	for r := c.Lookahead(); isPropertyChar(r); r = c.Lookahead() {
		b.WriteRune(r)
		c.Advance(false)
	}
	return b.String(), b.Len() > 0
}
