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

package host

import (
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

type options struct {
	scanner *scanner.Scanner
	mask    token.ValidSet
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// Scanner sets the scanner used by the lexer. By default, the lexer uses a
// scanner created with scanner.New().
//
func Scanner(s *scanner.Scanner) Option {
	return func(o *options) {
		o.scanner = s
	}
}

// Mask restricts the token kinds the lexer ever requests from the scanner.
// Where a kind is excluded, the lexer behaves as a grammar without that rule:
// the delimiter is lexed as a plain character and no error is reported.
//
func Mask(v token.ValidSet) Option {
	return func(o *options) {
		o.mask = v
	}
}
