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

// Package token defines the token kinds produced by the regular expression
// scanner and the validity mask through which a parser tells the scanner which
// kinds it may produce.
//
package token

//go:generate stringer -type Kind

// Kind identifies a token produced by the scanner. The numeric value of each
// Kind is its index in a parser's valid symbols array.
//
type Kind uint8

// Token kinds.
//
const (
	NullChar              Kind = iota // \0 not followed by a decimal digit
	HasGroupName                      // (no content) < followed by a valid group name and >
	BeginCountQuantifier              // (no content) { starting {n}, {n,} or {n,m}
	BeginUnicodeCodepoint             // (no content) { starting a code point {hhhhh}
	BeginUnicodeProperty              // (no content) { starting a property {name=value}

	kindCount
)

// Kinds lists all token kinds in index order.
//
var Kinds = [...]Kind{
	NullChar,
	HasGroupName,
	BeginCountQuantifier,
	BeginUnicodeCodepoint,
	BeginUnicodeProperty,
}

// IsValid returns true if k is one of the defined kinds.
//
func (k Kind) IsValid() bool {
	return k < kindCount
}

// ParseKind returns the Kind whose String representation is s.
//
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
