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

package token

import "strings"

// ValidSet is the set of token kinds a parser accepts at the current position.
// It is supplied anew for every call to the scanner.
//
type ValidSet uint8

// All is the ValidSet containing every Kind.
//
const All ValidSet = 1<<kindCount - 1

// ValidSetOf returns a ValidSet containing the given kinds.
//
func ValidSetOf(kinds ...Kind) ValidSet {
	var v ValidSet
	return v.With(kinds...)
}

// ValidSetFromBools converts a parser's valid symbols array, indexed by Kind,
// into a ValidSet. Missing entries are treated as false and extra entries are
// ignored.
//
func ValidSetFromBools(valid []bool) ValidSet {
	var v ValidSet
	for i, ok := range valid {
		if i >= int(kindCount) {
			break
		}
		if ok {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Has returns true if k is in v.
//
func (v ValidSet) Has(k Kind) bool {
	return k.IsValid() && v&(1<<k) != 0
}

// With returns a copy of v with the given kinds added. Invalid kinds are
// ignored.
//
func (v ValidSet) With(kinds ...Kind) ValidSet {
	for _, k := range kinds {
		if k.IsValid() {
			v |= 1 << k
		}
	}
	return v
}

// Without returns a copy of v with the given kinds removed.
//
func (v ValidSet) Without(kinds ...Kind) ValidSet {
	for _, k := range kinds {
		if k.IsValid() {
			v &^= 1 << k
		}
	}
	return v
}

// Bools returns v as a valid symbols array indexed by Kind.
//
func (v ValidSet) Bools() []bool {
	b := make([]bool, kindCount)
	for _, k := range Kinds {
		b[k] = v.Has(k)
	}
	return b
}

func (v ValidSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, k := range Kinds {
		if !v.Has(k) {
			continue
		}
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		b.WriteString(k.String())
	}
	b.WriteByte('}')
	return b.String()
}
