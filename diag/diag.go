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

// Package diag formats diagnostics for regular expression sources.
//
package diag

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/wizard04wsu/regexlex"
)

// Report writes a diagnostic in the form:
//
//	file:line:col: error description
//	|source line where the error occurred
//	|          ^
//
// See Caret for the last two lines.
//
func Report(w io.Writer, f *regexlex.File, pos regexlex.Pos, msg string) error {
	if _, err := fmt.Fprintf(w, "%s: error %s\n", f.Position(pos), msg); err != nil {
		return err
	}
	return Caret(w, f, pos)
}

// Caret writes the source line containing pos, then a caret under the
// column of pos, supposing rendering with a UTF-8 locale and a monospaced
// font. Nothing is written if the line cannot be retrieved.
//
func Caret(w io.Writer, f *regexlex.File, pos regexlex.Pos) error {
	l, err := f.GetLineBytes(pos)
	if err != nil {
		return nil
	}
	b := f.Position(pos).Column - 1
	if b > len(l) {
		b = len(l)
	}
	_, err = fmt.Fprintf(w, "|%s\n|%*s^\n", l, Width(l[:b]), "")
	return err
}

// Width returns the number of text cells l takes on a terminal. Control
// characters take none.
//
func Width(l []byte) int {
	n := 0
	for len(l) > 0 {
		r, s := rune(l[0]), 1
		if r >= utf8.RuneSelf {
			r, s = utf8.DecodeRune(l)
		}
		l = l[s:]
		n += RuneWidth(r)
	}
	return n
}

// RuneWidth returns the number of text cells r takes on a terminal: 2 for
// East Asian wide and fullwidth runes, 0 for non-graphic runes, 1 otherwise.
// Ambiguous runes are counted as narrow, as in non-CJK locales.
//
func RuneWidth(r rune) int {
	if r < utf8.RuneSelf {
		if r < ' ' || r == 0x7f {
			return 0
		}
		return 1
	}
	if !unicode.IsGraphic(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	return 1
}
