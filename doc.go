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

/*
Package regexlex provides the input side of an external scanner for a regular
expression grammar: a File holding the source text with line information and a
lookahead Cursor with an explicit token end.

The scanner itself lives in the scanner sub-package. It resolves the lexical
ambiguities of regular expression syntax that a grammar cannot express
cleanly:

	\0      NUL escape, unless followed by a digit (then a back-reference)
	<name>  named group name: word characters, $, _ or \uXXXX escapes
	{3,7}   count quantifier
	{1F600} Unicode code point (after \u)
	{Lu}    Unicode property (after \p or \P)

Cursors

The scanner talks to its input through three operations: Lookahead returns the
next unconsumed rune (0 at EOF), Advance consumes it and MarkEnd sets the end
of the token at the current position. Since the token end is independent from
the read position, the scanner can look past the end of a token, which is how
the zero-width markers for <, and { work: the end is marked on the opening
delimiter, the body is inspected, and the parser consumes the body under its
own rules.

The Cursor type in this package implements these operations over a byte slice.
Any other type with the same methods, like the ExternalLexer of a tree-sitter
runtime, can be used as well.

Host

The host sub-package is a small stand-in for the parsing engine. It walks a
regular expression, computes which token kinds are acceptable at each position,
calls the scanner and turns the results into items and error diagnostics. The
regexscan command prints them.

*/
package regexlex
