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
	"bytes"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/token"
)

// stateInit is the initial state function. It dispatches on the rune at the
// resume position and consumes the delimiter context left by the previous
// item.
//
func stateInit(l *Lexer) StateFn {
	ctx := l.ctx
	l.ctx = ctxNone
	if int(l.pos) >= l.f.Len() {
		l.push(Item{Type: EOF, Pos: l.pos, End: l.pos})
		return stateEOF
	}
	switch l.peek(0) {
	case '\\':
		return lexEscape
	case '(':
		// (?< not followed by = or ! starts a named group
		if l.peek(1) == '?' && l.peek(2) == '<' && l.peek(3) != '=' && l.peek(3) != '!' {
			l.emit(Char, l.pos+1)
			l.emit(Char, l.pos+1)
			l.ctx = ctxGroupName
			return nil
		}
	case '<':
		if ctx == ctxGroupName {
			return lexGroupName
		}
	case '{':
		switch ctx {
		case ctxCodepoint:
			return lexBraced(token.BeginUnicodeCodepoint, Codepoint, "invalid Unicode code point escape")
		case ctxProperty:
			return lexBraced(token.BeginUnicodeProperty, Property, "invalid Unicode property escape")
		default:
			return lexBraced(token.BeginCountQuantifier, Quantifier, "")
		}
	}
	l.emit(Char, l.next(l.pos))
	return nil
}

func stateEOF(l *Lexer) StateFn {
	l.push(Item{Type: EOF, Pos: l.pos, End: l.pos})
	return stateEOF
}

// lexEscape lexes a backslash escape: either a \0 accepted by the scanner or
// a backslash followed by one rune.
//
func lexEscape(l *Lexer) StateFn {
	if k, ok := l.scan(token.NullChar); ok {
		l.emitExternal(k)
		return nil
	}
	p := l.next(l.pos)
	if int(p) >= l.f.Len() {
		l.errorf("\\ at end of pattern")
		l.emit(Char, p)
		return nil
	}
	switch l.f.Bytes()[p] {
	case 'u':
		l.ctx = ctxCodepoint
	case 'p', 'P':
		l.ctx = ctxProperty
	case 'k':
		l.ctx = ctxGroupName
	}
	l.emit(Escape, l.next(p))
	return nil
}

// lexBraced returns a state function for a { where the grammar accepts the
// token kind k. On success it emits the marker followed by the braced text as
// an item of type t. When the scanner declines, the { is a plain character and
// msg, if not empty, is reported as an error.
//
func lexBraced(k token.Kind, t Type, msg string) StateFn {
	return func(l *Lexer) StateFn {
		if !l.mask.Has(k) {
			l.emit(Char, l.pos+1)
			return nil
		}
		if got, ok := l.scan(k); ok {
			l.emitExternal(got)
			l.emit(t, l.closing('}'))
			return nil
		}
		if msg != "" {
			l.errorf("%s", msg)
		}
		l.emit(Char, l.pos+1)
		return nil
	}
}

// lexGroupName lexes the < of a named group or named back-reference.
//
func lexGroupName(l *Lexer) StateFn {
	if !l.mask.Has(token.HasGroupName) {
		l.emit(Char, l.pos+1)
		return nil
	}
	if k, ok := l.scan(token.HasGroupName); ok {
		l.emitExternal(k)
		l.emit(GroupName, l.closing('>'))
		return nil
	}
	l.errorf("invalid group name")
	l.emit(Char, l.pos+1)
	return nil
}

// closing returns the offset just past the first delim at or after l.pos. The
// scanner only accepts tokens whose body is terminated by delim.
//
func (l *Lexer) closing(delim byte) regexlex.Pos {
	i := bytes.IndexByte(l.f.Bytes()[l.pos:], delim)
	if i < 0 {
		panic("unterminated token accepted by the scanner")
	}
	return l.pos + regexlex.Pos(i) + 1
}
