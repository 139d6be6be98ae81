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

// Package host implements a minimal parsing engine around the regular
// expression scanner.
//
// The Lexer walks a regular expression and, at each position where the
// grammar would consult the external scanner, computes the set of acceptable
// token kinds from the surrounding context and calls the scanner. Accepted
// markers are followed by an item for the delimited text they introduce.
// Where the context requires a token and the scanner declines, an Error item
// is emitted and lexing resumes from the last accepted position.
//
// The Lexer is built from state functions, in the manner of
// https://golang.org/src/text/template/parse/lex.go, with items queued in a
// FIFO rather than sent over a channel.
//
package host

import (
	"fmt"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

// Type is the type of an Item.
//
type Type int

// Error is the type of error items. The item value is the error message.
//
const Error Type = -1

// Item types.
//
const (
	EOF        Type = iota // end of input
	Char                   // any other character
	Escape                 // \ followed by one character
	External               // token from the scanner, see Item.Kind
	Quantifier             // {n}, {n,} or {n,m}
	Codepoint              // {hhhhh} following \u
	Property               // {name}, {name=value} or {name!=value} following \p or \P
	GroupName              // <name> following (? or \k
)

var typeNames = map[Type]string{
	Error:      "Error",
	EOF:        "EOF",
	Char:       "Char",
	Escape:     "Escape",
	External:   "External",
	Quantifier: "Quantifier",
	Codepoint:  "Codepoint",
	Property:   "Property",
	GroupName:  "GroupName",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Item represents a token returned from the lexer. It spans [Pos, End) in the
// source. External items other than token.NullChar are zero-width.
//
type Item struct {
	Type  Type
	Kind  token.Kind // scanner token kind for External items
	Pos   regexlex.Pos
	End   regexlex.Pos
	Value string // source text, or the error message for Error items
}

// String returns a string representation of the item. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (i Item) String() string {
	switch i.Type {
	case External:
		return fmt.Sprintf("%s %s %q", i.Type, i.Kind, i.Value)
	case EOF:
		return i.Type.String()
	}
	return fmt.Sprintf("%s %q", i.Type, i.Value)
}

// delimiter is the meaning the previous item gives to the next delimiter.
type delimiter int

const (
	ctxNone delimiter = iota
	ctxGroupName
	ctxCodepoint
	ctxProperty
)

// A StateFn is a state function.
//
// If a StateFn returns nil, the lexer transitions back to its initial state
// function.
//
type StateFn func(l *Lexer) StateFn

// A Lexer holds the state of the lexer while processing a given input.
//
type Lexer struct {
	queue
	f     *regexlex.File
	c     *regexlex.Cursor
	s     *scanner.Scanner
	mask  token.ValidSet
	state StateFn
	pos   regexlex.Pos // end of the last item, where lexing resumes
	ctx   delimiter
}

// New creates a new lexer for the given source file.
//
func New(f *regexlex.File, opts ...Option) *Lexer {
	o := options{mask: token.All}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scanner == nil {
		o.scanner = scanner.New()
	}
	return &Lexer{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]Item, 2)},
		f:     f,
		c:     regexlex.NewCursor(f),
		s:     o.scanner,
		mask:  o.mask,
	}
}

// Tokenize returns all items in f, up to and including the EOF item.
//
func Tokenize(f *regexlex.File, opts ...Option) []Item {
	l := New(f, opts...)
	var items []Item
	for {
		i := l.Lex()
		items = append(items, i)
		if i.Type == EOF {
			return items
		}
	}
}

// Lex returns the next item. Once the end of the input has been reached, Lex
// keeps returning EOF items.
//
func (l *Lexer) Lex() Item {
	for l.count == 0 {
		if l.state == nil {
			l.state = stateInit(l)
		} else {
			l.state = l.state(l)
		}
	}
	return l.pop()
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *regexlex.File {
	return l.f
}

// emit emits an item spanning [l.pos, end) and resumes lexing at end.
func (l *Lexer) emit(t Type, end regexlex.Pos) {
	l.push(Item{
		Type:  t,
		Pos:   l.pos,
		End:   end,
		Value: string(l.f.Bytes()[l.pos:end]),
	})
	l.pos = end
}

// emitExternal emits a token accepted by the scanner. The cursor holds the
// token end.
func (l *Lexer) emitExternal(k token.Kind) {
	end := l.c.End()
	l.push(Item{
		Type:  External,
		Kind:  k,
		Pos:   l.pos,
		End:   end,
		Value: string(l.f.Bytes()[l.pos:end]),
	})
	l.pos = end
}

// errorf emits an error item at l.pos.
func (l *Lexer) errorf(format string, args ...interface{}) {
	l.push(Item{
		Type:  Error,
		Pos:   l.pos,
		End:   l.pos,
		Value: fmt.Sprintf(format, args...),
	})
}

// scan calls the scanner at l.pos with the given kinds, restricted to the
// lexer mask.
func (l *Lexer) scan(kinds ...token.Kind) (token.Kind, bool) {
	valid := token.ValidSetOf(kinds...) & l.mask
	if valid == 0 {
		return 0, false
	}
	l.c.Reset(l.pos)
	return l.s.Scan(l.c, valid)
}

// next returns the end offset of the rune at p.
func (l *Lexer) next(p regexlex.Pos) regexlex.Pos {
	l.c.Reset(p)
	l.c.Advance(false)
	return l.c.Offset()
}

// peek returns the byte at l.pos+n or 0 past the end of the input.
func (l *Lexer) peek(n int) byte {
	src := l.f.Bytes()
	if i := int(l.pos) + n; i < len(src) {
		return src[i]
	}
	return 0
}
