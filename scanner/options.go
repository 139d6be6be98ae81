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

type options struct {
	strictProperties bool
}

// An Option is a configuration option for a new Scanner.
//
type Option func(*options)

// StrictProperties enables checking of Unicode property names and values.
//
// By default, the body of a property escape is only checked for its shape:
// a name, optionally followed by = or != and a value. In strict mode, the
// name must be a known General_Category value, ECMAScript binary property or
// script, and in the name=value form the name must be General_Category,
// Script or Script_Extensions (or their short aliases) with a known value.
// Lone script names, as in \p{Greek}, are an extension to ECMAScript.
//
func StrictProperties(strict bool) Option {
	return func(o *options) {
		o.strictProperties = strict
	}
}
