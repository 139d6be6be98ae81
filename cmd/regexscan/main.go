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

// Command regexscan tokenizes regular expressions and prints the tokens
// recognized by the disambiguating scanner.
//
// Usage:
//
//	regexscan [-config file.yaml] [-strict] [-i] [file...]
//
// With no file arguments, regexscan reads its standard input. Each token is
// printed on its own line as line:col TYPE value. Errors are reported on
// stderr and cause a non-zero exit status.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pattyshack/gt/parseutil"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/diag"
	"github.com/wizard04wsu/regexlex/host"
)

func main() {
	var (
		cfgFile     = flag.String("config", "", "YAML configuration `file`")
		strict      = flag.Bool("strict", false, "validate Unicode property names")
		interactive = flag.Bool("i", false, "interactive mode")
	)
	flag.Parse()

	cfg := &config{}
	if *cfgFile != "" {
		var err error
		if cfg, err = loadConfig(*cfgFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *strict {
		cfg.StrictProperties = true
	}

	if *interactive {
		os.Exit(repl(cfg))
	}

	nerr := 0
	if flag.NArg() == 0 {
		f, err := regexlex.ReadFile("<stdin>", os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		nerr += tokenize(os.Stdout, os.Stderr, f, cfg)
	}
	for _, name := range flag.Args() {
		content, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ReadFile error:", err)
			nerr++
			continue
		}
		nerr += tokenize(os.Stdout, os.Stderr, regexlex.NewFile(name, content), cfg)
	}
	if nerr > 0 {
		os.Exit(1)
	}
}

// tokenize prints the tokens of f to w and reports errors to errw. It returns
// the number of errors found.
//
func tokenize(w, errw io.Writer, f *regexlex.File, cfg *config) int {
	emitter := &parseutil.Emitter{}
	l := host.New(f, cfg.options()...)
	for {
		i := l.Lex()
		p := f.Position(i.Pos)
		if i.Type == host.Error {
			emitter.Emit(location(p), "%s", i.Value)
			continue
		}
		fmt.Fprintf(w, "%d:%d %s\n", p.Line, p.Column, i)
		if i.Type == host.EOF {
			break
		}
	}

	errs := emitter.Errors()
	if len(errs) == 0 {
		return 0
	}
	for _, err := range errs {
		if werr := report(errw, f, err); werr != nil {
			// stop on write failure, the exit status still counts them
			return len(errs)
		}
	}
	fmt.Fprintf(errw, "%s: found %d errors\n", f.Name(), len(errs))
	return len(errs)
}

// location converts p to a parseutil location. Columns are byte columns
// counted from 1, as in the token listing.
func location(p regexlex.Position) parseutil.Location {
	return parseutil.Location{
		FileName: p.Filename,
		Line:     p.Line,
		Column:   p.Column,
	}
}

// report writes err and, for errors located in f, the offending source line
// with a caret.
//
func report(w io.Writer, f *regexlex.File, err error) error {
	if _, werr := fmt.Fprintln(w, err); werr != nil {
		return werr
	}
	var le parseutil.LocationError
	if !errors.As(err, &le) || le.Loc.FileName != f.Name() {
		return nil
	}
	lp := f.LinePos(le.Loc.Line)
	if !lp.IsValid() {
		return nil
	}
	return diag.Caret(w, f, lp+regexlex.Pos(le.Loc.Column-1))
}
