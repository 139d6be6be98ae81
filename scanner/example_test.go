package scanner_test

import (
	"fmt"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

// This example shows how a parser drives the scanner: it positions a cursor,
// passes the kinds acceptable at that point and reads back the token span.
func ExampleScanner_Scan() {
	s := scanner.New()
	defer s.Destroy()

	inputs := []struct {
		src   string
		valid token.ValidSet
	}{
		{`\0+`, token.ValidSetOf(token.NullChar)},
		{`\01`, token.ValidSetOf(token.NullChar)},
		{`{2,5}`, token.ValidSetOf(token.BeginCountQuantifier)},
		{`{1F600}`, token.ValidSetOf(token.BeginUnicodeCodepoint)},
		{`{Script=Greek}`, token.ValidSetOf(token.BeginUnicodeProperty)},
		{`<year>`, token.ValidSetOf(token.HasGroupName)},
		{`<>`, token.ValidSetOf(token.HasGroupName)},
	}
	for _, in := range inputs {
		c := regexlex.NewCursor(regexlex.NewFile("", []byte(in.src)))
		if k, ok := s.Scan(c, in.valid); ok {
			fmt.Printf("%-16s %-21s %q\n", in.src, k, c.Text())
		} else {
			fmt.Printf("%-16s no match\n", in.src)
		}
	}

	// Output:
	// \0+              NullChar              "\\0"
	// \01              no match
	// {2,5}            BeginCountQuantifier  ""
	// {1F600}          BeginUnicodeCodepoint ""
	// {Script=Greek}   BeginUnicodeProperty  ""
	// <year>           HasGroupName          ""
	// <>               no match
}
