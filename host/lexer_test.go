package host_test

import (
	"strings"
	"testing"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/host"
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

type testData struct {
	name  string
	input string
	res   []string
}

func tokenize(in string, opts ...host.Option) []host.Item {
	return host.Tokenize(regexlex.NewFile("test", []byte(in)), opts...)
}

func run(t *testing.T, data []testData, opts ...host.Option) {
	t.Helper()
	for _, td := range data {
		td := td
		t.Run(td.name, func(t *testing.T) {
			items := tokenize(td.input, opts...)
			var got []string
			for _, i := range items {
				got = append(got, i.String())
			}
			exp := append(td.res, "EOF")
			if strings.Join(got, "\n") != strings.Join(exp, "\n") {
				t.Errorf("got:\n\t%s\nexpected:\n\t%s", strings.Join(got, "\n\t"), strings.Join(exp, "\n\t"))
			}
		})
	}
}

func TestLexer_Lex(t *testing.T) {
	data := []testData{
		{"quantifier", `a{2,3}`, []string{
			`Char "a"`,
			`External BeginCountQuantifier ""`,
			`Quantifier "{2,3}"`,
		}},
		{"nul", `\0\01`, []string{
			`External NullChar "\\0"`,
			`Escape "\\0"`,
			`Char "1"`,
		}},
		{"named", `(?<year>\d{4})\k<year>`, []string{
			`Char "("`,
			`Char "?"`,
			`External HasGroupName ""`,
			`GroupName "<year>"`,
			`Escape "\\d"`,
			`External BeginCountQuantifier ""`,
			`Quantifier "{4}"`,
			`Char ")"`,
			`Escape "\\k"`,
			`External HasGroupName ""`,
			`GroupName "<year>"`,
		}},
		{"unicode", `\u{1F600}\p{Script=Greek}\P{Lu}`, []string{
			`Escape "\\u"`,
			`External BeginUnicodeCodepoint ""`,
			`Codepoint "{1F600}"`,
			`Escape "\\p"`,
			`External BeginUnicodeProperty ""`,
			`Property "{Script=Greek}"`,
			`Escape "\\P"`,
			`External BeginUnicodeProperty ""`,
			`Property "{Lu}"`,
		}},
		{"empty name", `(?<>)`, []string{
			`Char "("`,
			`Char "?"`,
			`Error "invalid group name"`,
			`Char "<"`,
			`Char ">"`,
			`Char ")"`,
		}},
		{"codepoint too large", `\u{110000}`, []string{
			`Escape "\\u"`,
			`Error "invalid Unicode code point escape"`,
			`Char "{"`,
			`Char "1"`,
			`Char "1"`,
			`Char "0"`,
			`Char "0"`,
			`Char "0"`,
			`Char "0"`,
			`Char "}"`,
		}},
		{"bad property", `\p{}`, []string{
			`Escape "\\p"`,
			`Error "invalid Unicode property escape"`,
			`Char "{"`,
			`Char "}"`,
		}},
		{"literal brace", `x{,5}`, []string{
			`Char "x"`,
			`Char "{"`,
			`Char ","`,
			`Char "5"`,
			`Char "}"`,
		}},
		{"lookbehind", `(?<=a)`, []string{
			`Char "("`,
			`Char "?"`,
			`Char "<"`,
			`Char "="`,
			`Char "a"`,
			`Char ")"`,
		}},
		{"less than", `a<b>`, []string{
			`Char "a"`,
			`Char "<"`,
			`Char "b"`,
			`Char ">"`,
		}},
		{"trailing backslash", `\`, []string{
			`Error "\\ at end of pattern"`,
			`Char "\\"`,
		}},
		{"utf8", `é{1}`, []string{
			`Char "é"`,
			`External BeginCountQuantifier ""`,
			`Quantifier "{1}"`,
		}},
		{"empty", ``, nil},
	}
	run(t, data)
}

func TestLexer_Options(t *testing.T) {
	run(t, []testData{
		{"no properties", `\p{L}`, []string{
			`Escape "\\p"`,
			`Char "{"`,
			`Char "L"`,
			`Char "}"`,
		}},
		{"no null", `\0`, []string{
			`Escape "\\0"`,
		}},
	}, host.Mask(token.All.Without(token.BeginUnicodeProperty, token.NullChar)))

	run(t, []testData{
		{"strict", `\p{Klingon}`, []string{
			`Escape "\\p"`,
			`Error "invalid Unicode property escape"`,
			`Char "{"`,
			`Char "K"`,
			`Char "l"`,
			`Char "i"`,
			`Char "n"`,
			`Char "g"`,
			`Char "o"`,
			`Char "n"`,
			`Char "}"`,
		}},
	}, host.Scanner(scanner.New(scanner.StrictProperties(true))))
}

// Items other than errors cover the input exactly once, in order, and only
// NullChar markers have a width.
func TestLexer_Coverage(t *testing.T) {
	corpus := []string{
		`^(?<year>\d{4})-(?<month>\d{2})$`,
		`\0\00\01\u{10FFFF}\u{110000}A`,
		`[\p{Script=Greek}\P{gc!=Lu}]{2,}?|x{3}`,
		`(?<a\u0041>.)\k<aA>(?<>)`,
		"a\nb{1}\n\\p{L",
		"\x00{1}\xff",
	}
	for _, in := range corpus {
		var cur regexlex.Pos
		items := tokenize(in)
		for _, i := range items {
			if i.Type == host.Error {
				continue
			}
			if i.Pos != cur {
				t.Errorf("%q: %s starts at %d, expected %d", in, i, i.Pos, cur)
			}
			if i.Type == host.External && i.Kind != token.NullChar && i.End != i.Pos {
				t.Errorf("%q: %s is not zero-width", in, i)
			}
			cur = i.End
		}
		if int(cur) != len(in) {
			t.Errorf("%q: items end at %d, expected %d", in, cur, len(in))
		}
		if last := items[len(items)-1]; last.Type != host.EOF {
			t.Errorf("%q: last item is %s", in, last)
		}
	}
}

func TestLexer_EOF(t *testing.T) {
	l := host.New(regexlex.NewFile("", []byte("a")))
	if i := l.Lex(); i.Type != host.Char {
		t.Fatalf("expected Char, got %s", i)
	}
	for n := 0; n < 3; n++ {
		if i := l.Lex(); i.Type != host.EOF || i.Pos != 1 {
			t.Errorf("expected EOF at 1, got %s at %d", i, i.Pos)
		}
	}
}
