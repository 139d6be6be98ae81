package scanner_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/scanner"
	"github.com/wizard04wsu/regexlex/token"
)

type scanCase struct {
	Input  string   `yaml:"input"`
	Valid  []string `yaml:"valid"`
	Strict bool     `yaml:"strict"`
	Kind   string   `yaml:"kind"`
	End    int      `yaml:"end"`
	Offset int      `yaml:"offset"`
}

func (c *scanCase) validSet(t *testing.T) token.ValidSet {
	if c.Valid == nil {
		return token.All
	}
	var v token.ValidSet
	for _, name := range c.Valid {
		k, ok := token.ParseKind(name)
		require.True(t, ok, "unknown kind %q", name)
		v = v.With(k)
	}
	return v
}

func loadCases(t *testing.T, name string) []scanCase {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	var cases []scanCase
	require.NoError(t, yaml.Unmarshal(b, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func scan(s *scanner.Scanner, input string, valid token.ValidSet) (token.Kind, bool, *regexlex.Cursor) {
	c := regexlex.NewCursor(regexlex.NewFile("", []byte(input)))
	k, ok := s.Scan(c, valid)
	return k, ok, c
}

func TestScan_Fixtures(t *testing.T) {
	for _, tc := range loadCases(t, "testdata/scan.yaml") {
		tc := tc
		t.Run(tc.Input, func(t *testing.T) {
			s := scanner.New(scanner.StrictProperties(tc.Strict))
			k, ok, c := scan(s, tc.Input, tc.validSet(t))
			if tc.Kind == "" {
				assert.False(t, ok, "unexpected %s", k)
			} else if assert.True(t, ok, "expected %s", tc.Kind) {
				assert.Equal(t, tc.Kind, k.String())
			}
			assert.Equal(t, regexlex.Pos(tc.End), c.End(), "token end")
			assert.Equal(t, regexlex.Pos(tc.Offset), c.Offset(), "cursor offset")
		})
	}
}

func TestScan_NullChar(t *testing.T) {
	t.Parallel()

	s := scanner.New()
	// \0 followed by anything but a digit.
	for _, tail := range []string{"", "a", "\\", "{", ")", "x1", " 1", "é"} {
		k, ok, c := scan(s, `\0`+tail, token.ValidSetOf(token.NullChar))
		require.True(t, ok, "%q", tail)
		assert.Equal(t, token.NullChar, k)
		assert.Equal(t, regexlex.Pos(2), c.End())
		assert.Equal(t, `\0`, c.Text())
	}
	// multi-digit back-references
	for d := '0'; d <= '9'; d++ {
		_, ok, _ := scan(s, `\0`+string(d), token.All)
		assert.False(t, ok, "\\0%c", d)
	}
}

var maskInputs = []string{
	`\0`, `\0x`, `<name>`, `<a\u0041>`, `{3}`, `{3,}`, `{3,7}`, `{1F600}`,
	`{10FFFF}`, `{Script=Greek}`, `{L}`, `{12}`, `{a}`, `{sc!=Latn}`,
}

func TestScan_Mask(t *testing.T) {
	t.Parallel()

	for _, strict := range []bool{false, true} {
		s := scanner.New(scanner.StrictProperties(strict))
		for _, in := range maskInputs {
			_, ok, _ := scan(s, in, 0)
			assert.False(t, ok, "%q matched with an empty mask", in)
			for _, k := range token.Kinds {
				got, ok, _ := scan(s, in, token.All.Without(k))
				if ok {
					assert.NotEqual(t, k, got, "%q: %s emitted while not valid", in, k)
				}
				got, ok, _ = scan(s, in, token.ValidSetOf(k))
				if ok {
					assert.Equal(t, k, got, "%q", in)
				}
			}
		}
	}
}

func TestScan_Preference(t *testing.T) {
	t.Parallel()

	s := scanner.New()
	data := []struct {
		input string
		valid token.ValidSet
		kind  token.Kind
	}{
		{"{12}", token.All, token.BeginCountQuantifier},
		{"{12}", token.All.Without(token.BeginCountQuantifier), token.BeginUnicodeCodepoint},
		{"{ab}", token.All, token.BeginUnicodeCodepoint},
		{"{ab}", token.ValidSetOf(token.BeginUnicodeProperty), token.BeginUnicodeProperty},
		{"{Lu}", token.All, token.BeginUnicodeProperty},
	}
	for _, td := range data {
		k, ok, c := scan(s, td.input, td.valid)
		require.True(t, ok, td.input)
		assert.Equal(t, td.kind, k, td.input)
		assert.Equal(t, regexlex.Pos(0), c.End(), "%s: marker must be zero-width", td.input)
	}
}

// Scanning again from the end of an accepted token never claims bytes that
// already belong to it.
func TestScan_Resume(t *testing.T) {
	t.Parallel()

	s := scanner.New()
	for _, in := range maskInputs {
		c := regexlex.NewCursor(regexlex.NewFile("", []byte(in)))
		_, ok := s.Scan(c, token.All)
		if !ok {
			continue
		}
		end := c.End()
		c.Reset(end)
		s.Scan(c, token.All)
		assert.GreaterOrEqual(t, int(c.End()), int(end), in)
		assert.Equal(t, end, c.Start(), in)
	}
}

func TestScanner_Lifecycle(t *testing.T) {
	s := scanner.New()
	defer s.Destroy()

	buf := []byte{0xde, 0xad, 0xbe, 0xef}
	assert.Zero(t, s.Serialize(buf))
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, buf)
	s.Deserialize(nil)
	s.Deserialize(buf)

	k, ok, _ := scan(s, "{3}", token.All)
	assert.True(t, ok)
	assert.Equal(t, token.BeginCountQuantifier, k)
}

// Scan must work on any Cursor, including one that reports the end of input
// as 0 and ignores Advance past it.
type runeCursor struct {
	rs  []rune
	pos int
	end int
	adv int
}

func (c *runeCursor) Lookahead() rune {
	if c.pos >= len(c.rs) {
		return 0
	}
	return c.rs[c.pos]
}

func (c *runeCursor) Advance(skip bool) {
	c.adv++
	if c.pos < len(c.rs) {
		c.pos++
	}
}

func (c *runeCursor) MarkEnd() { c.end = c.pos }

func TestScan_Cursor(t *testing.T) {
	t.Parallel()

	s := scanner.New()
	c := &runeCursor{rs: []rune(`<a\u`)}
	_, ok := s.Scan(c, token.All)
	assert.False(t, ok)
	assert.Equal(t, 4, c.pos)

	c = &runeCursor{rs: []rune(`\0`)}
	k, ok := s.Scan(c, token.All)
	assert.True(t, ok)
	assert.Equal(t, token.NullChar, k)
	assert.Equal(t, 2, c.end)
	assert.Equal(t, 2, c.adv)
}
