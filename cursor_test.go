package regexlex_test

import (
	"strconv"
	"testing"

	"github.com/wizard04wsu/regexlex"
)

// Test proper behavior of Lookahead/Advance/MarkEnd/Reset
func TestCursor(t *testing.T) {
	look := func(c *regexlex.Cursor) rune { return c.Lookahead() }
	adv := func(c *regexlex.Cursor) rune { c.Advance(false); return c.Lookahead() }
	skip := func(c *regexlex.Cursor) rune { c.Advance(true); return c.Lookahead() }
	mark := func(c *regexlex.Cursor) rune { c.MarkEnd(); return c.Lookahead() }
	reset := func(p regexlex.Pos) func(c *regexlex.Cursor) rune {
		return func(c *regexlex.Cursor) rune { c.Reset(p); return c.Lookahead() }
	}

	input := []string{
		"aéb",
		"c",
		"\xffd",
		"x\x00y",
	}

	data := [][]struct {
		name       string
		fn         func(c *regexlex.Cursor) rune
		start, pos int
		end        int
		r          rune
	}{
		{
			{"a", look, 0, 0, 0, 'a'},
			{"é", adv, 0, 1, 0, 'é'},
			{"b", adv, 0, 3, 0, 'b'},
			{"mb", mark, 0, 3, 3, 'b'},
			{"eof", adv, 0, 4, 3, regexlex.EOF},
			{"eof2", adv, 0, 4, 3, regexlex.EOF},
			{"r1", reset(1), 1, 1, 1, 'é'},
			{"sk", skip, 3, 3, 3, 'b'},
			{"r-", reset(-4), 0, 0, 0, 'a'},
			{"r+", reset(42), 4, 4, 4, regexlex.EOF},
		},
		{
			{"c", look, 0, 0, 0, 'c'},
			{"m", mark, 0, 0, 0, 'c'},
			{"eof", adv, 0, 1, 0, regexlex.EOF},
		},
		{
			{"bad", look, 0, 0, 0, '�'},
			{"d", adv, 0, 1, 0, 'd'},
		},
		{
			{"x", look, 0, 0, 0, 'x'},
			{"nul", adv, 0, 1, 0, regexlex.EOF},
			{"y", adv, 0, 2, 0, 'y'},
		},
	}

	for i, in := range input {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := regexlex.NewCursor(regexlex.NewFile("", []byte(in)))
			for _, td := range data[i] {
				r := td.fn(c)
				if r != td.r {
					t.Errorf("%s: expected %q, got %q", td.name, td.r, r)
				}
				if c.Start() != regexlex.Pos(td.start) || c.Offset() != regexlex.Pos(td.pos) || c.End() != regexlex.Pos(td.end) {
					t.Errorf("%s: expected start/pos/end %d/%d/%d, got %d/%d/%d", td.name,
						td.start, td.pos, td.end, c.Start(), c.Offset(), c.End())
				}
				if t.Failed() {
					return
				}
			}
		})
	}
}

func TestCursor_Text(t *testing.T) {
	c := regexlex.NewCursor(regexlex.NewFile("", []byte(`ab\0c`)))
	c.Advance(true)
	c.Advance(false)
	c.Advance(false)
	c.MarkEnd()
	if s := c.Text(); s != `b\` {
		t.Errorf("expected %q, got %q", `b\`, s)
	}
	c.Reset(1)
	if s := c.Text(); s != "" {
		t.Errorf("expected empty token, got %q", s)
	}
}
