package diag_test

import (
	"bytes"
	"testing"

	"github.com/wizard04wsu/regexlex"
	"github.com/wizard04wsu/regexlex/diag"
)

func TestWidth(t *testing.T) {
	td := []struct {
		in string
		w  int
	}{
		{"", 0},
		{"abc", 3},
		{"a\tb\r", 2},
		{"é", 1},
		{"世界", 4},
		{"Ａｱ", 3}, // fullwidth A, halfwidth katakana
		{"\xff", 1},
		{"\u200b", 0}, // zero width space, format character
	}
	for _, d := range td {
		if w := diag.Width([]byte(d.in)); w != d.w {
			t.Errorf("Width(%q) = %d, expected %d", d.in, w, d.w)
		}
	}
}

func TestCaret(t *testing.T) {
	f := regexlex.NewFile("test", []byte("\\p{世}"))
	var b bytes.Buffer
	if err := diag.Caret(&b, f, 3); err != nil {
		t.Fatal(err)
	}
	if exp := "|\\p{世}\n|   ^\n"; b.String() != exp {
		t.Errorf("got %q, expected %q", b.String(), exp)
	}
}
