package regexlex

import (
	"math/rand"
	"testing"
)

func BenchmarkCursor(b *testing.B) {
	src := make([]byte, 4<<10)
	for i := range src {
		src[i] = 'a'
	}
	c := NewCursor(NewFile("", src))

	rand.Seed(123456)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		switch rand.Intn(8) {
		case 0:
			c.Reset(Pos(rand.Intn(len(src))))
		case 1:
			c.MarkEnd()
		default:
			c.Advance(false)
			_ = c.Lookahead()
		}
	}
}
