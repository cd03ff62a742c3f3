package gaddag

import (
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

// randomWord returns a random lowercase word of length n, using frand
// rather than math/rand so the batch isn't a seedable, reproducible
// sequence that could hide an order-dependent force_arc bug.
func randomWord(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(frand.Intn(26))
	}
	return string(b)
}

// TestAddWord_AcceptsArbitraryRandomWords builds a GADDAG out of a batch of
// random words and checks every one of them round-trips through IsWord,
// regardless of how the force_arc sharing happens to collide across them.
func TestAddWord_AcceptsArbitraryRandomWords(t *testing.T) {
	is := is.New(t)

	seen := make(map[string]bool)
	var words []string
	for len(words) < 200 {
		w := randomWord(2 + frand.Intn(6))
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	g, err := Build(words)
	is.NoErr(err)
	is.Equal(g.WordCount(), len(words))

	for _, w := range words {
		is.True(g.IsWord(w))
	}
}
