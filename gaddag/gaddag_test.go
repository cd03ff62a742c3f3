package gaddag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTest(t *testing.T, words ...string) *Gaddag {
	t.Helper()
	g, err := Build(words)
	require.NoError(t, err)
	return g
}

func TestIsWord_AcceptsDictionary(t *testing.T) {
	g := buildTest(t, "cat", "at", "a", "bead", "word", "ab", "ba")
	for _, w := range []string{"cat", "at", "bead", "word", "ab", "ba"} {
		require.Truef(t, g.IsWord(w), "expected %q to be a word", w)
	}
}

func TestIsWord_RejectsUnknown(t *testing.T) {
	g := buildTest(t, "cat", "at")
	for _, w := range []string{"dog", "ct", "cats", "ta"} {
		require.Falsef(t, g.IsWord(w), "expected %q to not be a word", w)
	}
}

func TestIsWord_SkipsSingleLetterWords(t *testing.T) {
	g := buildTest(t, "a", "cat")
	require.False(t, g.IsWord("a"))
	require.Equal(t, 1, g.WordCount())
}

func TestCrossSet_BothEmptyIsFullAlphabet(t *testing.T) {
	g := buildTest(t, "cat")
	require.Equal(t, FullAlphabet, g.CrossSet("", ""))
}

func TestCrossSet_IsSubsetAndFormsWords(t *testing.T) {
	g := buildTest(t, "cat", "cot", "cut", "bat", "bot", "but", "at")
	set := g.CrossSet("", "at")
	for _, c := range set.Letters() {
		word := string(c) + "at"
		require.Truef(t, g.IsWord(word), "cross set member %q should form a word", word)
	}
	// every letter that completes a word in our dictionary must be present
	require.True(t, set.Contains('c'))
	require.True(t, set.Contains('b'))
	require.False(t, set.Contains('z'))
}

func TestCrossSet_Suffix(t *testing.T) {
	g := buildTest(t, "cat", "cats")
	set := g.CrossSet("cat", "")
	require.True(t, set.Contains('s'))
	require.False(t, set.Contains('z'))
}

func TestCrossSet_Middle(t *testing.T) {
	g := buildTest(t, "bead", "brad", "bead")
	set := g.CrossSet("b", "ad")
	require.True(t, set.Contains('e'))
	require.True(t, set.Contains('r'))
}

func TestSharedSuffixSpine(t *testing.T) {
	// Words sharing a tail ("ead") each get their own pivoted paths stitched
	// in by force_arc; building them together must not hit a force_arc
	// contradiction, and every one of them must still be accepted.
	g := buildTest(t, "bead", "read", "dead")
	for _, w := range []string{"bead", "read", "dead"} {
		require.True(t, g.IsWord(w))
	}
}

func TestForceArcContradictionIsFatal(t *testing.T) {
	// Hand-construct a collision: add an arc labelled 'x' from the root
	// pointing at one node, then try to force a different target for the
	// same label at the same node.
	g := New(0)
	other := g.newNode()
	_, err := g.forceArc(g.root, 'x', other)
	require.NoError(t, err)
	third := g.newNode()
	_, err = g.forceArc(g.root, 'x', third)
	require.Error(t, err)
	var faErr *ForceArcError
	require.ErrorAs(t, err, &faErr)
	require.Equal(t, byte('x'), faErr.Letter)
}

func TestEmptyDictionary(t *testing.T) {
	g := buildTest(t)
	require.Equal(t, 0, g.WordCount())
	require.False(t, g.IsWord("cat"))
	require.Equal(t, FullAlphabet, g.CrossSet("", ""))
}
