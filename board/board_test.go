package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyRows(n int) []string {
	row := ""
	for i := 0; i < n; i++ {
		row += string(rune(EmptyCell))
	}
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

func TestStandardLayoutIsSymmetric(t *testing.T) {
	n := len(StandardBoard)
	for r := 0; r < n; r++ {
		require.Len(t, StandardBoard[r], n)
		for c := 0; c < n; c++ {
			require.Equal(t, StandardBoard[r][c], StandardBoard[c][r], "layout should be symmetric at (%d,%d)", r, c)
			require.Equal(t, StandardBoard[r][c], StandardBoard[n-1-r][n-1-c], "layout should be 180-rotation symmetric at (%d,%d)", r, c)
		}
	}
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"---", "----"}, []string{"---", "----"})
	require.Error(t, err)
}

func TestNewRejectsUnknownCharacter(t *testing.T) {
	_, err := New([]string{"-?-"}, []string{"---"})
	require.Error(t, err)
}

func TestGetLetter(t *testing.T) {
	rows := emptyRows(3)
	rowBytes := []byte(rows[1])
	rowBytes[1] = 'a'
	rows[1] = string(rowBytes)
	b, err := New(rows, emptyRows(3))
	require.NoError(t, err)
	l, ok := b.GetLetter(1, 1)
	require.True(t, ok)
	require.Equal(t, byte('a'), l)
	_, ok = b.GetLetter(0, 0)
	require.False(t, ok)
}

func TestPatchUppercasesOnlyNewTiles(t *testing.T) {
	rows := emptyRows(5)
	rowBytes := []byte(rows[2])
	rowBytes[1] = 'a'
	rows[2] = string(rowBytes)
	b, err := New(rows, emptyRows(5))
	require.NoError(t, err)

	patched := b.Patch(2, 0, false, "cat")
	l, ok := patched.GetLetter(2, 0)
	require.True(t, ok)
	require.Equal(t, byte('C'), l)
	l, ok = patched.GetLetter(2, 1)
	require.True(t, ok)
	require.Equal(t, byte('a'), l, "already-played letter keeps its case")
	l, ok = patched.GetLetter(2, 2)
	require.True(t, ok)
	require.Equal(t, byte('T'), l)

	// original board must be untouched
	_, ok = b.GetLetter(2, 0)
	require.False(t, ok)
}

func TestLetterPointsTable(t *testing.T) {
	require.Equal(t, 0, LetterPoints('*'))
	require.Equal(t, 1, LetterPoints('a'))
	require.Equal(t, 10, LetterPoints('z'))
	require.Equal(t, 10, LetterPoints('q'))
	require.Equal(t, 8, LetterPoints('x'))
}

func TestRackRemoveDoesNotMutateOriginal(t *testing.T) {
	r := NewRack("cat")
	r2, removed := r.Remove(1)
	require.Equal(t, byte('a'), removed)
	require.Equal(t, "ct", string(r2))
	require.Equal(t, "cat", string(r), "Remove must not mutate the receiver")
}

func TestPlayedIsMultisetDifference(t *testing.T) {
	original := NewRack("aabdc")
	remaining := NewRack("ac")
	require.Equal(t, "abd", Played(original, remaining))
}

func TestAnchorAddAndDirection(t *testing.T) {
	h := Anchor{Row: 7, Col: 7, Vertical: false}
	require.Equal(t, "h", h.Direction())
	require.Equal(t, Anchor{Row: 7, Col: 9, Vertical: false}, h.Add(2))

	v := Anchor{Row: 7, Col: 7, Vertical: true}
	require.Equal(t, "v", v.Direction())
	require.Equal(t, Anchor{Row: 5, Col: 7, Vertical: true}, v.Add(-2))
}
