package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/move"
	"github.com/laeos/wwfsolve/variant"
)

func emptyBoard(t *testing.T) *board.Board {
	t.Helper()
	row := strings.Repeat(string(board.EmptyCell), len(board.StandardBoard))
	rows := make([]string, len(board.StandardBoard))
	for i := range rows {
		rows[i] = row
	}
	b, err := board.New(rows, board.StandardBoard)
	require.NoError(t, err)
	return b
}

func TestSolve_EmptyBoardFindsBingo(t *testing.T) {
	g, err := gaddag.Build([]string{"cat", "at"})
	require.NoError(t, err)

	s := New(emptyBoard(t), g, board.NewRack("cat"), variant.WWF)
	plays := s.Solve()
	require.NotEmpty(t, plays)

	var found bool
	for _, p := range plays {
		if p.Word == "cat" {
			found = true
			require.Equal(t, 41, p.Score, "cat uses the whole rack on an unmultiplied center square: 6 + 35 bingo bonus")
			require.Equal(t, "act", p.Played, "played tiles are the multiset difference, sorted")
		}
	}
	require.True(t, found, "expected a 'cat' play among %v", plays)
}

func TestSolve_NoDuplicatePlaysAcrossOrientations(t *testing.T) {
	g, err := gaddag.Build([]string{"cat", "at"})
	require.NoError(t, err)

	s := New(emptyBoard(t), g, board.NewRack("cat"), variant.WWF)
	plays := s.Solve()

	seen := make(map[move.Key]bool)
	for _, p := range plays {
		k := p.Key()
		require.False(t, seen[k], "duplicate play %v", p)
		seen[k] = true
	}
}

func TestSolve_RejectsWordsNotInDictionary(t *testing.T) {
	g, err := gaddag.Build([]string{"at"})
	require.NoError(t, err)

	s := New(emptyBoard(t), g, board.NewRack("cat"), variant.WWF)
	plays := s.Solve()
	for _, p := range plays {
		require.NotEqual(t, "cat", p.Word)
	}
}

func TestSolve_CrossWordExtendsExistingTile(t *testing.T) {
	g, err := gaddag.Build([]string{"cat", "at", "car", "ar"})
	require.NoError(t, err)

	rows := make([]string, len(board.StandardBoard))
	row := strings.Repeat(string(board.EmptyCell), len(board.StandardBoard))
	for i := range rows {
		rows[i] = row
	}
	center := len(board.StandardBoard) / 2
	rowBytes := []byte(rows[center])
	rowBytes[center] = 'a'
	rows[center] = string(rowBytes)
	b, err := board.New(rows, board.StandardBoard)
	require.NoError(t, err)

	s := New(b, g, board.NewRack("ctr"), variant.WWF)
	plays := s.Solve()
	require.NotEmpty(t, plays)
}
