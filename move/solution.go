// Package move defines the Solution the generator emits: a scored,
// de-duplicated placement. Equality is by (start, word) alone, so the
// same placement reached by two different GADDAG traversals collapses to
// a single result.
package move

import (
	"fmt"

	"github.com/laeos/wwfsolve/board"
)

// Solution is one legal play the generator found.
type Solution struct {
	Start  board.Anchor
	Word   string
	Score  int
	Played string
}

// Key identifies a Solution for de-duplication purposes: same start and
// same word collapse to one entry even if reached via different paths.
type Key struct {
	Row, Col int
	Vertical bool
	Word     string
}

// Key returns s's de-duplication key.
func (s Solution) Key() Key {
	return Key{Row: s.Start.Row, Col: s.Start.Col, Vertical: s.Start.Vertical, Word: s.Word}
}

// String renders the CLI play header: <PLAY: @row,col {h|v} word score>.
func (s Solution) String() string {
	return fmt.Sprintf("<PLAY: @%d,%d %s %s %d>", s.Start.Row, s.Start.Col, s.Start.Direction(), s.Word, s.Score)
}
