package solver

import "github.com/laeos/wwfsolve/board"

// Anchors returns every empty square adjacent (orthogonally) to a played
// tile, once per orientation, matching the reference solver's get_anchors.
// On a board with no played tiles at all there is nothing to anchor from,
// so the center square is seeded in both orientations instead -- this is
// the documented resolution of the empty-board Open Question.
func Anchors(b *board.Board) []board.Anchor {
	occupied := func() bool {
		for row := 0; row < b.Rows(); row++ {
			for col := 0; col < b.Cols(); col++ {
				if _, ok := b.GetLetter(row, col); ok {
					return true
				}
			}
		}
		return false
	}()
	if !occupied {
		cr, cc := b.Rows()/2, b.Cols()/2
		return []board.Anchor{
			{Row: cr, Col: cc, Vertical: false},
			{Row: cr, Col: cc, Vertical: true},
		}
	}

	hasLetter := func(row, col int) bool {
		if !b.InBounds(row, col) {
			return false
		}
		_, ok := b.GetLetter(row, col)
		return ok
	}

	var anchors []board.Anchor
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if _, ok := b.GetLetter(row, col); ok {
				continue
			}
			if hasLetter(row, col+1) || hasLetter(row, col-1) || hasLetter(row+1, col) || hasLetter(row-1, col) {
				anchors = append(anchors, board.Anchor{Row: row, Col: col, Vertical: false})
				anchors = append(anchors, board.Anchor{Row: row, Col: col, Vertical: true})
			}
		}
	}
	return anchors
}
