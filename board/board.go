// Package board implements the immutable board model: the played-tile
// grid, the fixed premultiplier layout, the WWF point table, and the
// rack. None of it is mutated once a Board is built; the solver package
// owns a separate per-branch Rack copy for each recursive descent.
package board

import "fmt"

// EmptyCell is the played-tile grid's empty marker, matching the board
// file format's own convention so file parsing needs no translation step.
const EmptyCell = '-'

// letterPoints is the WWF point table.
var letterPoints = map[byte]int{
	'*': 0,
	's': 1, 'r': 1, 't': 1, 'i': 1, 'o': 1, 'a': 1, 'e': 1,
	'l': 2, 'u': 2, 'd': 2, 'n': 2,
	'y': 3, 'g': 3, 'h': 3,
	'b': 4, 'c': 4, 'f': 4, 'm': 4, 'p': 4, 'w': 4,
	'k': 5, 'v': 5,
	'x': 8,
	'j': 10, 'q': 10, 'z': 10,
}

// LetterPoints returns the face value of a single letter tile. A blank
// always scores 0.
func LetterPoints(l byte) int {
	return letterPoints[l]
}

// Board is a rectangular grid of played letters plus the fixed
// premultiplier layout it sits on.
type Board struct {
	grid   []string
	layout []string
}

// New builds a Board from equal-width rows (each byte either a lowercase
// letter or EmptyCell) and the given premultiplier layout, which must have
// the same shape. Use StandardBoard for the default WWF layout.
func New(rows []string, layout []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("board: no rows")
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("board: ragged row %d (want width %d, got %d)", i, width, len(r))
		}
		for j := 0; j < len(r); j++ {
			c := r[j]
			if c != EmptyCell && !(c >= 'a' && c <= 'z') {
				return nil, fmt.Errorf("board: unknown character %q at row %d col %d", c, i, j)
			}
		}
	}
	if len(layout) != len(rows) {
		return nil, fmt.Errorf("board: premultiplier layout has %d rows, board has %d", len(layout), len(rows))
	}
	for i, r := range layout {
		if len(r) != width {
			return nil, fmt.Errorf("board: premultiplier layout row %d has width %d, want %d", i, len(r), width)
		}
	}
	return &Board{grid: append([]string(nil), rows...), layout: append([]string(nil), layout...)}, nil
}

// Rows returns the number of rows on the board.
func (b *Board) Rows() int { return len(b.grid) }

// Cols returns the number of columns on the board.
func (b *Board) Cols() int { return len(b.grid[0]) }

// InBounds reports whether (row, col) is a valid board address.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Rows() && col < b.Cols()
}

// GetLetter returns the letter played at (row, col) and true, or (0,
// false) if the square is empty.
func (b *Board) GetLetter(row, col int) (byte, bool) {
	c := b.grid[row][col]
	if c == EmptyCell {
		return 0, false
	}
	return c, true
}

// WordMultiplier returns the word multiplier (1, 2, or 3) of the
// premultiplier at (row, col).
func (b *Board) WordMultiplier(row, col int) int {
	switch b.layout[row][col] {
	case 'd':
		return 2
	case 't':
		return 3
	default:
		return 1
	}
}

// LetterMultiplier returns the letter multiplier (1, 2, or 3) of the
// premultiplier at (row, col).
func (b *Board) LetterMultiplier(row, col int) int {
	switch b.layout[row][col] {
	case 'D':
		return 2
	case 'T':
		return 3
	default:
		return 1
	}
}

// Patch returns a copy of the board with word written starting at
// (row, col) and advancing along the given orientation, uppercasing only
// the squares that were previously empty -- used by the pretty-print
// overlay, never by the solver itself.
func (b *Board) Patch(row, col int, vertical bool, word string) *Board {
	grid := append([]string(nil), b.grid...)
	rowBytes := make(map[int][]byte)
	get := func(r int) []byte {
		if rowBytes[r] == nil {
			rowBytes[r] = []byte(grid[r])
		}
		return rowBytes[r]
	}
	r, c := row, col
	for i := 0; i < len(word); i++ {
		bytes := get(r)
		if bytes[c] == EmptyCell {
			bytes[c] = word[i] - 'a' + 'A'
		}
		if vertical {
			r++
		} else {
			c++
		}
	}
	for r, bytes := range rowBytes {
		grid[r] = string(bytes)
	}
	return &Board{grid: grid, layout: b.layout}
}

// PrettyPrint renders the board as a space-separated grid of characters,
// one row per line.
func (b *Board) PrettyPrint() string {
	out := ""
	for _, row := range b.grid {
		for _, c := range row {
			out += string(c) + " "
		}
		out += "\n"
	}
	return out
}

// PrettyPrintWord overlays word at (row, col) along the given orientation
// and renders the resulting board; it never mutates b.
func (b *Board) PrettyPrintWord(row, col int, vertical bool, word string) string {
	return b.Patch(row, col, vertical, word).PrettyPrint()
}
