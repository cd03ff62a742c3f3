package board

import "sort"

// Rack is a player's tiles: a multiset of lowercase letters plus the
// blank marker '*'. Each recursive branch of the move generator owns its
// own Rack value; Remove never mutates its receiver, so a caller can hold
// onto an earlier Rack while a deeper branch explores a tile removed from
// it.
type Rack []byte

// NewRack builds a Rack from a raw string such as "abc*", the board
// file's first line.
func NewRack(s string) Rack {
	return Rack(append([]byte(nil), s...))
}

// Len returns the number of tiles remaining.
func (r Rack) Len() int { return len(r) }

// At returns the tile at index i.
func (r Rack) At(i int) byte { return r[i] }

// Remove returns a new Rack with the tile at index i removed, and that
// tile's letter.
func (r Rack) Remove(i int) (Rack, byte) {
	out := make(Rack, 0, len(r)-1)
	out = append(out, r[:i]...)
	out = append(out, r[i+1:]...)
	return out, r[i]
}

// Contains reports whether c is present at least once.
func (r Rack) Contains(c byte) bool {
	for _, x := range r {
		if x == c {
			return true
		}
	}
	return false
}

// Played returns the multiset difference original \ remaining, i.e. the
// tiles consumed to make a play, serialized with blanks preserved as '*'.
func Played(original, remaining Rack) string {
	left := append(Rack(nil), original...)
	for _, c := range remaining {
		for i, x := range left {
			if x == c {
				left, _ = left.Remove(i)
				break
			}
		}
	}
	sort.Slice(left, func(i, j int) bool { return left[i] < left[j] })
	return string(left)
}
