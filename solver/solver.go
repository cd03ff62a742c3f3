// Package solver implements the anchored, bidirectional GADDAG move
// generator: for every anchor square it walks gen/goon outward in both
// directions, scoring each legal placement it finds and recording one
// Solution per distinct (start, word) pair.
package solver

import (
	"sort"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/move"
	"github.com/laeos/wwfsolve/variant"
)

// Solver walks a fixed Board and WordGraph for a single Rack, accumulating
// legal plays. A Solver is not safe for concurrent reuse across anchors;
// SolveConcurrent gives each anchor its own Solver internally.
type Solver struct {
	board   *board.Board
	graph   gaddag.WordGraph
	rack    board.Rack
	variant variant.Variant
	anchor  board.Anchor
	plays   map[move.Key]move.Solution
}

// New builds a Solver over b using graph as the dictionary automaton and
// rack as the tiles available to play, scoring under v's rules.
func New(b *board.Board, graph gaddag.WordGraph, rack board.Rack, v variant.Variant) *Solver {
	return &Solver{board: b, graph: graph, rack: rack, variant: v}
}

// Solve runs the generator over every anchor and returns every distinct
// legal play found, ascending by score.
func (s *Solver) Solve() []move.Solution {
	s.plays = make(map[move.Key]move.Solution)
	for _, a := range Anchors(s.board) {
		s.anchor = a
		s.gen(0, "", s.rack, []int{0}, nil, s.graph.InitialArc())
	}
	return s.sortedPlays()
}

func (s *Solver) sortedPlays() []move.Solution {
	out := make([]move.Solution, 0, len(s.plays))
	for _, p := range s.plays {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

func (s *Solver) absPosition(a board.Anchor, pos int) (board.Anchor, bool) {
	n := a.Add(pos)
	if s.board.InBounds(n.Row, n.Col) {
		return n, true
	}
	return board.Anchor{}, false
}

func (s *Solver) getSquareLetter(pos int) (byte, bool) {
	n, ok := s.absPosition(s.anchor, pos)
	if !ok {
		return 0, false
	}
	return s.board.GetLetter(n.Row, n.Col)
}

func (s *Solver) getLetterMultiplier(pos int) int {
	n, _ := s.absPosition(s.anchor, pos)
	return s.board.LetterMultiplier(n.Row, n.Col)
}

func (s *Solver) getWordMultiplier(pos int) int {
	n, _ := s.absPosition(s.anchor, pos)
	return s.board.WordMultiplier(n.Row, n.Col)
}

// isEmptyAt reports whether anchor+pos is a valid, unoccupied square.
func (s *Solver) isEmptyAt(pos int) bool {
	n, ok := s.absPosition(s.anchor, pos)
	if !ok {
		return false
	}
	_, has := s.board.GetLetter(n.Row, n.Col)
	return !has
}

// doesTerminate reports whether anchor+pos is off the board or empty --
// either way, a word passing through cannot continue past it.
func (s *Solver) doesTerminate(pos int) bool {
	n, ok := s.absPosition(s.anchor, pos)
	if !ok {
		return true
	}
	_, has := s.board.GetLetter(n.Row, n.Col)
	return !has
}

// canIGo reports whether anchor+pos is a valid board address.
func (s *Solver) canIGo(pos int) bool {
	_, ok := s.absPosition(s.anchor, pos)
	return ok
}

// slurpDirection walks outward from start along direction (+1 or -1),
// one square per recursive step, accumulating the played letters already
// on the board into acc and their raw point value into score. It stops at
// the first empty square or the board edge.
func (s *Solver) slurpDirection(start board.Anchor, pos, direction int, acc string, score int) (int, string) {
	pos += direction
	n, ok := s.absPosition(start, pos)
	if !ok {
		return score, acc
	}
	l, has := s.board.GetLetter(n.Row, n.Col)
	if !has {
		return score, acc
	}
	if direction > 0 {
		acc += string(l)
	} else {
		acc = string(l) + acc
	}
	score += board.LetterPoints(l)
	return s.slurpDirection(start, pos, direction, acc, score)
}

// getSquareCrossSet returns the already-played score contributed by the
// perpendicular neighbours of anchor+pos, plus the set of letters legal to
// drop there given those neighbours.
func (s *Solver) getSquareCrossSet(pos int) (int, gaddag.LetterSet) {
	start, _ := s.absPosition(s.anchor, pos)
	start.Vertical = !start.Vertical

	leftScore, left := s.slurpDirection(start, 0, -1, "", 0)
	rightScore, right := s.slurpDirection(start, 0, 1, "", 0)
	return leftScore + rightScore, s.graph.CrossSet(left, right)
}

// calculateScore folds the per-position word multipliers into score[0]
// (the raw, letter-multiplier-adjusted sum along the main word) and adds
// every already-multiplied cross-word contribution in score[1:], plus the
// 35-point bonus for using the whole rack.
func (s *Solver) calculateScore(remainingRack board.Rack, score []int, multipliers []int) int {
	calculated := 0
	my := append([]int(nil), score...)
	if remainingRack.Len() == 0 {
		calculated += s.variant.BingoBonus()
	}
	sorted := append([]int(nil), multipliers...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, m := range sorted {
		my[0] *= m
	}
	for _, v := range my {
		calculated += v
	}
	return calculated
}

// wordStart returns the board address of the first letter of word, given
// pos is the offset of the most recently placed letter relative to the
// anchor.
func (s *Solver) wordStart(pos int, word string) board.Anchor {
	if pos > 0 {
		return s.anchor.Add(pos - len(word) + 1)
	}
	return s.anchor.Add(pos)
}

func (s *Solver) recordPlay(pos int, word string, remainingRack board.Rack, score []int, multipliers []int) {
	sc := s.calculateScore(remainingRack, score, multipliers)
	start := s.wordStart(pos, word)
	played := board.Played(s.rack, remainingRack)
	sol := move.Solution{Start: start, Word: word, Score: sc, Played: played}
	s.plays[sol.Key()] = sol
}

// gen considers position pos relative to the current anchor: if it is
// already occupied it descends straight through via goon; otherwise it
// tries every rack tile (and every cross-set letter for a blank) that is
// legal to drop there.
func (s *Solver) gen(pos int, word string, rack board.Rack, score []int, multipliers []int, arc gaddag.ArcRef) {
	if l, has := s.getSquareLetter(pos); has {
		ns := append([]int(nil), score...)
		ns[0] += board.LetterPoints(l)
		next, ok := s.graph.NextArc(arc, l)
		s.goon(pos, l, word, rack, ns, multipliers, next, ok, arc)
		return
	}
	if rack.Len() == 0 {
		return
	}

	partial, crossSet := s.getSquareCrossSet(pos)
	tried := make(map[byte]bool)
	letterMult := s.getLetterMultiplier(pos)
	wordMult := s.getWordMultiplier(pos)

	for i := 0; i < rack.Len(); i++ {
		newRack, tile := rack.Remove(i)

		letterScore := board.LetterPoints(tile) * letterMult
		ns := append([]int(nil), score...)
		ns[0] += letterScore
		nm := append(append([]int(nil), multipliers...), wordMult)
		if partial > 0 {
			ns = append(ns, wordMult*(partial+letterScore))
		}

		if tile == gaddag.Blank {
			for _, c := range crossSet.Letters() {
				if tried[c] {
					continue
				}
				next, ok := s.graph.NextArc(arc, c)
				s.goon(pos, c, word, newRack, ns, nm, next, ok, arc)
				tried[c] = true
			}
			continue
		}
		if crossSet.Contains(tile) && !tried[tile] {
			next, ok := s.graph.NextArc(arc, tile)
			s.goon(pos, tile, word, newRack, ns, nm, next, ok, arc)
			tried[tile] = true
		}
	}
}

// goon extends the traversal one square past a letter just placed or
// already on the board, recording a play whenever the word so far both
// terminates here and is accepted by the automaton.
func (s *Solver) goon(pos int, l byte, word string, rack board.Rack, score []int, multipliers []int, newArc gaddag.ArcRef, newArcOK bool, oldArc gaddag.ArcRef) {
	if pos <= 0 {
		word = string(l) + word
		if s.graph.HasLetter(oldArc, l) && s.doesTerminate(pos-1) && s.isEmptyAt(1) {
			s.recordPlay(pos, word, rack, score, multipliers)
		}
		if newArcOK {
			if s.canIGo(pos - 1) {
				s.gen(pos-1, word, rack, score, multipliers, newArc)
			}
			pivotArc, ok := s.graph.NextArc(newArc, gaddag.Pivot)
			if ok && s.doesTerminate(pos-1) && s.canIGo(1) {
				s.gen(1, word, rack, score, multipliers, pivotArc)
			}
		}
		return
	}
	word = word + string(l)
	if s.graph.HasLetter(oldArc, l) && s.doesTerminate(pos+1) {
		s.recordPlay(pos, word, rack, score, multipliers)
	}
	if newArcOK && s.canIGo(pos+1) {
		s.gen(pos+1, word, rack, score, multipliers, newArc)
	}
}
