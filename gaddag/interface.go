package gaddag

// WordGraph is the read-only view of a lexicon automaton the solver
// package depends on. *Gaddag satisfies it; any other implementation can
// be passed to the solver in its place.
type WordGraph interface {
	InitialArc() ArcRef
	NextArc(a ArcRef, letter byte) (ArcRef, bool)
	HasLetter(a ArcRef, letter byte) bool
	TerminalSet(a ArcRef) LetterSet
	CrossSet(left, right string) LetterSet
	IsWord(w string) bool
	LexiconName() string
}
