package gaddag

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// NodeRef and ArcRef index into the Gaddag's node and arc arenas. The
// automaton is a DAG; arcs reference their target node by index rather
// than by pointer, so the whole structure is a pair of flat, GC-friendly
// slices instead of a web of heap pointers.
type NodeRef int32

// ArcRef indexes into Gaddag.arcs.
type ArcRef int32

type node struct {
	// edges maps an outgoing arc's letter label to its index in the arc
	// arena, giving O(1) average lookup by letter.
	edges map[byte]ArcRef
}

type arc struct {
	letter   byte
	target   NodeRef
	terminal LetterSet
}

// Gaddag is a read-only-after-construction GADDAG: a directed acyclic
// graph of Nodes connected by Arcs, each Arc carrying a letter label and a
// terminal letter set. It may be shared freely by concurrent solvers once
// built.
type Gaddag struct {
	nodes []node
	arcs  []arc
	root  NodeRef
	// initialArc is a pseudo-arc labelled '$' whose target is root. It
	// exists only so callers have a uniform ArcRef to start traversal
	// from, rather than special-casing the very first NextArc call.
	initialArc ArcRef
	words      int
	lexicon    string
}

// New creates an empty Gaddag. expectedWords, when > 0, is used as a
// sizing hint for the node/arc arenas; it need not be exact.
func New(expectedWords int) *Gaddag {
	g := &Gaddag{}
	cap := 64
	if expectedWords > 0 {
		cap = expectedWords * 4
		avail := memory.FreeMemory()
		// Each node/arc pair is a handful of machine words; don't try to
		// preallocate more than a small slice of free RAM no matter how
		// large the caller's estimate is.
		if avail > 0 {
			ceiling := int(avail / 256)
			if ceiling > 0 && cap > ceiling {
				log.Debug().Int("requested", cap).Int("ceiling", ceiling).
					Msg("gaddag: clamping arena preallocation to available memory")
				cap = ceiling
			}
		}
	}
	g.nodes = make([]node, 0, cap)
	g.arcs = make([]arc, 0, cap)
	g.root = g.newNode()
	g.arcs = append(g.arcs, arc{letter: Pivot, target: g.root})
	g.initialArc = ArcRef(len(g.arcs) - 1)
	return g
}

func (g *Gaddag) newNode() NodeRef {
	g.nodes = append(g.nodes, node{edges: make(map[byte]ArcRef)})
	return NodeRef(len(g.nodes) - 1)
}

// InitialArc returns the ArcRef every traversal begins from.
func (g *Gaddag) InitialArc() ArcRef {
	return g.initialArc
}

// WordCount returns the number of words successfully added.
func (g *Gaddag) WordCount() int {
	return g.words
}

// LexiconName returns the name last set with SetLexiconName, or "".
func (g *Gaddag) LexiconName() string {
	return g.lexicon
}

// SetLexiconName records a human-readable name for the loaded word list,
// returned by LexiconName. Neither the build logs nor Dump include it.
func (g *Gaddag) SetLexiconName(name string) {
	g.lexicon = name
}

// addArc adds an arc labelled ch at node n if one does not already exist,
// and returns the node it leads to (existing or freshly created).
func (g *Gaddag) addArc(n NodeRef, ch byte) NodeRef {
	if existing, ok := g.nodes[n].edges[ch]; ok {
		return g.arcs[existing].target
	}
	target := g.newNode()
	g.arcs = append(g.arcs, arc{letter: ch, target: target})
	g.nodes[n].edges[ch] = ArcRef(len(g.arcs) - 1)
	return target
}

// addFinalArc adds an arc labelled c1 at node n (creating it if needed) and
// adds c2 to that arc's terminal letter set, returning the node the arc
// leads to.
func (g *Gaddag) addFinalArc(n NodeRef, c1, c2 byte) NodeRef {
	target := g.addArc(n, c1)
	arcIdx := g.nodes[n].edges[c1]
	g.arcs[arcIdx].terminal = g.arcs[arcIdx].terminal.Add(c2)
	return target
}

// forceArc implements the force_arc rule: it adds an arc labelled ch from
// n to target, unless an arc labelled ch already exists at n, in which
// case that arc's target must equal target. Returns the arc so the caller
// can further extend its terminal set.
func (g *Gaddag) forceArc(n NodeRef, ch byte, target NodeRef) (ArcRef, error) {
	if existing, ok := g.nodes[n].edges[ch]; ok {
		if g.arcs[existing].target != target {
			return 0, &ForceArcError{Letter: ch, ExistingTarget: g.arcs[existing].target, RequestedTarget: target}
		}
		return existing, nil
	}
	g.arcs = append(g.arcs, arc{letter: ch, target: target})
	arcIdx := ArcRef(len(g.arcs) - 1)
	g.nodes[n].edges[ch] = arcIdx
	return arcIdx, nil
}

// walk adds (or reuses) a chain of arcs spelling the given bytes in order,
// starting from n, and returns the node reached at the end of the chain.
func (g *Gaddag) walk(n NodeRef, letters []byte) NodeRef {
	for _, c := range letters {
		n = g.addArc(n, c)
	}
	return n
}

// AddWord inserts word (already validated: lowercase, length >= 2, a-z
// only) into the automaton following the standard three-phase GADDAG
// construction. Arc targets are shared (never cloned); the force_arc rule
// collapses redundant subtrees into the shared DAG.
func (g *Gaddag) AddWord(word string) error {
	w := []byte(word)
	n := len(w)
	if n < 2 {
		return nil
	}

	// Phase A: spell w[n-1], w[n-2], ..., w[2] from the root, then add a
	// final arc labelled w[1] whose terminal set contains w[0]. This is
	// the compact two-letter shortcut for the k = n-1 split.
	cur := g.root
	for i := n - 1; i >= 2; i-- {
		cur = g.addArc(cur, w[i])
	}
	g.addFinalArc(cur, w[1], w[0])

	// Phase B: spell w[n-2], ..., w[0] from the root, then add a final arc
	// labelled '$' whose terminal set contains w[n-1]. The node this '$'
	// arc leads to is the suffix spine every pivoted path in Phase C
	// shares into.
	cur = g.root
	for i := n - 2; i >= 0; i-- {
		cur = g.addArc(cur, w[i])
	}
	finalState := g.addFinalArc(cur, Pivot, w[n-1])

	// Phase C: for each interior split m = n-2 downto 1, spell
	// w[m-1], ..., w[0] from the root, add a '$' arc, then force an arc
	// labelled w[m] into the node built by the previous (longer) pivot --
	// finalState on the very first iteration, since that is "the node
	// reached at the end of Phase B". This stitches every pivoted
	// traversal into one shared downstream spine instead of duplicating
	// it, which is what collapses the GADDAG into a DAG.
	forceTarget := finalState
	for m := n - 2; m >= 1; m-- {
		cur = g.root
		for i := m - 1; i >= 0; i-- {
			cur = g.addArc(cur, w[i])
		}
		cur = g.addArc(cur, Pivot)
		arcIdx, err := g.forceArc(cur, w[m], forceTarget)
		if err != nil {
			return err
		}
		if forceTarget == finalState {
			g.arcs[arcIdx].terminal = g.arcs[arcIdx].terminal.Add(w[n-1])
		}
		forceTarget = cur
	}

	g.words++
	return nil
}
