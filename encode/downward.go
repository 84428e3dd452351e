package encode

import (
	"github.com/coregx/vata/lts"
	"github.com/coregx/vata/ta"
)

// Downward translates a tree automaton into an LTS whose simulation,
// restricted to the original states, is the automaton's downward
// simulation (spec.md §4.5 "Downward encoding"):
//
//	f(q1)             -> q   becomes one edge        q --f--> q1
//	f(q1,...,qn), n>1 -> q   becomes a synthetic node t with
//	                          q --f--> t  and  t --slot_i--> qi
//	f()               -> q   (nullary) becomes        q --f--> leaf
//
// Slot labels (0..maxArity-1) live past the end of the symbol label space
// so they can never collide with a real symbol's label; a nullary
// transition reuses its own symbol's label, targeting a shared sink state
// with no outgoing edges (its own identity never needs to be told apart
// further — only whether q has an f-leaf at all). Finality is encoded via
// the reserved sentinel label one past the slot labels, per package doc.
type Downward struct {
	LTS      *lts.LTS
	SymLabel map[ta.Symbol]int
	maxArity int
	numSyms  int
	sentinel int
}

// BuildDownward builds the downward encoding of a.
func BuildDownward(a *ta.Automaton) *Downward {
	alphabet := a.Alphabet()
	symLabel := make(map[ta.Symbol]int, len(alphabet))
	maxArity := 0
	for i, s := range alphabet {
		symLabel[s] = i
		if s.Arity > maxArity {
			maxArity = s.Arity
		}
	}
	numSyms := len(alphabet)
	sentinel := numSyms + maxArity // one label per slot position, then the finality sentinel

	// Count synthetic tuple nodes up front: one per transition whose
	// symbol has arity > 1.
	numStates := a.States()
	extra := 0
	for q := 0; q < a.States(); q++ {
		a.Transitions(ta.StateID(q), func(sym ta.Symbol, _ ta.TupleID) {
			if sym.Arity > 1 {
				extra++
			}
		})
	}
	leaf := numStates + extra // shared sink for nullary ("leaf") transitions
	l := lts.New(leaf + 1)

	next := numStates
	for q := 0; q < numStates; q++ {
		a.Transitions(ta.StateID(q), func(sym ta.Symbol, tupleID ta.TupleID) {
			lab := symLabel[sym]
			children := a.Arena().Children(tupleID)
			switch {
			case sym.Arity == 0:
				// Nullary: no children to encode structurally, but the
				// edge's own label still distinguishes symbol b from
				// symbol c, which is all downward simulation asks of a
				// leaf (spec.md scenario S3).
				l.AddEdge(lab, q, leaf)
			case sym.Arity == 1:
				l.AddEdge(lab, q, int(children[0]))
			default:
				t := next
				next++
				l.AddEdge(lab, q, t)
				for i, c := range children {
					l.AddEdge(numSyms+i, t, int(c))
				}
			}
		})
	}

	finals := a.FinalStates()
	finalInts := make([]int, len(finals))
	for i, f := range finals {
		finalInts[i] = int(f)
	}
	addSentinel(l, sentinel, finalInts)
	l.Init()

	return &Downward{
		LTS:      l,
		SymLabel: symLabel,
		maxArity: maxArity,
		numSyms:  numSyms,
		sentinel: sentinel,
	}
}

// NumOriginalStates returns the number of TA states represented among the
// LTS's states (the synthetic tuple nodes and leaf sink come after).
func (d *Downward) NumOriginalStates(a *ta.Automaton) int { return a.States() }
