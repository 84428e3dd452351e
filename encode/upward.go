package encode

import (
	"fmt"

	"github.com/coregx/vata/lts"
	"github.com/coregx/vata/relation"
	"github.com/coregx/vata/ta"
)

// Upward translates a tree automaton into an LTS whose simulation,
// restricted to the original states, refines a given downward simulation
// into the automaton's upward simulation (spec.md §4.5 "Upward
// encoding").
//
// For every transition f(q1,...,qn) -> q and position i, an "environment"
// synthetic state represents the context (f, i, the other children, q).
// Per spec.md, environments are quotiented by the current downward
// simulation so that downward-equivalent contexts collapse: the other
// children are hashed by their downward-simulation block, not by raw
// state ID, before looking up (or allocating) the environment's synthetic
// state. Two edges then complete the encoding:
//
//	qi --envLabel(f,i)--> env         (a child enters its environment)
//	env --close--> q                  (the environment closes into the parent)
//
// so that (q_i, r_i) end up related exactly when every environment q_i
// sits in has a matching one for r_i closing into a downward-compatible
// parent — which is the defining fixpoint of upward simulation relative
// to the supplied downward preorder.
type Upward struct {
	LTS *lts.LTS
}

const closeLabel = 0

// BuildUpward builds the upward encoding of a, given the downward
// simulation dsim already computed over a's states (see package
// simulation; dsim must be indexed over a.States() original TA states).
func BuildUpward(a *ta.Automaton, dsim *relation.BinaryRelation) *Upward {
	n := a.States()
	dblock := dsim.BuildClasses(n)

	type envKey struct {
		sym    ta.Symbol
		pos    int
		others string
		parent ta.StateID
	}
	envOf := make(map[envKey]int)
	nextState := n

	posLabel := make(map[ta.Symbol]map[int]int)
	nextLabel := 1 // 0 is reserved for closeLabel

	labelFor := func(sym ta.Symbol, pos int) int {
		if posLabel[sym] == nil {
			posLabel[sym] = make(map[int]int)
		}
		if lab, ok := posLabel[sym][pos]; ok {
			return lab
		}
		lab := nextLabel
		nextLabel++
		posLabel[sym][pos] = lab
		return lab
	}

	// Pre-size the LTS: at most one environment per (transition, position).
	maxEnvs := 0
	for q := ta.StateID(0); int(q) < n; q++ {
		a.Transitions(q, func(sym ta.Symbol, _ ta.TupleID) {
			maxEnvs += sym.Arity
		})
	}
	l := lts.New(n + maxEnvs)

	for parent := ta.StateID(0); int(parent) < n; parent++ {
		a.Transitions(parent, func(sym ta.Symbol, tupleID ta.TupleID) {
			children := a.Arena().Children(tupleID)
			for pos, qi := range children {
				others := ""
				for j, c := range children {
					if j == pos {
						continue
					}
					others += fmt.Sprintf("%d,%d;", j, dblock[c])
				}
				key := envKey{sym: sym, pos: pos, others: others, parent: parent}
				env, ok := envOf[key]
				if !ok {
					env = nextState
					nextState++
					envOf[key] = env
					l.AddEdge(closeLabel, env, int(parent))
				}
				l.AddEdge(labelFor(sym, pos), int(qi), env)
			}
		})
	}

	final := a.FinalStates()
	finalInts := make([]int, len(final))
	for i, f := range final {
		finalInts[i] = int(f)
	}
	addSentinel(l, nextLabel, finalInts)

	l.Init()
	return &Upward{LTS: l}
}
