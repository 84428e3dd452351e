package incl

import "github.com/coregx/vata/ta"

// Witness is the optional, lossy counterexample returned alongside a
// failed tree-automaton inclusion check: a subautomaton of the smaller
// automaton with a single accepting derivation rooted at the state whose
// check failed (spec.md §4.9, §7). Construction is heuristic: each state
// is rebuilt from the first transition recorded for it during the search,
// which is not necessarily the derivation that failed, so the witness's
// term is not guaranteed to lie outside L(big), nor to be the smallest
// counterexample.
type Witness struct {
	Automaton *ta.Automaton
}

// derivation records, for one small-automaton state, the transition that
// first produced it during an inclusion run: the symbol, and the
// already-derived children (nil for a nullary/leaf production). Walking
// derivation backward from a failing state reconstructs one accepting
// term.
type derivation struct {
	sym      ta.Symbol
	children []ta.StateID
	known    bool
}

// buildWitness reconstructs the single-path subautomaton rooted at fail,
// given the derivation history recorded during the inclusion search.
func buildWitness(origin map[ta.StateID]derivation, fail ta.StateID) *Witness {
	b := ta.NewBuilder()
	newID := make(map[ta.StateID]ta.StateID)

	var build func(q ta.StateID) ta.StateID
	build = func(q ta.StateID) ta.StateID {
		if id, ok := newID[q]; ok {
			return id
		}
		id := b.AddState()
		newID[q] = id
		d, ok := origin[q]
		if !ok {
			return id // seed state with no recorded production; leave transition-less
		}
		children := make([]ta.StateID, len(d.children))
		for i, c := range d.children {
			children[i] = build(c)
		}
		_ = b.AddTransition(d.sym, children, id)
		return id
	}

	root := build(fail)
	b.SetFinal(root)
	return &Witness{Automaton: b.Freeze()}
}
