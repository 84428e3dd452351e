package ta

import (
	"github.com/coregx/vata/internal/conv"
	"github.com/coregx/vata/internal/sparse"
	"github.com/coregx/vata/relation"
)

// RemoveUnreachable returns an automaton containing only the states
// reachable by some derivation, starting from nullary transitions and
// closing upward through Δ (spec.md §4.13, glossary "useless state").
func RemoveUnreachable(a *Automaton) *Automaton {
	return filterStates(a, reachableSet(a))
}

// RemoveUseless returns an automaton containing only states that occur on
// some accepting run: reachable (per RemoveUnreachable) and co-reachable
// (able to reach F through some context), per spec.md glossary "useless
// state".
func RemoveUseless(a *Automaton) *Automaton {
	reached := reachableSet(a)
	coReachable := coReachableSet(a)

	keep := sparse.NewSparseSet(conv.IntToUint32(a.States()))
	for _, q := range reached.Values() {
		if coReachable.Contains(q) {
			keep.Insert(q)
		}
	}
	return filterStates(a, keep)
}

// reachableSet computes the forward-reachable states of a: seeded by
// every nullary transition's parent, closed upward through Δ whenever a
// parent's whole child tuple is already reachable. Visited-state tracking
// uses a sparse.SparseSet sized to a.States(), the same structure the
// teacher reserves for NFA-simulation visited-sets.
func reachableSet(a *Automaton) *sparse.SparseSet {
	reachable := sparse.NewSparseSet(conv.IntToUint32(a.States()))
	childIdx := a.ChildIndex()
	var worklist []StateID
	mark := func(q StateID) {
		if !reachable.Contains(uint32(q)) {
			reachable.Insert(uint32(q))
			worklist = append(worklist, q)
		}
	}
	for q := 0; q < a.States(); q++ {
		a.Transitions(StateID(q), func(sym Symbol, _ TupleID) {
			if sym.Arity == 0 {
				mark(StateID(q))
			}
		})
	}
	for len(worklist) > 0 {
		q := worklist[0]
		worklist = worklist[1:]
		for _, occ := range childIdx[q] {
			children := a.Arena().Children(occ.Tuple)
			all := true
			for _, c := range children {
				if !reachable.Contains(uint32(c)) {
					all = false
					break
				}
			}
			if all {
				mark(occ.Parent)
			}
		}
	}
	return reachable
}

// coReachableSet computes every state from which some accepting state is
// derivable: a backward fixpoint seeded by F, propagated through any
// transition where the parent is already known co-reachable (a context
// containing q can complete to an accepting run).
func coReachableSet(a *Automaton) *sparse.SparseSet {
	co := sparse.NewSparseSet(conv.IntToUint32(a.States()))
	var worklist []StateID
	mark := func(q StateID) {
		if !co.Contains(uint32(q)) {
			co.Insert(uint32(q))
			worklist = append(worklist, q)
		}
	}
	for _, f := range a.FinalStates() {
		mark(f)
	}
	for len(worklist) > 0 {
		q := worklist[0]
		worklist = worklist[1:]
		a.Transitions(q, func(_ Symbol, tupleID TupleID) {
			for _, c := range a.Arena().Children(tupleID) {
				mark(c)
			}
		})
	}
	return co
}

// filterStates rebuilds a with only the states in keep, preserving
// transitions whose parent and every child survive.
func filterStates(a *Automaton, keep *sparse.SparseSet) *Automaton {
	b := NewBuilder()
	remap := make(map[StateID]StateID, keep.Size())
	for q := 0; q < a.States(); q++ {
		if keep.Contains(uint32(q)) {
			remap[StateID(q)] = b.AddNamedState(a.Name(StateID(q)))
		}
	}
	for q := 0; q < a.States(); q++ {
		old := StateID(q)
		nq, ok := remap[old]
		if !ok {
			continue
		}
		a.Transitions(old, func(sym Symbol, tupleID TupleID) {
			children := a.Arena().Children(tupleID)
			newChildren := make([]StateID, len(children))
			for i, c := range children {
				nc, ok := remap[c]
				if !ok {
					return
				}
				newChildren[i] = nc
			}
			_ = b.AddTransition(sym, newChildren, nq)
		})
		if a.IsFinal(old) {
			b.SetFinal(nq)
		}
	}
	for _, sym := range a.Alphabet() {
		b.DeclareSymbol(sym)
	}
	return b.Freeze()
}

// Collapse quotients a by relation's ⟷-equivalence classes (spec.md §6.5
// "collapse(A, relation) -> automaton"): every state is rewritten to its
// class representative, and transitions that coincide after rewriting are
// merged through the fresh automaton's own tuple arena (no separate ad
// hoc dedup cache is needed — hash-consing on insert already does it).
func Collapse(a *Automaton, rel *relation.BinaryRelation) *Automaton {
	n := a.States()
	rep := rel.BuildClasses(n)

	b := NewBuilder()
	newID := make(map[int]StateID)
	classOf := func(q int) StateID {
		r := rep[q]
		if id, ok := newID[r]; ok {
			return id
		}
		id := b.AddNamedState(a.Name(StateID(r)))
		newID[r] = id
		return id
	}
	for q := 0; q < n; q++ {
		classOf(q) // ensure every class gets a state even if isolated
	}

	for q := 0; q < n; q++ {
		a.Transitions(StateID(q), func(sym Symbol, tupleID TupleID) {
			children := a.Arena().Children(tupleID)
			newChildren := make([]StateID, len(children))
			for i, c := range children {
				newChildren[i] = classOf(int(c))
			}
			_ = b.AddTransition(sym, newChildren, classOf(q))
		})
		if a.IsFinal(StateID(q)) {
			b.SetFinal(classOf(q))
		}
	}
	for _, sym := range a.Alphabet() {
		b.DeclareSymbol(sym)
	}
	return b.Freeze()
}
