package incl

import "github.com/coregx/vata/ta"

// transitionRef is one grouped-by-symbol transition: parent and children,
// optionally shifted into a disjoint id space (see groupBySymbolTA).
type transitionRef struct {
	parent   ta.StateID
	children []ta.StateID
}

// groupBySymbolTA collects every transition of a by symbol, shifting
// parent and child ids by shift — used to address small's and big's
// transitions in one shared id space without materialising a combined
// automaton (ta.DisjointUnion already gives us the shift amount; C6/C7
// only need the numbering, not a merged transition table).
func groupBySymbolTA(a *ta.Automaton, shift ta.StateID) map[ta.Symbol][]transitionRef {
	out := make(map[ta.Symbol][]transitionRef)
	for q := 0; q < a.States(); q++ {
		a.Transitions(ta.StateID(q), func(sym ta.Symbol, tupleID ta.TupleID) {
			children := a.Arena().Children(tupleID)
			shifted := make([]ta.StateID, len(children))
			for i, c := range children {
				shifted[i] = c + shift
			}
			out[sym] = append(out[sym], transitionRef{parent: ta.StateID(q) + shift, children: shifted})
		})
	}
	return out
}

// candidatesLessEq returns every p in 0..total-1 with q ⊑ p (pre.LessEq),
// the keys under which an antichain element covering q's first component
// could possibly be stored. A full scan trades the splitter-index C6/C7
// describe for a simple, obviously-correct implementation (the same
// trade this module makes in package simulation).
func candidatesLessEq(pre Preorder, q ta.StateID, total int) []ta.StateID {
	var out []ta.StateID
	for p := 0; p < total; p++ {
		if pre.LessEq(q, ta.StateID(p)) {
			out = append(out, ta.StateID(p))
		}
	}
	return out
}

// matchedTrans filters trans to those whose parent lies in P.
func matchedTrans(trans []transitionRef, P []ta.StateID) []transitionRef {
	var out []transitionRef
	for _, t := range trans {
		if containsState(P, t.parent) {
			out = append(out, t)
		}
	}
	return out
}

// projectPosition collects the distinct i-th children across matched,
// the per-position macro set spec.md §4.7's "macro-state" technique uses
// in place of trying each big transition individually.
func projectPosition(matched []transitionRef, i int) []ta.StateID {
	var out []ta.StateID
	for _, t := range matched {
		if !containsState(out, t.children[i]) {
			out = append(out, t.children[i])
		}
	}
	return out
}

func intersectsSet(p []ta.StateID, set map[ta.StateID]bool) bool {
	for _, x := range p {
		if set[x] {
			return true
		}
	}
	return false
}

func containsState(set []ta.StateID, q ta.StateID) bool {
	for _, x := range set {
		if x == q {
			return true
		}
	}
	return false
}

// removeFromMacroByState deletes the set slice (matched by value, not
// identity — two macro-sets count as the same entry once their contents
// are equal) recorded for state, mirroring an antichain.Refine eviction.
func removeFromMacroByState(macroByState map[ta.StateID][][]ta.StateID, state ta.StateID, set []ta.StateID) {
	lists := macroByState[state]
	kept := lists[:0]
	for _, s := range lists {
		if !sameStateSet(s, set) {
			kept = append(kept, s)
		}
	}
	macroByState[state] = kept
}

func sameStateSet(a, b []ta.StateID) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !containsState(b, x) {
			return false
		}
	}
	return true
}

// enumerateCombos builds every way of picking one known macro-set per
// child position, with position fixedPos forced to fixedSet (the macro
// set that just triggered this transition), per spec.md §4.6 step 2 "for
// every choice of partners (p1,...,pn) with pj already seen with
// macro-set Pj". A position with no recorded macro-set yet yields no
// combos — the transition simply isn't ready to fire.
func enumerateCombos(children []ta.StateID, fixedPos int, fixedSet []ta.StateID, macroByState map[ta.StateID][][]ta.StateID) [][][]ta.StateID {
	combos := [][][]ta.StateID{{}}
	for pos, child := range children {
		var options [][]ta.StateID
		if pos == fixedPos {
			options = [][]ta.StateID{fixedSet}
		} else {
			options = macroByState[child]
			if len(options) == 0 {
				return nil
			}
		}
		var next [][][]ta.StateID
		for _, prefix := range combos {
			for _, opt := range options {
				combo := make([][]ta.StateID, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				combo = append(combo, opt)
				next = append(next, combo)
			}
		}
		combos = next
	}
	return combos
}

// jointPost computes {r' | ∃ r ∈ P1×...×Pn . f(r) -> r' is a transition
// in trans}: every transition whose children all lie in the
// correspondingly-positioned macro set of combo.
func jointPost(trans []transitionRef, combo [][]ta.StateID) []ta.StateID {
	var out []ta.StateID
	for _, t := range trans {
		if len(t.children) != len(combo) {
			continue
		}
		match := true
		for i, c := range t.children {
			if !containsState(combo[i], c) {
				match = false
				break
			}
		}
		if match && !containsState(out, t.parent) {
			out = append(out, t.parent)
		}
	}
	return out
}
