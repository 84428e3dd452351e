package incl

import (
	"github.com/coregx/vata/antichain"
	"github.com/coregx/vata/ta"
)

// IncludesUpward decides L(small) ⊆ L(big) via the antichain upward
// algorithm (spec.md §4.6): explore reachable (q, P) pairs bottom-up from
// leaves, where P is the macro-set of big-states that can match every
// derivation of q seen so far; fail as soon as some final q's P set
// contains no final big-state. big's states are addressed through
// bigBase (the shift ta.DisjointUnion would assign them), and pre must be
// a sound preorder over the combined id space 0..bigBase+big.States()-1.
func IncludesUpward(small, big *ta.Automaton, bigBase ta.StateID, pre Preorder) (bool, *Witness) {
	total := int(bigBase) + big.States()
	bigTrans := groupBySymbolTA(big, bigBase)

	smallFinal := make(map[ta.StateID]bool)
	for _, f := range small.FinalStates() {
		smallFinal[f] = true
	}
	bigFinal := make(map[ta.StateID]bool)
	for _, f := range big.FinalStates() {
		bigFinal[f+bigBase] = true
	}

	macroByState := make(map[ta.StateID][][]ta.StateID)
	origin := make(map[ta.StateID]derivation)
	ac := antichain.New[ta.StateID](pre)

	type item struct {
		q ta.StateID
		P []ta.StateID
	}
	var worklist []item

	produce := func(q ta.StateID, P []ta.StateID, sym ta.Symbol, children []ta.StateID) (fail ta.StateID, failed bool) {
		if smallFinal[q] && !intersectsSet(P, bigFinal) {
			return q, true
		}
		candidates := candidatesLessEq(pre, q, total)
		if ac.Contains(candidates, P) {
			return 0, false
		}
		ac.Refine(candidates, P, func(state ta.StateID, set []ta.StateID) {
			removeFromMacroByState(macroByState, state, set)
		})
		ac.Insert(q, P)
		macroByState[q] = append(macroByState[q], P)
		if _, has := origin[q]; !has {
			origin[q] = derivation{sym: sym, children: append([]ta.StateID(nil), children...)}
		}
		worklist = append(worklist, item{q, P})
		return 0, false
	}

	smallNullary := groupBySymbolTA(small, 0)
	for sym, ts := range smallNullary {
		if sym.Arity != 0 {
			continue
		}
		var P []ta.StateID
		for _, bt := range bigTrans[sym] {
			if len(bt.children) == 0 {
				P = append(P, bt.parent)
			}
		}
		for _, t := range ts {
			if fail, failed := produce(t.parent, P, sym, nil); failed {
				return false, buildWitness(origin, fail)
			}
		}
	}

	childIdx := small.ChildIndex()
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, occ := range childIdx[cur.q] {
			children := small.Arena().Children(occ.Tuple)
			combos := enumerateCombos(children, occ.Pos, cur.P, macroByState)
			for _, combo := range combos {
				Pp := jointPost(bigTrans[occ.Sym], combo)
				if fail, failed := produce(occ.Parent, Pp, occ.Sym, children); failed {
					return false, buildWitness(origin, fail)
				}
			}
		}
	}

	return true, nil
}
