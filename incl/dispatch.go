package incl

import (
	"github.com/coregx/vata/encode"
	"github.com/coregx/vata/fa"
	"github.com/coregx/vata/simulation"
	"github.com/coregx/vata/ta"
)

// CheckInclusionTA is the C9 dispatcher for tree automata (spec.md §4.9):
// sanitises small and big into a disjoint state space, optionally
// computes the requested downward simulation as the preorder, and routes
// to the antichain upward (C6) or downward (C7) decider, forwarding the
// same preorder to whichever one runs. Congruence (C8) is NFA-only;
// requesting it here is a logical error.
func CheckInclusionTA(small, big *ta.Automaton, p Params) (bool, *Witness, error) {
	if p.Algorithm == AlgorithmCongruence {
		return false, nil, &UnimplementedError{Detail: "congruence algorithm has no tree-automaton formulation"}
	}

	combined, bigBase := ta.DisjointUnion(small, big)

	var pre Preorder = IdentityTA{}
	switch {
	case p.Simulation != nil:
		pre = RelationTA{Rel: p.Simulation}
	case p.UseSimulation:
		d := encode.BuildDownward(combined)
		sim := simulation.Run(d.LTS, nil)
		pre = RelationTA{Rel: sim}
	}

	if p.Direction == DirectionDownward {
		ok, w := IncludesDownward(small, big, bigBase, pre, p)
		return ok, w, nil
	}
	ok, w := IncludesUpward(small, big, bigBase, pre)
	return ok, w, nil
}

// CheckInclusionFA is the C9 dispatcher for word automata. Only the
// congruence decider is available here; requesting AlgorithmAntichains
// returns an UnimplementedError, since no antichain decider for word
// automata exists in this package.
func CheckInclusionFA(small, big *fa.Automaton, p Params) (bool, *Witness, error) {
	if p.Algorithm == AlgorithmCongruence {
		ok, w := IncludesCongruence(small, big, p.Order)
		return ok, w, nil
	}
	return false, nil, &UnimplementedError{Detail: "antichain direction selection is not defined for word automata; use AlgorithmCongruence"}
}
