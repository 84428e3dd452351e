// Package vata implements a decision engine for tree and word automata:
// antichain-based and congruence-based language inclusion, partition-
// refinement simulation preorders, and the Boolean/reduction operations
// they rely on.
//
// The package functions here are a thin façade over the lower-level
// packages that do the real work — ta and fa hold the automaton data
// model, encode and simulation compute preorders, incl decides
// inclusion, and timbuk reads and writes the on-disk text format. LoadTA
// and the other facade functions exist so a caller never has to import
// those packages directly for the common path.
//
// Basic usage:
//
//	small, err := vata.LoadTA(smallText)
//	big, err := vata.LoadTA(bigText)
//	ok, witness, err := vata.CheckInclusion(small, big, incl.DefaultParams())
package vata

import (
	"github.com/coregx/vata/dict"
	"github.com/coregx/vata/encode"
	"github.com/coregx/vata/fa"
	"github.com/coregx/vata/incl"
	"github.com/coregx/vata/relation"
	"github.com/coregx/vata/simulation"
	"github.com/coregx/vata/ta"
	"github.com/coregx/vata/timbuk"
)

// LoadTA parses a Timbuk tree-automaton description (spec.md §6.1) into
// a ready-to-use Automaton, inferring arities when Ops is omitted.
func LoadTA(desc string) (*ta.Automaton, error) {
	d, err := timbuk.Parse(desc)
	if err != nil {
		return nil, err
	}
	a, _, err := timbuk.ToAutomaton(d)
	return a, err
}

// SaveTA serialises a back to Timbuk text under the given automaton
// name. syms must be the dictionary LoadTA (or timbuk.ToAutomaton)
// returned alongside a, so symbol names round-trip.
func SaveTA(a *ta.Automaton, name string, syms *dict.TwoWay[ta.SymbolID]) string {
	return timbuk.Serialize(timbuk.FromAutomaton(a, name, syms))
}

// Union returns an automaton whose language is L(a) ∪ L(b) (spec.md §6.5
// "union(A,B)"). It does not merge states: ta.Union is the same disjoint
// construction as UnionDisjoint.
func Union(a, b *ta.Automaton) *ta.Automaton { return ta.Union(a, b) }

// UnionDisjoint returns an automaton whose language is L(a) ∪ L(b)
// without merging any states, matching spec.md §6.5's separate
// "union_disjoint(A,B)" entry.
func UnionDisjoint(a, b *ta.Automaton) *ta.Automaton {
	return ta.UnionDisjoint(a, b)
}

// Intersect returns an automaton whose language is L(a) ∩ L(b).
func Intersect(a, b *ta.Automaton) *ta.Automaton { return ta.Intersect(a, b) }

// Complement returns an automaton whose language is Σ* \ L(a), relative
// to the given ranked alphabet. sim, if non-nil, must be a simulation
// computed over a's own state space (e.g. via ComputeSimulationTA) and is
// used to collapse bisimilar states within a subset-construction state
// before it is interned, keeping the construction from blowing up on
// automata with large simulation classes (spec.md §4.10); nil runs the
// plain subset construction.
func Complement(a *ta.Automaton, alphabet []ta.Symbol, sim *relation.BinaryRelation) *ta.Automaton {
	var pre incl.Preorder = incl.IdentityTA{}
	if sim != nil {
		pre = incl.RelationTA{Rel: sim}
	}
	return incl.Complement(a, alphabet, pre)
}

// RemoveUnreachable discards states unreachable by any derivation.
func RemoveUnreachable(a *ta.Automaton) *ta.Automaton { return ta.RemoveUnreachable(a) }

// RemoveUseless discards states that occur on no accepting run.
func RemoveUseless(a *ta.Automaton) *ta.Automaton { return ta.RemoveUseless(a) }

// Collapse quotients a by relation's ⟷-equivalence classes.
func Collapse(a *ta.Automaton, rel *relation.BinaryRelation) *ta.Automaton {
	return ta.Collapse(a, rel)
}

// SimulationKind selects which simulation relation to compute (spec.md
// §6.4). Three kinds are provided; backward simulation on word automata
// is not one of them.
type SimulationKind int

const (
	// TADownward is the downward simulation preorder on a tree
	// automaton's states.
	TADownward SimulationKind = iota
	// TAUpward is the upward simulation preorder, computed relative to
	// the automaton's own downward simulation (spec.md §4.5).
	TAUpward
	// FAForward is the forward simulation preorder on a word
	// automaton's states.
	FAForward
)

// ComputeSimulationTA computes a's downward or upward simulation
// preorder (spec.md §6.5 "compute_simulation(A, sim_param)").
func ComputeSimulationTA(a *ta.Automaton, kind SimulationKind) *relation.BinaryRelation {
	switch kind {
	case TAUpward:
		down := encode.BuildDownward(a)
		downSim := simulation.Run(down.LTS, nil)
		up := encode.BuildUpward(a, downSim)
		return simulation.Run(up.LTS, nil)
	default:
		down := encode.BuildDownward(a)
		return simulation.Run(down.LTS, nil)
	}
}

// ComputeSimulationFA computes a's forward simulation preorder.
func ComputeSimulationFA(a *fa.Automaton) *relation.BinaryRelation {
	return simulation.Run(encode.Forward(a), nil)
}

// CheckInclusion decides L(small) ⊆ L(big) for tree automata, per p
// (spec.md §6.3/§6.5).
func CheckInclusion(small, big *ta.Automaton, p incl.Params) (bool, *incl.Witness, error) {
	return incl.CheckInclusionTA(small, big, p)
}

// CheckInclusionFA decides L(small) ⊆ L(big) for word automata, per p.
func CheckInclusionFA(small, big *fa.Automaton, p incl.Params) (bool, *incl.Witness, error) {
	return incl.CheckInclusionFA(small, big, p)
}
