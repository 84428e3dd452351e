// Package incl implements the inclusion deciders: antichain-based upward
// and downward checking for tree automata (spec.md §4.6-§4.7), a
// bisimulation-up-to-congruence checker for word automata (§4.8), the
// downward-closed complement construction (§4.10), and the dispatcher
// that wires a parameter record to one of them (§4.9).
package incl

import (
	"github.com/coregx/vata/fa"
	"github.com/coregx/vata/relation"
	"github.com/coregx/vata/ta"
)

// Preorder is the antichain.Preorder contract specialised to ta.StateID,
// used uniformly across the tree-automaton deciders. Callers obtain one
// either from IdentityTA (no simulation computed) or from a BinaryRelation
// produced by package simulation.
type Preorder interface {
	LessEq(a, b ta.StateID) bool
}

// FAPreorder is the same contract specialised to fa.StateID for the NFA
// deciders.
type FAPreorder interface {
	LessEq(a, b fa.StateID) bool
}

// IdentityTA is the trivial preorder p ⊑ q ⇔ p = q, used when no
// simulation was requested: sound for every pair of automata, just less
// pruning than a real simulation preorder (spec.md §8 property 2).
type IdentityTA struct{}

func (IdentityTA) LessEq(a, b ta.StateID) bool { return a == b }

// IdentityFA is IdentityTA's fa.StateID counterpart.
type IdentityFA struct{}

func (IdentityFA) LessEq(a, b fa.StateID) bool { return a == b }

// RelationTA adapts a BinaryRelation (computed over the disjoint-union
// state space) to Preorder.
type RelationTA struct{ Rel *relation.BinaryRelation }

func (r RelationTA) LessEq(a, b ta.StateID) bool { return r.Rel.Get(int(a), int(b)) }

// RelationFA is RelationTA's fa.StateID counterpart.
type RelationFA struct{ Rel *relation.BinaryRelation }

func (r RelationFA) LessEq(a, b fa.StateID) bool { return r.Rel.Get(int(a), int(b)) }
