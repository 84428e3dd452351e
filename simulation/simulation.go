// Package simulation computes the coarsest simulation preorder of a
// labelled transition system (package lts), per spec.md §4.4. The
// translators in package encode are responsible for baking any
// domain-specific compatibility requirement (tree-automaton finality,
// NFA initial-state grouping) into the LTS itself — typically as a
// reserved label self-looped on every state that must be treated as
// "final" — so that this package only ever has to solve the one generic
// problem: the greatest relation S with
//
//	(q, r) ∈ S  ⇒  ∀a ∀q' (q →a q' ⇒ ∃r' (r →a r' ∧ (q', r') ∈ S))
package simulation

import (
	"github.com/coregx/vata/lts"
	"github.com/coregx/vata/relation"
)

// Run computes the coarsest simulation preorder of l and returns it as a
// BinaryRelation: Get(q, r) holds iff r simulates q (q ⊑ r). initial, if
// non-nil, seeds the starting block structure the refinement runs over —
// a coarser-than-discrete grouping the caller already knows is safe
// (e.g. package encode's finality sentinel keeps accepting and
// non-accepting states apart before this package ever sees them); nil
// starts from the discrete partition, one block per state.
//
// The algorithm is the block/splitter refinement spec.md §4.4 describes,
// not a flat state x state matrix walk: states live in a
// relation.Partition, candidate simulation is a relation.PartitionRelation
// ≤ over block indices, and a block only ever splits, via
// Partition.Split, when part of its membership stops satisfying some
// candidate Leq(b, c) — the Knaster–Tarski greatest-fixpoint computation
// (start from "every block simulates every block", monotonically shrink)
// runs at block granularity instead of per state pair. From the nil
// (discrete) start every block holds one state, so the run is the plain
// per-pair fixpoint and no block ever splits. lts.Counter prunes
// the label set once up front: a label with zero edges anywhere
// (RowTotal == 0) can be skipped for the rest of the run, since no block
// can ever have a move on it to match or fail to match. This is a coarser
// use of Counter than spec.md §4.3's per-block incremental copyLabels
// bookkeeping, which would also amortise accounting *within* a single
// label's refinement as blocks split further; that finer-grained
// accounting is not implemented here.
//
// Removal of a candidate Leq(b, c) is monotone (never re-added) and the
// number of blocks only ever grows (bounded by the number of states), so
// the outer loop terminates and the result does not depend on processing
// order — spec.md §4.4 "deterministic result independent of the
// splitter-selection order".
func Run(l *lts.LTS, initial *relation.Partition) *relation.BinaryRelation {
	n := l.NumStates()
	if n == 0 {
		return relation.NewBinaryRelation(0)
	}

	part := initial
	if part == nil {
		part = relation.NewDiscretePartition(n)
	}
	pr := relation.NewPartitionRelationAllPairs(part)

	l.Init()
	counter := l.Counter()
	var activeLabels []int
	for a := 0; a < l.NumLabels(); a++ {
		if counter.RowTotal(a) > 0 {
			activeLabels = append(activeLabels, a)
		}
	}

	for changed := true; changed; {
		changed = false
		for b := 0; b < part.NumBlocks(); b++ {
			for c := 0; c < part.NumBlocks(); c++ {
				if !pr.Leq.Get(b, c) {
					continue
				}
				if refineBlockPair(l, part, pr, b, c, activeLabels) {
					changed = true
				}
			}
		}
	}

	return pr.StateRelation(n)
}

// refineBlockPair re-tests candidate Leq(b, c) against b's current
// membership: states that still satisfy it stay in b, the rest split off
// into a new trailing block; if none satisfy it, Leq(b, c) is dropped
// outright. Reports whether anything changed.
func refineBlockPair(l *lts.LTS, part *relation.Partition, pr *relation.PartitionRelation, b, c int, labels []int) bool {
	members := part.Block(b)
	good := make(map[int]bool, len(members))
	anyGood, anyBad := false, false
	for _, q := range members {
		if stateMatchesBlock(l, part, pr, q, c, labels) {
			good[q] = true
			anyGood = true
		} else {
			anyBad = true
		}
	}
	if !anyBad {
		return false
	}
	if !anyGood {
		pr.Leq.Set(b, c, false)
		return true
	}

	newBlock := part.Split(b, func(state int) bool { return good[state] })
	if newBlock == -1 {
		return false // anyGood && anyBad guarantees a real split; stay defensive
	}
	pr.Leq.Resize(part.NumBlocks())
	for x := 0; x < part.NumBlocks(); x++ {
		pr.Leq.Set(newBlock, x, pr.Leq.Get(b, x))
		pr.Leq.Set(x, newBlock, pr.Leq.Get(x, b))
	}
	pr.Leq.Set(newBlock, c, false)
	return true
}

// stateMatchesBlock reports whether q still simulates into block c: every
// q-labelled move must land in a block that some c-member's matching move
// also lands in.
func stateMatchesBlock(l *lts.LTS, part *relation.Partition, pr *relation.PartitionRelation, q, c int, labels []int) bool {
	for _, a := range labels {
		for _, qp := range l.Post(a, q) {
			if !blockCovers(l, part, pr, a, part.BlockOf(qp), c) {
				return false
			}
		}
	}
	return true
}

// blockCovers reports whether some member of block c has an a-move
// landing in block target, i.e. whether c can match a q-move into target.
func blockCovers(l *lts.LTS, part *relation.Partition, pr *relation.PartitionRelation, a, target, c int) bool {
	for _, r := range part.Block(c) {
		for _, rp := range l.Post(a, r) {
			if pr.Leq.Get(target, part.BlockOf(rp)) {
				return true
			}
		}
	}
	return false
}
