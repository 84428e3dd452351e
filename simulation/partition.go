package simulation

import "github.com/coregx/vata/relation"

// ToPartitionRelation groups states that are bisimilar under sim (sim.Sym)
// into blocks and derives a block-level ≤ from sim, producing the
// partition–relation pair representation of spec.md §3. This is the view
// package ta/reduce's Collapse uses to quotient an automaton by a
// simulation's equivalence classes.
func ToPartitionRelation(sim *relation.BinaryRelation, n int) *relation.PartitionRelation {
	rep := sim.BuildClasses(n)
	groups := make(map[int][]int)
	for q := 0; q < n; q++ {
		groups[rep[q]] = append(groups[rep[q]], q)
	}

	// Stable block ordering: lowest representative first.
	order := make([]int, 0, len(groups))
	for r := range groups {
		order = append(order, r)
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j-1] > order[j]; j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}

	blockGroups := make([][]int, 0, len(order))
	for _, r := range order {
		blockGroups = append(blockGroups, groups[r])
	}
	part := relation.NewPartitionFromGroups(blockGroups)

	nb := part.NumBlocks()
	leq := relation.NewBinaryRelation(nb)
	for bi := 0; bi < nb; bi++ {
		for bj := 0; bj < nb; bj++ {
			// A block relates to another iff every representative pair
			// does; since blocks are exactly the ⟷-classes, any member
			// pair agrees.
			leq.Set(bi, bj, sim.Get(part.Block(bi)[0], part.Block(bj)[0]))
		}
	}
	return &relation.PartitionRelation{Part: part, Leq: leq}
}
