package incl

import "github.com/coregx/vata/relation"

// Direction selects the antichain inclusion variant (spec.md §6.3).
type Direction int

const (
	DirectionUpward Direction = iota
	DirectionDownward
)

// Algorithm selects the decision procedure family (spec.md §6.3).
type Algorithm int

const (
	AlgorithmAntichains Algorithm = iota
	AlgorithmCongruence
)

// WorklistOrder selects the pending-pair ordering for the congruence
// decider (spec.md §4.8: "depth-first (LIFO) and breadth-first (FIFO)
// orderings ... both sound and complete but differ in memory profile").
type WorklistOrder int

const (
	OrderLIFO WorklistOrder = iota
	OrderFIFO
)

// Params is the inclusion parameter record external callers supply
// (spec.md §6.3): which decider to route to and how to tune it.
type Params struct {
	Direction         Direction
	Algorithm         Algorithm
	UseSimulation     bool
	UseRecursion      bool
	CacheImplications bool
	Order             WorklistOrder

	// Simulation, if non-nil, replaces a computed preorder (spec.md §6.3
	// "simulation: <relation>"); it must already be indexed over the
	// disjoint-union id space the dispatcher builds from small and big.
	Simulation *relation.BinaryRelation
}

// DefaultParams matches spec.md §6.3's documented defaults.
func DefaultParams() Params {
	return Params{
		Direction:         DirectionUpward,
		Algorithm:         AlgorithmAntichains,
		UseSimulation:     false,
		UseRecursion:      true,
		CacheImplications: false,
		Order:             OrderLIFO,
	}
}
