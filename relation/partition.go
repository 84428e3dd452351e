package relation

// Partition is an ordered list of disjoint, non-empty blocks over a state
// universe 0..n-1. blockOf maps a state to its current block index.
type Partition struct {
	blocks  [][]int
	blockOf []int
}

// NewDiscretePartition builds the discrete partition { {0}, {1}, ..., {n-1} }.
func NewDiscretePartition(n int) *Partition {
	p := &Partition{
		blocks:  make([][]int, n),
		blockOf: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.blocks[i] = []int{i}
		p.blockOf[i] = i
	}
	return p
}

// NewPartitionFromGroups builds a partition from caller-supplied groups
// (e.g. accepting vs non-accepting states for an initial simulation
// partition, spec.md §4.4 step 1). Every state 0..n-1 must appear in
// exactly one group.
func NewPartitionFromGroups(groups [][]int) *Partition {
	p := &Partition{}
	n := 0
	for _, g := range groups {
		for _, s := range g {
			if s+1 > n {
				n = s + 1
			}
		}
	}
	p.blockOf = make([]int, n)
	for bi, g := range groups {
		cp := append([]int(nil), g...)
		p.blocks = append(p.blocks, cp)
		for _, s := range g {
			p.blockOf[s] = bi
		}
	}
	return p
}

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return len(p.blocks) }

// Block returns the states in block b.
func (p *Partition) Block(b int) []int { return p.blocks[b] }

// BlockOf returns the block index containing state q.
func (p *Partition) BlockOf(q int) int { return p.blockOf[q] }

// Split partitions block b into b1 (states for which keep returns true)
// and a new trailing block b2 (the rest). If either side is empty, the
// original block is left untouched and Split returns -1. Otherwise b keeps
// b1's content in place and the new block's index is returned.
func (p *Partition) Split(b int, keep func(state int) bool) (newBlock int) {
	var in, out []int
	for _, s := range p.blocks[b] {
		if keep(s) {
			in = append(in, s)
		} else {
			out = append(out, s)
		}
	}
	if len(in) == 0 || len(out) == 0 {
		return -1
	}
	p.blocks[b] = in
	nb := len(p.blocks)
	p.blocks = append(p.blocks, out)
	for _, s := range out {
		p.blockOf[s] = nb
	}
	return nb
}

// PartitionRelation pairs a Partition Π with a reflexive relation ≤ on
// block indices: (q, r) ∈ sim ⇔ block(q) ≤ block(r), per spec.md §3.
type PartitionRelation struct {
	Part *Partition
	Leq  *BinaryRelation
}

// NewPartitionRelationAllPairs builds Π with every block ≤ every block (the
// coarsest possible starting relation, spec.md §4.4 step 1 "initial
// relation ≤₀ = all pairs").
func NewPartitionRelationAllPairs(part *Partition) *PartitionRelation {
	n := part.NumBlocks()
	leq := NewBinaryRelation(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			leq.Set(i, j, true)
		}
	}
	return &PartitionRelation{Part: part, Leq: leq}
}

// LessEq reports block(q) ≤ block(r): the current candidate simulation
// between states q and r.
func (pr *PartitionRelation) LessEq(q, r int) bool {
	return pr.Leq.Get(pr.Part.BlockOf(q), pr.Part.BlockOf(r))
}

// StateRelation materialises sim(q, r) for every pair of the n original
// states as a plain BinaryRelation, for callers (e.g. the antichain
// preorder adapters) that want a flat state-indexed view rather than the
// block-indexed one.
func (pr *PartitionRelation) StateRelation(n int) *BinaryRelation {
	out := NewBinaryRelation(n)
	for q := 0; q < n; q++ {
		for r := 0; r < n; r++ {
			out.Set(q, r, pr.LessEq(q, r))
		}
	}
	return out
}
