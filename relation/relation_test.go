package relation

import "testing"

func TestBinaryRelation_GetSetSym(t *testing.T) {
	r := NewBinaryRelation(4)
	r.Set(0, 1, true)
	r.Set(1, 0, true)
	r.Set(2, 3, true)

	if !r.Get(0, 1) || !r.Get(1, 0) {
		t.Fatal("set entries should read back true")
	}
	if !r.Sym(0, 1) {
		t.Error("0,1 should be symmetric")
	}
	if r.Sym(2, 3) {
		t.Error("2,3 should not be symmetric (3,2 unset)")
	}
}

func TestBinaryRelation_Resize(t *testing.T) {
	r := NewBinaryRelation(2)
	r.Set(0, 1, true)
	r.Resize(10)
	if !r.Get(0, 1) {
		t.Fatal("resize should preserve existing entries")
	}
	r.Set(9, 9, true)
	if !r.Get(9, 9) {
		t.Fatal("resized relation should support the new range")
	}
}

func TestBuildClasses(t *testing.T) {
	r := NewBinaryRelation(4)
	// 0 <-> 2 equivalent; 1, 3 singletons.
	r.Set(0, 2, true)
	r.Set(2, 0, true)
	r.Set(0, 0, true)
	r.Set(1, 1, true)
	r.Set(2, 2, true)
	r.Set(3, 3, true)

	classes := r.BuildClasses(4)
	if classes[0] != 0 || classes[2] != 0 {
		t.Fatalf("0 and 2 should share representative 0, got %v", classes)
	}
	if classes[1] != 1 || classes[3] != 3 {
		t.Fatalf("1 and 3 should be singleton classes, got %v", classes)
	}
}

func TestPartition_SplitAndBlockOf(t *testing.T) {
	p := NewDiscretePartition(1)
	p.blocks[0] = []int{0, 1, 2, 3}
	p.blockOf = []int{0, 0, 0, 0}

	nb := p.Split(0, func(s int) bool { return s%2 == 0 })
	if nb == -1 {
		t.Fatal("split should produce a new block")
	}
	if p.BlockOf(0) != 0 || p.BlockOf(2) != 0 {
		t.Error("even states should stay in block 0")
	}
	if p.BlockOf(1) != nb || p.BlockOf(3) != nb {
		t.Error("odd states should move to the new block")
	}

	// Splitting a block that's entirely kept (or entirely rejected) is a
	// no-op: there is nothing to separate.
	if idx := p.Split(nb, func(int) bool { return true }); idx != -1 {
		t.Errorf("splitting a uniform block should return -1, got %d", idx)
	}
}

func TestPartitionRelation_AllPairsThenRestrict(t *testing.T) {
	part := NewDiscretePartition(3)
	pr := NewPartitionRelationAllPairs(part)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !pr.LessEq(i, j) {
				t.Fatalf("initial relation should relate every pair, failed at (%d,%d)", i, j)
			}
		}
	}

	pr.Leq.Set(part.BlockOf(0), part.BlockOf(1), false)
	if pr.LessEq(0, 1) {
		t.Error("restricting the block relation should restrict LessEq")
	}
	if !pr.LessEq(1, 0) {
		t.Error("restricting (0,1) should not affect (1,0)")
	}
}
