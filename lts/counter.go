package lts

// row is the storage for one (label) row of the shared counter: master
// holds the row's total; detail, when non-nil, holds the exact per-state
// counts that sum to master. owner is a shared reference count: while it
// is > 1 the row is aliased by more than one label slot (after copyLabels)
// and any mutation must clone first. This is the Go realization of
// spec.md §9's "replace reference counting with an explicit owner +
// clone-on-mutate function returning a fresh handle" — no finalizer, no
// implicit aliasing, a clone is a plain allocation.
type row struct {
	master int
	detail map[int]int
	owner  *int
}

func newRow() *row {
	rc := 1
	return &row{owner: &rc}
}

func (r *row) shared() bool { return *r.owner > 1 }

// clone returns an independent copy of r with a fresh, unshared owner.
func (r *row) clone() *row {
	nr := &row{master: r.master}
	if r.detail != nil {
		nr.detail = make(map[int]int, len(r.detail))
		for k, v := range r.detail {
			nr.detail[k] = v
		}
	}
	rc := 1
	nr.owner = &rc
	return nr
}

// Counter is the two-dimensional (label, state) counter of spec.md §3
// "Shared counter": O(1) incr/decr/get, row-wise copy-on-write. The
// simulation engine (package simulation) only reads RowTotal to skip
// labels with no edges; it keeps no per-block counters, so the counter
// does not bound the cost of the refinement.
type Counter struct {
	rows []*row
}

// NewCounter returns an empty counter; rows are created lazily on first
// use of a label.
func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) rowFor(label int) *row {
	for label >= len(c.rows) {
		c.rows = append(c.rows, nil)
	}
	if c.rows[label] == nil {
		c.rows[label] = newRow()
	}
	return c.rows[label]
}

// cow returns a row for label safe to mutate in place: if the stored row
// is aliased (shared() is true), it is cloned first and the clone
// installed, decrementing the old row's refcount.
func (c *Counter) cow(label int) *row {
	r := c.rowFor(label)
	if r.shared() {
		*r.owner--
		clone := r.clone()
		c.rows[label] = clone
		return clone
	}
	return r
}

// Incr bumps the count for (label, state) by one.
func (c *Counter) Incr(label, state int) {
	r := c.cow(label)
	if r.detail == nil {
		r.detail = make(map[int]int)
	}
	r.detail[state]++
	r.master++
}

// Decr decrements the count for (label, state) by one and returns the new
// per-state value. Panics (invariant violation, spec.md §7) if the count
// was already zero: a negative count can only mean caller bookkeeping is
// wrong.
func (c *Counter) Decr(label, state int) int {
	r := c.cow(label)
	v := r.detail[state]
	if v <= 0 {
		panic("lts: counter decrement below zero for (label, state)")
	}
	v--
	if v == 0 {
		delete(r.detail, state)
	} else {
		r.detail[state] = v
	}
	r.master--
	return v
}

// Get returns the current count for (label, state).
func (c *Counter) Get(label, state int) int {
	if label >= len(c.rows) || c.rows[label] == nil {
		return 0
	}
	return c.rows[label].detail[state]
}

// RowTotal returns the sum of all per-state counts for label.
func (c *Counter) RowTotal(label int) int {
	if label >= len(c.rows) || c.rows[label] == nil {
		return 0
	}
	return c.rows[label].master
}

// CopyLabels shares src's rows for every label in labels into c, bumping
// each shared row's refcount rather than copying its contents; a later
// Incr or Decr on a shared row clones it first. The simulation engine does
// not call it: its block splits do not copy counters.
func (c *Counter) CopyLabels(labels []int, src *Counter) {
	for _, label := range labels {
		if label >= len(src.rows) || src.rows[label] == nil {
			continue
		}
		r := src.rows[label]
		*r.owner++
		for label >= len(c.rows) {
			c.rows = append(c.rows, nil)
		}
		c.rows[label] = r
	}
}
