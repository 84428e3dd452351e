// Package antichain implements the two-component antichain container used
// by the inclusion deciders (packages incl): a set of (state, state-set)
// pairs, pairwise incomparable under a caller-supplied preorder, that
// represents its own up-closure. See spec.md §3 "Antichain element" and
// §4.1.
package antichain

// State is the first component of an antichain element: an opaque,
// automaton-local identifier. The antichain is parametric in the concrete
// state type of the caller (ta.StateID or fa.StateID), so Antichain is
// generic over any ordered, comparable identifier.
type State interface {
	comparable
}

// Preorder decides whether b dominates a: a ⊑ b. An Antichain never
// inspects the preorder's internals; it only ever asks this question,
// either state-to-state or, via Dominates, set-to-set.
type Preorder[S State] interface {
	LessEq(a, b S) bool
}

// Dominates reports P ⊑_set Q: every element of P has a ⊑-bigger element
// in Q. This is the set lifting spec.md §3 uses in the antichain order
// (p, P) ≼ (q, Q) ⇔ q ⊑ p ∧ P ⊑_set Q.
func Dominates[S State](pre Preorder[S], p, q []S) bool {
	for _, a := range p {
		ok := false
		for _, b := range q {
			if pre.LessEq(a, b) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// element is one stored (state, set) pair. A zero-valued element (live ==
// false) marks a slot vacated by refine(), kept to preserve iterator
// handles of untouched elements (spec.md §9: "invalidate only the removed
// positions").
type element[S State] struct {
	state S
	set   []S
	live  bool
}

// Handle identifies a stored element for O(1) removal.
type Handle int

// Antichain stores pairs (p, P) pairwise incomparable under pre, keyed by
// p for fast candidate lookup. It is owned by a single inclusion run and
// is not safe for concurrent use.
type Antichain[S State] struct {
	pre     Preorder[S]
	byState map[S][]Handle
	elems   []element[S]
}

// New returns an empty antichain ordered by pre.
func New[S State](pre Preorder[S]) *Antichain[S] {
	return &Antichain[S]{
		pre:     pre,
		byState: make(map[S][]Handle),
	}
}

// Contains reports whether some stored (p, P) with p ∈ candidates satisfies
// P ⊑_set q, i.e. whether (q's state, q's set) is already covered by the
// antichain when restricted to the supplied candidate keys. candidates is
// caller-supplied because the caller (the inclusion loop) already knows,
// from the preorder, which stored keys could possibly dominate q's state;
// Contains itself performs no preorder lookup over keys it wasn't given.
func (ac *Antichain[S]) Contains(candidates []S, q []S) bool {
	for _, p := range candidates {
		for _, h := range ac.byState[p] {
			e := &ac.elems[h]
			if !e.live {
				continue
			}
			if Dominates(ac.pre, e.set, q) {
				return true
			}
		}
	}
	return false
}

// Refine removes every stored (p, P), p ∈ candidates, with q ⊑_set P — the
// elements the new pair would make redundant — invoking erase for each.
// Safe to call while other handles are held: only the removed handles
// become invalid.
func (ac *Antichain[S]) Refine(candidates []S, q []S, erase func(state S, set []S)) {
	for _, p := range candidates {
		handles := ac.byState[p]
		kept := handles[:0]
		for _, h := range handles {
			e := &ac.elems[h]
			if e.live && Dominates(ac.pre, q, e.set) {
				if erase != nil {
					erase(e.state, e.set)
				}
				e.live = false
				continue
			}
			kept = append(kept, h)
		}
		ac.byState[p] = kept
	}
}

// Insert appends (q, Q) to the antichain and returns a handle for O(1)
// later removal via Remove.
func (ac *Antichain[S]) Insert(q S, set []S) Handle {
	h := Handle(len(ac.elems))
	ac.elems = append(ac.elems, element[S]{state: q, set: append([]S(nil), set...), live: true})
	ac.byState[q] = append(ac.byState[q], h)
	return h
}

// Remove invalidates the element at h.
func (ac *Antichain[S]) Remove(h Handle) {
	ac.elems[h].live = false
}

// Get pops an arbitrary live element (insertion order within a key is
// preserved, per spec.md §4.1; no order is guaranteed across keys). It
// returns false iff the antichain holds no live element.
func (ac *Antichain[S]) Get() (state S, set []S, ok bool) {
	for i := range ac.elems {
		if ac.elems[i].live {
			ac.elems[i].live = false
			e := &ac.elems[i]
			return e.state, e.set, true
		}
	}
	var zero S
	return zero, nil, false
}

// Len returns the number of live elements.
func (ac *Antichain[S]) Len() int {
	n := 0
	for i := range ac.elems {
		if ac.elems[i].live {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the antichain holds no live element.
func (ac *Antichain[S]) IsEmpty() bool {
	return ac.Len() == 0
}
