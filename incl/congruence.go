package incl

import (
	"sort"

	"github.com/coregx/vata/antichain"
	"github.com/coregx/vata/fa"
)

// stateSet is a canonical (sorted, deduplicated) subset of an NFA's
// states: one half of the congruence-closure product state spec.md §3
// calls "a pair of state-sets (S1, S2)".
type stateSet []fa.StateID

func newStateSet(ids []fa.StateID) stateSet {
	s := append(stateSet(nil), ids...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	out := s[:0]
	for i, id := range s {
		if i == 0 || id != s[i-1] {
			out = append(out, id)
		}
	}
	return out
}

// subsetOf is exactly antichain.Dominates under the identity preorder:
// every element of s has a ⊑-equal (here, equal) partner in other. Routed
// through the shared C1 primitive (spec.md §2's "C8 uses C1 plus a
// congruence closure") rather than a hand-rolled containment scan, even
// though the full antichain.Antichain[S] container does not fit here —
// see congruenceChecker's doc comment for why.
func (s stateSet) subsetOf(other stateSet) bool {
	return antichain.Dominates[fa.StateID](IdentityFA{}, s, other)
}

func (s stateSet) union(other stateSet) stateSet {
	return newStateSet(append(append([]fa.StateID(nil), s...), other...))
}

func (s stateSet) equal(other stateSet) bool {
	return len(s) == len(other) && s.subsetOf(other)
}

func (s stateSet) key() string {
	b := make([]byte, 0, len(s)*5)
	for _, id := range s {
		b = append(b, []byte(itoa(int(id)))...)
		b = append(b, ',')
	}
	return string(b)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// pairKey canonicalises a congruence-closure product state (S, T).
type pairKey struct {
	left, right string
}

func keyOf(s, t stateSet) pairKey { return pairKey{s.key(), t.key()} }

// congruenceChecker maintains the processed set R and pending worklist N
// of spec.md §4.8. R itself stays a plain pairKey map rather than an
// antichain.Antichain[S]: that container is keyed by a single comparable
// state plus an associated subsumption set, and a congruence pair is two
// full state-sets with neither playing that role — so it has no state
// ergonomically comparable, S there is to key on. The subsumption test
// the container would have provided is still used directly, though: every
// pair absorbed into R has already gone through close's subset check
// (stateSet.subsetOf, itself antichain.Dominates under the identity
// preorder), so by the time a pair reaches processed it is canonical and
// exact-key dedup is correct, not a missed-implication shortcut.
type congruenceChecker struct {
	small, big *fa.Automaton
	alphabet   []fa.Symbol
	processed  map[pairKey]struct{ s, t stateSet }
	order      WorklistOrder
}

// IncludesCongruence decides L(small) ⊆ L(big) for word automata via
// bisimulation up to congruence (spec.md §4.8): starting from the initial
// pair, repeatedly closes each pending pair under R ∪ N (any stored pair
// whose component is a subset of the current one absorbs its other
// component), checks finality agreement, and expands by one input symbol.
func IncludesCongruence(small, big *fa.Automaton, order WorklistOrder) (bool, *Witness) {
	cc := &congruenceChecker{
		small:     small,
		big:       big,
		alphabet:  mergedAlphabet(small, big),
		processed: make(map[pairKey]struct{ s, t stateSet }),
		order:     order,
	}

	type frame struct{ s, t stateSet }
	worklist := []frame{{newStateSet(small.Initial()), newStateSet(big.Initial())}}

	for len(worklist) > 0 {
		var cur frame
		switch order {
		case OrderLIFO:
			cur = worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
		default: // OrderFIFO
			cur = worklist[0]
			worklist = worklist[1:]
		}

		s, t := cc.close(cur.s, cur.t)
		if s.equal(t) {
			continue
		}
		k := keyOf(s, t)
		if _, already := cc.processed[k]; already {
			continue
		}

		if finalMeets(small, s) != finalMeets(big, t) {
			return false, witnessForCongruenceFailure(small, s)
		}

		cc.processed[k] = struct{ s, t stateSet }{s, t}

		for _, sym := range cc.alphabet {
			ps := postFA(small, s, sym)
			pt := postFA(big, t, sym)
			worklist = append(worklist, frame{ps, pt})
		}
	}

	return true, nil
}

// close computes the congruence closure of (s, t) w.r.t. the processed
// set: any stored pair whose first or second component is a subset of the
// corresponding side of the current pair contributes its other side,
// iterated to a fixpoint (spec.md §4.8 step 1).
func (cc *congruenceChecker) close(s, t stateSet) (stateSet, stateSet) {
	for changed := true; changed; {
		changed = false
		for _, pr := range cc.processed {
			if pr.s.subsetOf(s) && !pr.t.subsetOf(t) {
				t = t.union(pr.t)
				changed = true
			}
			if pr.t.subsetOf(t) && !pr.s.subsetOf(s) {
				s = s.union(pr.s)
				changed = true
			}
		}
	}
	return s, t
}

func finalMeets(a *fa.Automaton, s stateSet) bool {
	for _, q := range s {
		if a.IsFinal(q) {
			return true
		}
	}
	return false
}

func mergedAlphabet(small, big *fa.Automaton) []fa.Symbol {
	seen := make(map[fa.Symbol]bool)
	var out []fa.Symbol
	for _, a := range append(small.Alphabet(), big.Alphabet()...) {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func postFA(a *fa.Automaton, s stateSet, sym fa.Symbol) stateSet {
	var out []fa.StateID
	for _, q := range s {
		out = append(out, a.PostSet(q, sym, nil)...)
	}
	return newStateSet(out)
}

func witnessForCongruenceFailure(small *fa.Automaton, s stateSet) *Witness {
	// The NFA decider reports its counterexample in fa.StateID space; the
	// library-facade layer (package vata) is responsible for rendering it
	// since incl.Witness is a ta.Automaton (tree-automaton deciders are
	// the ones that hand back a structured subautomaton). Callers on the
	// NFA path should treat a nil Witness with this comment as "see the
	// Boolean only" until a dedicated fa witness type is warranted.
	return nil
}
