package ta

// DisjointUnion rebuilds small and big into one automaton over a single
// disjoint state space: small's states keep their IDs (0..small.States()-1)
// and big's states are shifted by small.States(). This is the "sanitise —
// re-index the two automata into a disjoint state space" step spec.md
// §4.9 describes for the inclusion dispatcher, pulled out as a reusable
// helper so Union/Intersect can share it (spec.md §4.12).
//
// The returned automaton's final states are the union of both inputs',
// shifted accordingly; callers that need per-input final sets (e.g. the
// inclusion deciders, which must keep "final in small" and "final in big"
// distinct) should use bigBase to translate big's original StateIDs
// themselves rather than reading Combined.FinalStates().
func DisjointUnion(small, big *Automaton) (combined *Automaton, bigBase StateID) {
	b := NewBuilder()
	for i := 0; i < small.States(); i++ {
		b.AddNamedState(small.Name(StateID(i)))
	}
	base := StateID(small.States())
	for i := 0; i < big.States(); i++ {
		b.AddNamedState(big.Name(StateID(i)))
	}

	copyAutomaton(b, small, 0)
	copyAutomaton(b, big, base)

	return b.Freeze(), base
}

// copyAutomaton writes every transition and final state of src into b,
// shifting every state reference (parents and children alike) by offset.
func copyAutomaton(b *Builder, src *Automaton, offset StateID) {
	for q := 0; q < src.States(); q++ {
		src.Transitions(StateID(q), func(sym Symbol, tupleID TupleID) {
			children := src.Arena().Children(tupleID)
			shifted := make([]StateID, len(children))
			for i, c := range children {
				shifted[i] = c + offset
			}
			_ = b.AddTransition(sym, shifted, StateID(q)+offset)
		})
		if src.IsFinal(StateID(q)) {
			b.SetFinal(StateID(q) + offset)
		}
	}
	for _, sym := range src.Alphabet() {
		b.DeclareSymbol(sym)
	}
}

// UnionDisjoint builds an automaton recognising L(small) ∪ L(big) by
// simply disjoint-uniting the two: since the state spaces never overlap,
// any run stays entirely within one side, so the union of final sets is
// exactly the final set of the union language.
func UnionDisjoint(small, big *Automaton) *Automaton {
	combined, _ := DisjointUnion(small, big)
	return combined
}

// Union is an alias for UnionDisjoint: with per-automaton-owned tuple
// arenas and disjoint state IDs there is no cheaper "shared-state union"
// to fall back to, so both names build the same automaton — kept as two
// names because spec.md §6.5 lists both as library-surface operations
// with the same contract (their difference in the original is an
// internal representation choice, not an observable one).
func Union(small, big *Automaton) *Automaton {
	return UnionDisjoint(small, big)
}

// Intersect builds the product automaton recognising L(small) ∩ L(big).
// Product states are pairs (p, r); a product transition
// f((p1,r1),...,(pn,rn)) -> (p,r) exists iff f(p1,...,pn) -> p is a
// transition of small and f(r1,...,rn) -> r is a transition of big for
// the same symbol and arity. Unreachable product states are never
// materialised: construction works outward from the leaves (spec.md
// §4.12 grounds this in the disjoint-rename helper's handling of symbols
// and arities).
func Intersect(small, big *Automaton) *Automaton {
	b := NewBuilder()
	id := make(map[productPair]StateID)
	seen := make(map[productPair]bool)
	var worklist []productPair

	stateOf := func(key productPair) StateID {
		if s, ok := id[key]; ok {
			return s
		}
		s := b.AddState()
		id[key] = s
		return s
	}
	reach := func(key productPair) {
		if !seen[key] {
			seen[key] = true
			worklist = append(worklist, key)
		}
	}

	bySymbolSmall := groupBySymbol(small)
	bySymbolBig := groupBySymbol(big)

	// Seed with every matching pair of nullary transitions (the leaves of
	// the product construction).
	for sym, transSmall := range bySymbolSmall {
		if sym.Arity != 0 {
			continue
		}
		for _, ts := range transSmall {
			for _, tb := range bySymbolBig[sym] {
				key := productPair{ts.parent, tb.parent}
				_ = b.AddTransition(sym, nil, stateOf(key))
				reach(key)
			}
		}
	}

	// Grow upward: once every child position of a candidate transition
	// pair names an already-reached product state, the product
	// transition itself becomes reachable.
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for sym, transSmall := range bySymbolSmall {
			if sym.Arity == 0 {
				continue
			}
			transBig, ok := bySymbolBig[sym]
			if !ok {
				continue
			}
			for _, ts := range transSmall {
				if !occupiesPosition(ts.children, cur.p) {
					continue
				}
				for _, tb := range transBig {
					if !occupiesPosition(tb.children, cur.r) {
						continue
					}
					tryCombine(b, stateOf, reach, seen, sym, ts, tb)
				}
			}
		}
	}

	for q, s := range id {
		if small.IsFinal(q.p) && big.IsFinal(q.r) {
			b.SetFinal(s)
		}
	}
	return b.Freeze()
}

type productPair struct{ p, r StateID }

type symTransition struct {
	parent   StateID
	children []StateID
}

func groupBySymbol(a *Automaton) map[Symbol][]symTransition {
	out := make(map[Symbol][]symTransition)
	for q := 0; q < a.States(); q++ {
		a.Transitions(StateID(q), func(sym Symbol, tupleID TupleID) {
			out[sym] = append(out[sym], symTransition{
				parent:   StateID(q),
				children: append([]StateID(nil), a.Arena().Children(tupleID)...),
			})
		})
	}
	return out
}

func occupiesPosition(children []StateID, q StateID) bool {
	for _, c := range children {
		if c == q {
			return true
		}
	}
	return false
}

// tryCombine adds the product transition for (ts, tb) if every child
// position already names a reached product pair, and marks the resulting
// parent pair reached.
func tryCombine(
	b *Builder,
	stateOf func(productPair) StateID,
	reach func(productPair),
	seen map[productPair]bool,
	sym Symbol,
	ts, tb symTransition,
) {
	productChildren := make([]StateID, sym.Arity)
	for i := 0; i < sym.Arity; i++ {
		key := productPair{ts.children[i], tb.children[i]}
		if !seen[key] {
			return // that component pair hasn't been reached yet
		}
		productChildren[i] = stateOf(key)
	}
	parentKey := productPair{ts.parent, tb.parent}
	_ = b.AddTransition(sym, productChildren, stateOf(parentKey))
	reach(parentKey)
}
