package incl

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/vata/antichain"
	"github.com/coregx/vata/ta"
)

// downKey canonicalises a (state, macro-set) pair into a map key: sorted,
// deduplicated state ids joined with the query state. Used only by
// downWorklist, which discovers and evaluates every reachable obligation
// up front rather than caching by subsumption.
func downKey(q ta.StateID, P []ta.StateID) string {
	ids := append([]ta.StateID(nil), P...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(q)))
	b.WriteByte('|')
	for i, p := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(p)))
	}
	return b.String()
}

// negCache is the non-inclusion cache of spec.md §4.7: (state, macro-set)
// pairs already proven false. A stored failure at q subsumes a new query
// at the same q whenever the query is no more permissive than the stored
// macro-set (query ⊑_set stored, antichain.Dominates(pre, query, stored))
// — the reverse of antichain.Antichain's built-in Contains direction,
// which tests whether a stored set is dominated by the query (the
// direction workset wants, not this one). Both directions are legitimate
// uses of the one antichain.Dominates primitive; negCache just applies it
// with the arguments in the opposite order rather than going through the
// Antichain container, whose Contains/Refine are fixed to the other
// orientation.
type negCache struct {
	pre  Preorder
	sets map[ta.StateID][][]ta.StateID
}

func newNegCache(pre Preorder) *negCache {
	return &negCache{pre: pre, sets: make(map[ta.StateID][][]ta.StateID)}
}

// subsumes reports whether some recorded failure at q already covers P.
func (nc *negCache) subsumes(q ta.StateID, P []ta.StateID) bool {
	for _, stored := range nc.sets[q] {
		if antichain.Dominates(nc.pre, P, stored) {
			return true
		}
	}
	return false
}

// record adds a new failure at q, dropping any previously-recorded
// failure at q that P itself now subsumes (P ⊒_set stored), keeping the
// per-state list an antichain rather than an ever-growing log.
func (nc *negCache) record(q ta.StateID, P []ta.StateID) {
	existing := nc.sets[q]
	kept := existing[:0]
	for _, stored := range existing {
		if !antichain.Dominates(nc.pre, stored, P) {
			kept = append(kept, stored)
		}
	}
	nc.sets[q] = append(kept, append([]ta.StateID(nil), P...))
}

// downChecker holds the state shared across one downward inclusion run:
// both antichains spec.md §4.7 describes — workset (pairs currently on
// the recursion stack, assumed to hold to break cycles coinductively,
// stored in the shared antichain.Antichain container C6 also uses) and
// the non-inclusion cache above — plus the projected-transition machinery
// the "macro-state" technique needs. pre is the simulation (or identity)
// preorder used to subsume workset/cache entries; it never changes the
// Boolean the recursion computes, only how much of it gets recomputed.
type downChecker struct {
	small, big *ta.Automaton
	bigTrans   map[ta.Symbol][]transitionRef
	pre        Preorder
	cache      bool

	workset   *antichain.Antichain[ta.StateID]
	failCache *negCache
	failState ta.StateID
	failed    bool
}

// IncludesDownward decides L(small) ⊆ L(big) via the recursive
// "macro-state" downward algorithm (spec.md §4.7): down(q,P) holds iff
// every small transition into q can be matched, position-wise, by the
// projected children of every big transition whose parent lies in P.
// pre is used to subsume workset/non-inclusion-cache entries across
// macro-sets that are no more permissive than one already recorded,
// exactly the way C6's antichain container does for the upward direction
// (IdentityTA if the caller asked for no simulation). When opts.UseRecursion
// is false the equivalent worklist formulation (downWorklist) is used
// instead; both are sound and return the same Boolean (spec.md §8
// property 2) — downWorklist does not consult pre, since it has no
// cache to subsume in the first place.
func IncludesDownward(small, big *ta.Automaton, bigBase ta.StateID, pre Preorder, opts Params) (bool, *Witness) {
	dc := &downChecker{
		small:     small,
		big:       big,
		bigTrans:  groupBySymbolTA(big, bigBase),
		pre:       pre,
		cache:     opts.CacheImplications,
		workset:   antichain.New[ta.StateID](pre),
		failCache: newNegCache(pre),
	}

	bigFinal := make([]ta.StateID, 0, len(big.FinalStates()))
	for _, f := range big.FinalStates() {
		bigFinal = append(bigFinal, f+bigBase)
	}

	var ok bool
	if opts.UseRecursion {
		ok = dc.downRecursive(smallRoots(small), bigFinal)
	} else {
		ok = dc.downWorklist(smallRoots(small), bigFinal)
	}
	if ok {
		return true, nil
	}
	return false, witnessForDownwardFailure(small, dc.failState)
}

// smallRoots returns every final state of small: the top-level inclusion
// obligation is "every term derivable to a final state of small is also
// derivable, in big, to some member of F_big".
func smallRoots(small *ta.Automaton) []ta.StateID {
	return small.FinalStates()
}

func (dc *downChecker) downRecursive(roots []ta.StateID, bigFinal []ta.StateID) bool {
	for _, q := range roots {
		if !dc.down(q, bigFinal) {
			dc.failed = true
			dc.failState = q
			return false
		}
	}
	return true
}

func (dc *downChecker) down(q ta.StateID, P []ta.StateID) bool {
	if dc.cache && dc.failCache.subsumes(q, P) {
		return false
	}
	key := []ta.StateID{q}
	if dc.workset.Contains(key, P) {
		return true // coinductive cycle assumption, subsumption-aware
	}
	h := dc.workset.Insert(q, P)
	defer dc.workset.Remove(h)

	ok := true
	dc.small.Transitions(q, func(sym ta.Symbol, tupleID ta.TupleID) {
		if !ok {
			return
		}
		children := dc.small.Arena().Children(tupleID)
		if !dc.coverable(sym, children, P) {
			ok = false
		}
	})

	if !ok && dc.cache {
		dc.failCache.record(q, P)
	}
	return ok
}

// coverable implements spec.md §4.7's existential-over-macro-sets step:
// gather every big transition on sym whose parent lies in P, then for
// each child position build the macro set of that position's projected
// children across all such transitions, and require down to hold there.
// No matching transition at all (relevant is empty) means the small
// transition cannot be covered.
func (dc *downChecker) coverable(sym ta.Symbol, children []ta.StateID, P []ta.StateID) bool {
	matched := matchedTrans(dc.bigTrans[sym], P)
	if len(matched) == 0 {
		return false
	}
	for i := range children {
		if !dc.down(children[i], projectPosition(matched, i)) {
			return false
		}
	}
	return true
}

// downWorklist is the non-recursive formulation of the same fixpoint:
// discover every (state, macro-set) obligation reachable from roots,
// assume all hold (the same coinductive starting point as downRecursive's
// cycle assumption), then repeatedly falsify any obligation whose
// coverage condition fails given the current assumption set until no
// further change — a greatest-fixpoint computation in the shape of
// package simulation's Run, traded here for the recursive call stack.
func (dc *downChecker) downWorklist(roots []ta.StateID, bigFinal []ta.StateID) bool {
	type obligation struct {
		q ta.StateID
		P []ta.StateID
	}
	seen := make(map[string]obligation)
	var order []string
	var queue []obligation

	push := func(q ta.StateID, P []ta.StateID) {
		k := downKey(q, P)
		if _, ok := seen[k]; !ok {
			seen[k] = obligation{q, P}
			order = append(order, k)
			queue = append(queue, obligation{q, P})
		}
	}
	for _, r := range roots {
		push(r, bigFinal)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		dc.small.Transitions(cur.q, func(sym ta.Symbol, tupleID ta.TupleID) {
			children := dc.small.Arena().Children(tupleID)
			matched := matchedTrans(dc.bigTrans[sym], cur.P)
			for i := range children {
				push(children[i], projectPosition(matched, i))
			}
		})
	}

	holds := make(map[string]bool, len(order))
	for _, k := range order {
		holds[k] = true
	}
	for changed := true; changed; {
		changed = false
		for _, k := range order {
			ob := seen[k]
			ok := true
			dc.small.Transitions(ob.q, func(sym ta.Symbol, tupleID ta.TupleID) {
				if !ok {
					return
				}
				children := dc.small.Arena().Children(tupleID)
				matched := matchedTrans(dc.bigTrans[sym], ob.P)
				if len(matched) == 0 {
					ok = false
					return
				}
				for i := range children {
					if !holds[downKey(children[i], projectPosition(matched, i))] {
						ok = false
						return
					}
				}
			})
			if holds[k] != ok {
				holds[k] = ok
				changed = true
			}
		}
	}

	for _, r := range roots {
		if !holds[downKey(r, bigFinal)] {
			dc.failed = true
			dc.failState = r
			return false
		}
	}
	return true
}

func witnessForDownwardFailure(small *ta.Automaton, fail ta.StateID) *Witness {
	b := ta.NewBuilder()
	id := b.AddNamedState(small.Name(fail))
	b.SetFinal(id)
	return &Witness{Automaton: b.Freeze()}
}
