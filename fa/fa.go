// Package fa implements the explicit finite word automaton (NFA) data
// model used by the inclusion deciders and forward-simulation translator.
//
// An Automaton is built and modified in place through AddState,
// AddTransition, SetInitial and SetFinal. Transitions are stored per
// source state as one list of (symbol, target) edges in insertion order,
// so the simulation translator (package encode) and the inclusion
// deciders (package incl) can iterate a state's outgoing edges without
// rescanning the whole transition set. They are not indexed by symbol:
// PostSet scans every edge leaving the state.
package fa

import "fmt"

// StateID uniquely identifies a state within one automaton. IDs are dense
// (0..States()-1); no ordering beyond the index is implied.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// Symbol is an opaque input symbol. Word automata do not distinguish
// structure within a symbol (contrast ta.Symbol, which carries an arity).
type Symbol uint32

// edge is a single (symbol, target) pair stored under a source state.
type edge struct {
	sym Symbol
	dst StateID
}

// Automaton is an explicit NFA: Q = {0, ..., n-1}, Σ implicit in the symbols
// used by Δ, Δ given by per-state outgoing edges, I the initial states, F
// the accepting states.
type Automaton struct {
	out     [][]edge // out[q] = edges leaving q, in insertion order
	initial []StateID
	final   map[StateID]bool
}

// New returns an empty automaton with no states.
func New() *Automaton {
	return &Automaton{final: make(map[StateID]bool)}
}

// AddState allocates a fresh state and returns its ID.
func (a *Automaton) AddState() StateID {
	id := StateID(len(a.out))
	a.out = append(a.out, nil)
	return id
}

// AddTransition records q -a-> r. Duplicate transitions are idempotent.
func (a *Automaton) AddTransition(q StateID, sym Symbol, r StateID) {
	for _, e := range a.out[q] {
		if e.sym == sym && e.dst == r {
			return
		}
	}
	a.out[q] = append(a.out[q], edge{sym: sym, dst: r})
}

// SetInitial marks q as an initial state.
func (a *Automaton) SetInitial(q StateID) {
	for _, s := range a.initial {
		if s == q {
			return
		}
	}
	a.initial = append(a.initial, q)
}

// SetFinal marks q as accepting.
func (a *Automaton) SetFinal(q StateID) {
	a.final[q] = true
}

// States returns the number of states.
func (a *Automaton) States() int { return len(a.out) }

// Initial returns the initial state set. The returned slice must not be
// mutated by the caller.
func (a *Automaton) Initial() []StateID { return a.initial }

// IsFinal reports whether q is accepting.
func (a *Automaton) IsFinal(q StateID) bool { return a.final[q] }

// FinalStates returns every accepting state.
func (a *Automaton) FinalStates() []StateID {
	out := make([]StateID, 0, len(a.final))
	for q := range a.final {
		out = append(out, q)
	}
	return out
}

// Successors calls f for every (symbol, target) edge leaving q.
func (a *Automaton) Successors(q StateID, f func(Symbol, StateID)) {
	for _, e := range a.out[q] {
		f(e.sym, e.dst)
	}
}

// PostSet returns the set of symbol-successors of q reachable via sym,
// appended to dst (dst may be nil). Order follows insertion order.
func (a *Automaton) PostSet(q StateID, sym Symbol, dst []StateID) []StateID {
	for _, e := range a.out[q] {
		if e.sym == sym {
			dst = append(dst, e.dst)
		}
	}
	return dst
}

// Alphabet returns the set of distinct symbols used by any transition,
// in first-seen order.
func (a *Automaton) Alphabet() []Symbol {
	seen := make(map[Symbol]bool)
	var syms []Symbol
	for _, edges := range a.out {
		for _, e := range edges {
			if !seen[e.sym] {
				seen[e.sym] = true
				syms = append(syms, e.sym)
			}
		}
	}
	return syms
}

func (a *Automaton) String() string {
	return fmt.Sprintf("fa.Automaton{states: %d, initial: %d, final: %d}",
		len(a.out), len(a.initial), len(a.final))
}
