// Package ta implements the explicit tree automaton data model: states,
// a ranked alphabet, hash-consed child tuples, and transitions stored per
// parent state, per spec.md §3. Each parent holds one list of (symbol,
// tuple) entries; transitions are not indexed by symbol, so a lookup by
// symbol scans the parent's list.
package ta

import "fmt"

// StateID uniquely identifies a state within one automaton. States are
// dense (0..States()-1); no ordering beyond the index is implied.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// SymbolID names a ranked-alphabet label. Labels are opaque; only Symbol
// (label, arity) pairs carry meaning for transition lookup.
type SymbolID uint32

// Symbol is a ranked-alphabet symbol: a label together with its arity.
// Two transitions with symbols of equal (Label, Arity) are transitions on
// the same symbol; a label used at two different arities denotes two
// distinct Symbols (spec.md §3: "arity of every tuple equals the arity of
// its symbol").
type Symbol struct {
	Label SymbolID
	Arity int
}

// transition is one parent-indexed entry: symbol plus the interned child
// tuple realizing it.
type transition struct {
	sym     Symbol
	tuple   TupleID
}

// Automaton is an explicit tree automaton A = (Q, Σ, Δ, F). It is built
// incrementally through Builder and, once frozen, is read-only: the
// inclusion and simulation algorithms only ever read an Automaton.
type Automaton struct {
	arena   *TupleArena
	byState [][]transition // byState[q] = transitions with parent q
	final   map[StateID]bool
	symbols map[Symbol]bool // declared or inferred ranked alphabet
	names   []string        // optional: state -> display name (debug/serialize)
}

// Arena returns the automaton's owned tuple arena. Callers needing to
// build a new automaton that shares no mutable state (e.g. a disjoint
// union) should create children with a fresh arena, never this one.
func (a *Automaton) Arena() *TupleArena { return a.arena }

// States returns the number of states.
func (a *Automaton) States() int { return len(a.byState) }

// IsFinal reports whether q is accepting.
func (a *Automaton) IsFinal(q StateID) bool { return a.final[q] }

// FinalStates returns every accepting state, in ascending ID order.
func (a *Automaton) FinalStates() []StateID {
	out := make([]StateID, 0, len(a.final))
	for q := StateID(0); int(q) < len(a.byState); q++ {
		if a.final[q] {
			out = append(out, q)
		}
	}
	return out
}

// Alphabet returns the declared or inferred ranked alphabet.
func (a *Automaton) Alphabet() []Symbol {
	out := make([]Symbol, 0, len(a.symbols))
	for s := range a.symbols {
		out = append(out, s)
	}
	return out
}

// Transitions calls f for every transition with parent q: the symbol and
// the child tuple's interned handle. Use Arena().Children(tuple) to read
// the children.
func (a *Automaton) Transitions(q StateID, f func(sym Symbol, tuple TupleID)) {
	for _, t := range a.byState[q] {
		f(t.sym, t.tuple)
	}
}

// TransitionsForSymbol calls f with the child tuple of every q-rooted
// transition labelled sym.
func (a *Automaton) TransitionsForSymbol(q StateID, sym Symbol, f func(tuple TupleID)) {
	for _, t := range a.byState[q] {
		if t.sym == sym {
			f(t.tuple)
		}
	}
}

// ChildOccurrence records that state Parent is reached via a transition on
// Sym whose child tuple Tuple has State at position Pos.
type ChildOccurrence struct {
	Sym    Symbol
	Tuple  TupleID
	Parent StateID
	Pos    int
}

// ChildIndex inverts the transition relation: for every state q it lists
// every (symbol, tuple, parent, position) triple in which q occurs as a
// child. Built on demand; the antichain inclusion deciders (C6/C7) use it
// to find "every transition where some q_i = q" (spec.md §4.6 step 2).
func (a *Automaton) ChildIndex() map[StateID][]ChildOccurrence {
	idx := make(map[StateID][]ChildOccurrence)
	for parent := StateID(0); int(parent) < len(a.byState); parent++ {
		for _, t := range a.byState[parent] {
			children := a.arena.Children(t.tuple)
			for pos, c := range children {
				idx[c] = append(idx[c], ChildOccurrence{
					Sym: t.sym, Tuple: t.tuple, Parent: parent, Pos: pos,
				})
			}
		}
	}
	return idx
}

// Name returns the display name of q, if one was recorded, or "" if none.
func (a *Automaton) Name(q StateID) string {
	if int(q) < len(a.names) {
		return a.names[q]
	}
	return ""
}

func (a *Automaton) String() string {
	return fmt.Sprintf("ta.Automaton{states: %d, symbols: %d, final: %d}",
		len(a.byState), len(a.symbols), len(a.final))
}
