// Package timbuk implements the line-oriented Timbuk text format (spec.md
// §6.1/§6.2): a parser into an in-memory Description, a serialiser back
// to text, and translation to/from package ta's Automaton via a two-way
// name↔ID dictionary (package dict).
//
// This front end is a fixed collaborator, not part of the decision
// engine: its job is getting a tree automaton in and out of text, with
// no influence on how inclusion or simulation is computed.
package timbuk

// SymbolArity is one entry of an Ops header: a symbol name together with
// its declared arity.
type SymbolArity struct {
	Name  string
	Arity int
}

// TransitionRule is one parsed line of a Transitions section: Children
// is nil for a nullary rule (`<sym> -> <state>`).
type TransitionRule struct {
	Children []string
	Symbol   string
	Parent   string
}

// Description is the in-memory record spec.md §6.2 names: "{name,
// symbol-arity set, state set, final-state set, transition set}". Ops is
// nil when the source omitted the header; ToAutomaton then infers
// arities from Transitions (spec.md §9).
type Description struct {
	Name        string
	Ops         []SymbolArity
	States      []string
	FinalStates []string
	Transitions []TransitionRule
}
