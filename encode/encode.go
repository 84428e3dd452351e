// Package encode translates explicit tree automata (package ta) and word
// automata (package fa) into the labelled transition system that package
// simulation computes over, per spec.md §4.5.
//
// Acceptance (tree-automaton finality, NFA initial-state membership) has
// no direct counterpart in a plain LTS, so every translator here encodes
// it the same way: a reserved label is self-looped onto every state that
// must be told apart from the rest. A state carrying that self-loop can
// never be simulated by one missing it (its sentinel edge would be
// unmatched), and conversely two states that both carry it are free to
// relate on their ordinary behaviour — which is exactly the compatibility
// spec.md §4.4 step 1 wants from "initial partition from labels/finality",
// achieved without special-casing acceptance inside package simulation
// itself.
package encode

import "github.com/coregx/vata/lts"

// addSentinel self-loops label onto every state in states.
func addSentinel(l *lts.LTS, label int, states []int) {
	for _, s := range states {
		l.AddEdge(label, s, s)
	}
}
