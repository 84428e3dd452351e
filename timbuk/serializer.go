package timbuk

import (
	"fmt"
	"strings"
)

// Serialize renders d back to Timbuk text (spec.md §6.2: "the inverse
// Timbuk text"); state, symbol, final-state and transition order all
// follow d's own slice order, which ToAutomaton/FromAutomaton populate
// in dictionary insertion order.
func Serialize(d *Description) string {
	var b strings.Builder

	if len(d.Ops) > 0 {
		b.WriteString("Ops ")
		for i, sa := range d.Ops {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s:%d", sa.Name, sa.Arity)
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Automaton %s\n", d.Name)

	b.WriteString("States")
	for _, s := range d.States {
		b.WriteByte(' ')
		b.WriteString(s)
	}
	b.WriteByte('\n')

	b.WriteString("Final States")
	for _, s := range d.FinalStates {
		b.WriteByte(' ')
		b.WriteString(s)
	}
	b.WriteByte('\n')

	b.WriteString("Transitions\n")
	for _, t := range d.Transitions {
		if len(t.Children) == 0 {
			fmt.Fprintf(&b, "%s -> %s\n", t.Symbol, t.Parent)
			continue
		}
		fmt.Fprintf(&b, "%s(%s) -> %s\n", t.Symbol, strings.Join(t.Children, ", "), t.Parent)
	}

	return b.String()
}
