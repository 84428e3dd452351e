package timbuk

import (
	"fmt"
	"sort"

	"github.com/coregx/vata/dict"
	"github.com/coregx/vata/ta"
)

// ErrUndeclaredSymbol indicates a transition used a symbol Ops never
// declared (spec.md §7 "undeclared symbol").
var ErrUndeclaredSymbol = ErrNoTranslation

// ToAutomaton translates a parsed Description into a ta.Automaton,
// returning the symbol dictionary alongside it so a later Serialize can
// recover the original symbol names (ta.Automaton itself only retains
// opaque SymbolIDs). Per spec.md §9 "Timbuk grammar ambiguities", an
// omitted Ops header is handled by fully inferring every symbol's arity
// from its transitions, consistently, rather than rejecting the input.
func ToAutomaton(d *Description) (*ta.Automaton, *dict.TwoWay[ta.SymbolID], error) {
	ops := d.Ops
	if len(ops) == 0 {
		inferred, err := inferArities(d.Transitions)
		if err != nil {
			return nil, nil, err
		}
		ops = inferred
	}

	arity := make(map[string]int, len(ops))
	for _, sa := range ops {
		arity[sa.Name] = sa.Arity
	}

	states := dict.New[ta.StateID]()
	syms := dict.New[ta.SymbolID]()
	b := ta.NewBuilder()

	for _, name := range d.States {
		if _, dup := states.Lookup(name); dup {
			continue
		}
		id := states.Intern(name)
		if got := b.AddNamedState(name); got != id {
			panic("timbuk: state dictionary and builder fell out of sync")
		}
	}

	for _, sa := range ops {
		label := syms.Intern(sa.Name)
		b.DeclareSymbol(ta.Symbol{Label: label, Arity: sa.Arity})
	}

	for _, name := range d.FinalStates {
		id, ok := states.Lookup(name)
		if !ok {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("final state %q was never declared under States", name), Err: ErrUnknownState}
		}
		b.SetFinal(id)
	}

	for _, t := range d.Transitions {
		want, ok := arity[t.Symbol]
		if !ok {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("symbol %q used in a transition but not declared", t.Symbol), Err: ErrUndeclaredSymbol}
		}
		if want != len(t.Children) {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("symbol %q used at arity %d, declared arity %d", t.Symbol, len(t.Children), want), Err: ErrArityMismatch}
		}

		children := make([]ta.StateID, len(t.Children))
		for i, name := range t.Children {
			id, ok := states.Lookup(name)
			if !ok {
				return nil, nil, &ParseError{Msg: fmt.Sprintf("state %q was never declared under States", name), Err: ErrUnknownState}
			}
			children[i] = id
		}
		parent, ok := states.Lookup(t.Parent)
		if !ok {
			return nil, nil, &ParseError{Msg: fmt.Sprintf("state %q was never declared under States", t.Parent), Err: ErrUnknownState}
		}

		label := syms.Intern(t.Symbol)
		if err := b.AddTransition(ta.Symbol{Label: label, Arity: want}, children, parent); err != nil {
			return nil, nil, &ParseError{Msg: err.Error(), Err: ErrArityMismatch}
		}
	}

	return b.Freeze(), syms, nil
}

// inferArities derives an Ops table from usage, one entry per
// first-seen symbol, erroring if the same name is later used at a
// different arity (spec.md §9: infer "fully ... consistently").
func inferArities(trans []TransitionRule) ([]SymbolArity, error) {
	seen := make(map[string]int)
	var order []string
	for _, t := range trans {
		arity := len(t.Children)
		if prev, ok := seen[t.Symbol]; ok {
			if prev != arity {
				return nil, &ParseError{Msg: fmt.Sprintf("symbol %q inferred at arity %d but also used at arity %d", t.Symbol, prev, arity), Err: ErrArityMismatch}
			}
			continue
		}
		seen[t.Symbol] = arity
		order = append(order, t.Symbol)
	}
	out := make([]SymbolArity, len(order))
	for i, name := range order {
		out[i] = SymbolArity{Name: name, Arity: seen[name]}
	}
	return out, nil
}

// FromAutomaton renders a into a Description, using syms to recover
// symbol names (see ToAutomaton) and a's own recorded state names,
// falling back to a synthesized "qN" for states an algorithm produced
// without names (e.g. Complement's subset states).
func FromAutomaton(a *ta.Automaton, name string, syms *dict.TwoWay[ta.SymbolID]) *Description {
	d := &Description{Name: name}

	stateName := func(q ta.StateID) string {
		if n := a.Name(q); n != "" {
			return n
		}
		return fmt.Sprintf("q%d", q)
	}

	for q := 0; q < a.States(); q++ {
		d.States = append(d.States, stateName(ta.StateID(q)))
	}
	for _, f := range a.FinalStates() {
		d.FinalStates = append(d.FinalStates, stateName(f))
	}
	alphabet := a.Alphabet()
	sort.Slice(alphabet, func(i, j int) bool {
		if alphabet[i].Label != alphabet[j].Label {
			return alphabet[i].Label < alphabet[j].Label
		}
		return alphabet[i].Arity < alphabet[j].Arity
	})
	for _, sym := range alphabet {
		d.Ops = append(d.Ops, SymbolArity{Name: syms.Name(sym.Label), Arity: sym.Arity})
	}

	for q := 0; q < a.States(); q++ {
		a.Transitions(ta.StateID(q), func(sym ta.Symbol, tupleID ta.TupleID) {
			kids := a.Arena().Children(tupleID)
			children := make([]string, len(kids))
			for i, c := range kids {
				children[i] = stateName(c)
			}
			d.Transitions = append(d.Transitions, TransitionRule{
				Children: children,
				Symbol:   syms.Name(sym.Label),
				Parent:   stateName(ta.StateID(q)),
			})
		})
	}
	return d
}
