package timbuk

import (
	"strings"
	"testing"

	"github.com/coregx/vata/dict"
	"github.com/coregx/vata/ta"
)

const sampleS4 = `Ops a:0 b:2
Automaton small
States q0 q1
Final States q1
Transitions
a -> q0
b(q0, q0) -> q1
`

func TestParse_ParsesAllSections(t *testing.T) {
	d, err := Parse(sampleS4)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Name != "small" {
		t.Errorf("Name = %q, want \"small\"", d.Name)
	}
	if len(d.Ops) != 2 || d.Ops[0] != (SymbolArity{"a", 0}) || d.Ops[1] != (SymbolArity{"b", 2}) {
		t.Errorf("Ops = %v", d.Ops)
	}
	if len(d.States) != 2 {
		t.Errorf("States = %v", d.States)
	}
	if len(d.FinalStates) != 1 || d.FinalStates[0] != "q1" {
		t.Errorf("FinalStates = %v", d.FinalStates)
	}
	if len(d.Transitions) != 2 {
		t.Fatalf("Transitions = %v", d.Transitions)
	}
	if d.Transitions[1].Symbol != "b" || len(d.Transitions[1].Children) != 2 {
		t.Errorf("Transitions[1] = %+v", d.Transitions[1])
	}
}

func TestParse_RejectsMissingTransitions(t *testing.T) {
	_, err := Parse("Automaton x\nStates q0\nFinal States q0\n")
	if err == nil {
		t.Fatal("expected an error for a description with no Transitions section")
	}
}

func TestParse_RejectsUnrecognisedLine(t *testing.T) {
	_, err := Parse("Bogus header\nTransitions\n")
	if err == nil {
		t.Fatal("expected an error for an unrecognised header line")
	}
}

func TestToAutomaton_BuildsExpectedShape(t *testing.T) {
	d, err := Parse(sampleS4)
	if err != nil {
		t.Fatal(err)
	}
	a, syms, err := ToAutomaton(d)
	if err != nil {
		t.Fatalf("ToAutomaton: %v", err)
	}
	if a.States() != 2 {
		t.Errorf("States() = %d, want 2", a.States())
	}
	if len(a.FinalStates()) != 1 {
		t.Errorf("FinalStates() = %v", a.FinalStates())
	}
	if syms.Len() != 2 {
		t.Errorf("symbol dictionary has %d entries, want 2", syms.Len())
	}
}

func TestToAutomaton_InfersArityWhenOpsOmitted(t *testing.T) {
	src := "Automaton x\nStates q0 q1\nFinal States q1\nTransitions\na -> q0\nb(q0, q0) -> q1\n"
	d, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Ops) != 0 {
		t.Fatalf("expected no Ops parsed, got %v", d.Ops)
	}
	a, _, err := ToAutomaton(d)
	if err != nil {
		t.Fatalf("ToAutomaton with inferred arities: %v", err)
	}
	if len(a.Alphabet()) != 2 {
		t.Errorf("Alphabet() = %v, want 2 inferred symbols", a.Alphabet())
	}
}

func TestToAutomaton_RejectsArityMismatchUnderInference(t *testing.T) {
	src := "Automaton x\nStates q0 q1 q2\nFinal States q2\nTransitions\na -> q0\na(q0) -> q1\n"
	d, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ToAutomaton(d); err == nil {
		t.Fatal("expected an arity-mismatch error when 'a' is used at arity 0 and 1")
	}
}

func TestToAutomaton_RejectsUndeclaredState(t *testing.T) {
	src := "Ops a:0\nAutomaton x\nStates q0\nFinal States q0\nTransitions\na -> ghost\n"
	d, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := ToAutomaton(d); err == nil {
		t.Fatal("expected an unknown-state error for a transition parent never declared under States")
	}
}

func TestRoundTrip_ParseSerializeToAutomatonIsomorphic(t *testing.T) {
	d, err := Parse(sampleS4)
	if err != nil {
		t.Fatal(err)
	}
	a1, syms1, err := ToAutomaton(d)
	if err != nil {
		t.Fatal(err)
	}

	serialized := Serialize(FromAutomaton(a1, "small", syms1))

	d2, err := Parse(serialized)
	if err != nil {
		t.Fatalf("re-parsing serialised output: %v\n%s", err, serialized)
	}
	a2, _, err := ToAutomaton(d2)
	if err != nil {
		t.Fatalf("re-building automaton from serialised output: %v", err)
	}

	if a1.States() != a2.States() {
		t.Errorf("States() changed across round-trip: %d vs %d", a1.States(), a2.States())
	}
	if len(a1.FinalStates()) != len(a2.FinalStates()) {
		t.Errorf("FinalStates() count changed across round-trip: %v vs %v", a1.FinalStates(), a2.FinalStates())
	}
	if !strings.Contains(serialized, "Transitions") {
		t.Errorf("serialised output missing Transitions header:\n%s", serialized)
	}
}

func TestFromAutomaton_SynthesizesNamesForUnnamedStates(t *testing.T) {
	b := ta.NewBuilder()
	q0 := b.AddState() // no name
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.AddTransition(ta.Symbol{Label: 0, Arity: 0}, nil, q0))
	b.SetFinal(q0)
	a := b.Freeze()

	syms := dict.New[ta.SymbolID]()
	syms.Intern("a")

	out := FromAutomaton(a, "anon", syms)
	if len(out.States) != 1 || out.States[0] != "q0" {
		t.Errorf("expected a synthesized name \"q0\", got %v", out.States)
	}
}
