package fa

import "testing"

func TestAutomaton_BasicShape(t *testing.T) {
	a := New()
	q0 := a.AddState()
	q1 := a.AddState()
	a.SetInitial(q0)
	a.SetFinal(q1)
	a.AddTransition(q0, 0, q1)

	if a.States() != 2 {
		t.Errorf("States() = %d, want 2", a.States())
	}
	if len(a.Initial()) != 1 || a.Initial()[0] != q0 {
		t.Errorf("Initial() = %v, want [%d]", a.Initial(), q0)
	}
	if !a.IsFinal(q1) || a.IsFinal(q0) {
		t.Error("IsFinal disagrees with SetFinal(q1)")
	}
}

func TestAutomaton_AddTransitionIsIdempotent(t *testing.T) {
	a := New()
	q0 := a.AddState()
	q1 := a.AddState()
	a.AddTransition(q0, 0, q1)
	a.AddTransition(q0, 0, q1)

	count := 0
	a.Successors(q0, func(Symbol, StateID) { count++ })
	if count != 1 {
		t.Errorf("duplicate AddTransition produced %d edges, want 1", count)
	}
}

func TestAutomaton_SetInitialIsIdempotent(t *testing.T) {
	a := New()
	q0 := a.AddState()
	a.SetInitial(q0)
	a.SetInitial(q0)
	if len(a.Initial()) != 1 {
		t.Errorf("Initial() = %v, want exactly one entry", a.Initial())
	}
}

func TestAutomaton_PostSetFiltersBySymbol(t *testing.T) {
	a := New()
	q0 := a.AddState()
	q1 := a.AddState()
	q2 := a.AddState()
	a.AddTransition(q0, 0, q1)
	a.AddTransition(q0, 1, q2)

	got := a.PostSet(q0, 0, nil)
	if len(got) != 1 || got[0] != q1 {
		t.Errorf("PostSet(q0, 0) = %v, want [%d]", got, q1)
	}
}

func TestAutomaton_AlphabetListsDistinctSymbolsOnce(t *testing.T) {
	a := New()
	q0 := a.AddState()
	q1 := a.AddState()
	a.AddTransition(q0, 5, q1)
	a.AddTransition(q1, 5, q0)
	a.AddTransition(q1, 7, q0)

	alpha := a.Alphabet()
	if len(alpha) != 2 {
		t.Errorf("Alphabet() = %v, want 2 distinct symbols", alpha)
	}
}
