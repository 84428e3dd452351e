package ta

import (
	"testing"

	"github.com/coregx/vata/relation"
)

// identityPlusPair builds a reflexive relation over n states with i and j
// additionally related in both directions, so BuildClasses merges them
// into one ⟷-class.
func identityPlusPair(n, i, j int) *relation.BinaryRelation {
	r := relation.NewBinaryRelation(n)
	for q := 0; q < n; q++ {
		r.Set(q, q, true)
	}
	r.Set(i, j, true)
	r.Set(j, i, true)
	return r
}

func TestRemoveUnreachable_DropsUnreachableStates(t *testing.T) {
	symA := Symbol{Label: 0, Arity: 0}
	symB := Symbol{Label: 1, Arity: 1}

	b := NewBuilder()
	q0 := b.AddNamedState("q0")
	q1 := b.AddNamedState("q1")
	unreachable := b.AddNamedState("ghost")
	_ = unreachable
	must(t, b.AddTransition(symA, nil, q0))
	must(t, b.AddTransition(symB, []StateID{q0}, q1))
	b.SetFinal(q1)
	a := b.Freeze()

	reduced := RemoveUnreachable(a)
	if reduced.States() != 2 {
		t.Fatalf("States() = %d, want 2 (ghost should be dropped)", reduced.States())
	}
	if !accepts(reduced, term{sym: symB, kids: []term{leaf(symA)}}) {
		t.Error("RemoveUnreachable must preserve the reachable language")
	}
}

func TestRemoveUseless_DropsDeadEndStates(t *testing.T) {
	symA := Symbol{Label: 0, Arity: 0}
	symB := Symbol{Label: 1, Arity: 1}
	symC := Symbol{Label: 2, Arity: 1}

	b := NewBuilder()
	q0 := b.AddNamedState("q0")
	q1 := b.AddNamedState("q1") // final, useful
	deadEnd := b.AddNamedState("dead")
	must(t, b.AddTransition(symA, nil, q0))
	must(t, b.AddTransition(symB, []StateID{q0}, q1))
	// deadEnd is reachable (from q0 via symC) but can never reach a final
	// state: it must be dropped by RemoveUseless but survive
	// RemoveUnreachable.
	must(t, b.AddTransition(symC, []StateID{q0}, deadEnd))
	b.SetFinal(q1)
	a := b.Freeze()

	unreachableOnly := RemoveUnreachable(a)
	if unreachableOnly.States() != 3 {
		t.Errorf("RemoveUnreachable should keep the reachable dead end, got %d states", unreachableOnly.States())
	}

	useless := RemoveUseless(a)
	if useless.States() != 2 {
		t.Fatalf("RemoveUseless should drop the dead end, got %d states", useless.States())
	}
	if !accepts(useless, term{sym: symB, kids: []term{leaf(symA)}}) {
		t.Error("RemoveUseless must preserve the accepting language")
	}
}

func TestCollapse_MergesEquivalentStates(t *testing.T) {
	symA := Symbol{Label: 0, Arity: 0}
	symB := Symbol{Label: 1, Arity: 1}

	b := NewBuilder()
	q0 := b.AddNamedState("q0")
	q1 := b.AddNamedState("q1")
	q2 := b.AddNamedState("q2") // equivalent to q1: also final, also reached by symA then symB
	must(t, b.AddTransition(symA, nil, q0))
	must(t, b.AddTransition(symB, []StateID{q0}, q1))
	must(t, b.AddTransition(symB, []StateID{q0}, q2))
	b.SetFinal(q1)
	b.SetFinal(q2)
	a := b.Freeze()

	rel := identityPlusPair(a.States(), int(q1), int(q2))
	collapsed := Collapse(a, rel)

	if collapsed.States() != 2 {
		t.Errorf("Collapse should merge q1 and q2 into one class, got %d states", collapsed.States())
	}
	if !accepts(collapsed, term{sym: symB, kids: []term{leaf(symA)}}) {
		t.Error("Collapse must preserve the language of the quotiented automaton")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
