package vata

import (
	"testing"

	"github.com/coregx/vata/incl"
)

const unionTestA = `Ops a:0 b:1
Automaton left
States p0 p1
Final States p1
Transitions
a -> p0
b(p0) -> p1
`

const unionTestB = `Ops a:0 c:1
Automaton right
States r0 r1
Final States r1
Transitions
a -> r0
c(r0) -> r1
`

func TestLoadSaveRoundTrip(t *testing.T) {
	a, err := LoadTA(unionTestA)
	if err != nil {
		t.Fatalf("LoadTA: %v", err)
	}
	if a.States() != 2 {
		t.Errorf("States() = %d, want 2", a.States())
	}
}

func TestUnionAcceptsEitherLanguage(t *testing.T) {
	a, err := LoadTA(unionTestA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadTA(unionTestB)
	if err != nil {
		t.Fatal(err)
	}

	u := Union(a, b)

	okA, _, err := CheckInclusion(a, u, incl.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !okA {
		t.Error("L(a) should be included in L(union(a, b))")
	}

	okB, _, err := CheckInclusion(b, u, incl.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if !okB {
		t.Error("L(b) should be included in L(union(a, b))")
	}
}

func TestRemoveUnreachableShrinksDeadStates(t *testing.T) {
	src := `Ops a:0
Automaton x
States q0 q1 q2
Final States q0
Transitions
a -> q0
`
	a, err := LoadTA(src)
	if err != nil {
		t.Fatal(err)
	}
	reduced := RemoveUnreachable(a)
	if reduced.States() != 1 {
		t.Errorf("RemoveUnreachable left %d states, want 1", reduced.States())
	}
}
