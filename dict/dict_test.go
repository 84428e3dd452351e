package dict

import "testing"

type fakeID uint32

func TestTwoWay_InternIsStable(t *testing.T) {
	d := New[fakeID]()
	a := d.Intern("q0")
	b := d.Intern("q1")
	again := d.Intern("q0")

	if a != again {
		t.Errorf("re-interning q0 produced a new id: %d vs %d", a, again)
	}
	if a == b {
		t.Error("distinct names must get distinct ids")
	}
	if d.Name(a) != "q0" || d.Name(b) != "q1" {
		t.Errorf("Name round-trip failed: Name(a)=%q Name(b)=%q", d.Name(a), d.Name(b))
	}
}

func TestTwoWay_LookupDoesNotIntern(t *testing.T) {
	d := New[fakeID]()
	if _, ok := d.Lookup("missing"); ok {
		t.Error("Lookup found a name that was never interned")
	}
	if d.Len() != 0 {
		t.Errorf("Lookup must not intern, got Len()=%d", d.Len())
	}
}

func TestTwoWay_NamesPreservesInsertionOrder(t *testing.T) {
	d := New[fakeID]()
	d.Intern("c")
	d.Intern("a")
	d.Intern("b")

	got := d.Names()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTwoWay_NamePanicsOnUnknownID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Name to panic on an unassigned id")
		}
	}()
	d := New[fakeID]()
	d.Name(42)
}
