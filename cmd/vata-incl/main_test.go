package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const smallTimbuk = `Ops a:0 b:2
Automaton small
States q0 q1
Final States q1
Transitions
a -> q0
b(q0, q0) -> q1
`

const biggerTimbuk = `Ops a:0 b:2
Automaton big
States q0 q1
Final States q1
Transitions
a -> q0
b(q0, q0) -> q1
b(q1, q1) -> q1
`

func TestRun_ExitsZeroWhenIncluded(t *testing.T) {
	dir := t.TempDir()
	small := writeFixture(t, dir, "small.timbuk", smallTimbuk)
	big := writeFixture(t, dir, "big.timbuk", biggerTimbuk)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	code := run([]string{small, big}, w, w)
	w.Close()
	if code != exitYes {
		t.Errorf("run() = %d, want %d", code, exitYes)
	}
}

func TestRun_ExitsOneWhenNotIncluded(t *testing.T) {
	dir := t.TempDir()
	big := writeFixture(t, dir, "big.timbuk", biggerTimbuk)
	small := writeFixture(t, dir, "small.timbuk", smallTimbuk)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// Reverse direction: L(big) is not included in L(small) since big
	// accepts the extra loop-extended trees small never derives.
	code := run([]string{big, small}, w, w)
	w.Close()
	if code != exitNo {
		t.Errorf("run() = %d, want %d", code, exitNo)
	}
}

func TestRun_UsageErrorOnWrongArgCount(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	code := run([]string{"onlyone.timbuk"}, w, w)
	if code != exitUsage {
		t.Errorf("run() = %d, want %d", code, exitUsage)
	}
}

func TestRun_RuntimeErrorOnMissingFile(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	code := run([]string{"/does/not/exist/a.timbuk", "/does/not/exist/b.timbuk"}, w, w)
	if code != exitError {
		t.Errorf("run() = %d, want %d", code, exitError)
	}
}

func TestRun_UsageErrorOnInvalidFlagValue(t *testing.T) {
	dir := t.TempDir()
	small := writeFixture(t, dir, "small.timbuk", smallTimbuk)
	big := writeFixture(t, dir, "big.timbuk", biggerTimbuk)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	code := run([]string{"-direction=sideways", small, big}, w, w)
	if code != exitUsage {
		t.Errorf("run() = %d, want %d", code, exitUsage)
	}
}
