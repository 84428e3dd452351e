package incl

import "errors"

// ErrUnsupportedCombination reports a parameter-record combination the
// chosen representation cannot serve (spec.md §7 "logical error", e.g.
// congruence algorithm requested on tree automata).
var ErrUnsupportedCombination = errors.New("incl: unsupported algorithm/representation combination")

// UnimplementedError wraps ErrUnsupportedCombination with the offending
// detail, surfaced as the "unimplemented" result variant spec.md §9
// describes for pseudo-polymorphic exception flow.
type UnimplementedError struct {
	Detail string
}

func (e *UnimplementedError) Error() string { return "incl: unimplemented: " + e.Detail }

func (e *UnimplementedError) Unwrap() error { return ErrUnsupportedCombination }
