// Package dict provides a two-way name↔ID dictionary, used only by the
// Timbuk front end to translate between the textual identifiers a
// description names states and symbols by and the dense numeric IDs the
// core automaton packages operate on.
//
// A TwoWay is owned by whichever call builds it (a timbuk.Parser, a
// serialiser) — never a package-level variable — per spec.md §9's
// guidance to "replace static/global dictionaries by explicit factory
// objects".
package dict

import "github.com/coregx/vata/internal/conv"

// ID is a dense, insertion-ordered identifier assigned to a name the
// first time it is seen.
type ID uint32

// TwoWay maps names to IDs and back. T is the caller's own ID type (e.g.
// ta.StateID); Intern narrows through conv so an out-of-range index is a
// loud panic rather than silent wraparound, and Name panics on an unknown
// ID.
type TwoWay[T ~uint32] struct {
	byName map[string]T
	byID   []string
}

// New returns an empty dictionary.
func New[T ~uint32]() *TwoWay[T] {
	return &TwoWay[T]{byName: make(map[string]T)}
}

// Intern returns name's ID, assigning the next dense ID on first sight.
func (d *TwoWay[T]) Intern(name string) T {
	if id, ok := d.byName[name]; ok {
		return id
	}
	id := T(conv.IntToUint32(len(d.byID)))
	d.byName[name] = id
	d.byID = append(d.byID, name)
	return id
}

// Lookup returns name's ID without interning, reporting whether it was
// already known.
func (d *TwoWay[T]) Lookup(name string) (T, bool) {
	id, ok := d.byName[name]
	return id, ok
}

// Name returns the name interned for id. Panics if id was never
// assigned by this dictionary — an invariant violation, not a
// recoverable input error (the caller always controls which IDs it asks
// for here).
func (d *TwoWay[T]) Name(id T) string {
	i := int(id)
	if i < 0 || i >= len(d.byID) {
		panic("dict: id not present in dictionary")
	}
	return d.byID[i]
}

// Len returns the number of distinct names interned so far.
func (d *TwoWay[T]) Len() int { return len(d.byID) }

// Names returns every interned name in insertion order (spec.md §6.2:
// "state order in output is the insertion order").
func (d *TwoWay[T]) Names() []string {
	out := make([]string, len(d.byID))
	copy(out, d.byID)
	return out
}
