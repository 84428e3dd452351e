package ta

// Builder constructs an Automaton incrementally. A Builder owns exactly one
// TupleArena; Freeze hands the finished Automaton that same arena.
type Builder struct {
	arena   *TupleArena
	byState [][]transition
	final   map[StateID]bool
	symbols map[Symbol]bool
	names   []string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		arena:   NewTupleArena(),
		final:   make(map[StateID]bool),
		symbols: make(map[Symbol]bool),
	}
}

// AddState allocates a fresh state and returns its ID.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.byState))
	b.byState = append(b.byState, nil)
	b.names = append(b.names, "")
	return id
}

// AddNamedState allocates a fresh state carrying a display name, used by
// the Timbuk front end so serialisation can reproduce identifiers.
func (b *Builder) AddNamedState(name string) StateID {
	id := b.AddState()
	b.names[id] = name
	return id
}

// AddTransition records children --sym--> parent. len(children) must equal
// sym.Arity. Duplicate transitions (same symbol and child tuple, same
// parent) are idempotent, per spec.md §6.1.
func (b *Builder) AddTransition(sym Symbol, children []StateID, parent StateID) error {
	if sym.Arity != len(children) {
		return &BuildError{Message: "arity mismatch", State: parent}
	}
	tuple := b.arena.Intern(children)
	b.symbols[sym] = true
	for _, t := range b.byState[parent] {
		if t.sym == sym && t.tuple == tuple {
			return nil // idempotent no-op
		}
	}
	b.byState[parent] = append(b.byState[parent], transition{sym: sym, tuple: tuple})
	return nil
}

// SetFinal marks q as accepting.
func (b *Builder) SetFinal(q StateID) {
	b.final[q] = true
}

// DeclareSymbol records sym as part of the ranked alphabet even if no
// transition uses it yet (the Timbuk "Ops" header case).
func (b *Builder) DeclareSymbol(sym Symbol) {
	b.symbols[sym] = true
}

// Freeze finalises construction and returns the immutable Automaton. The
// Builder must not be reused afterward; the returned Automaton owns the
// Builder's arena and state slices.
func (b *Builder) Freeze() *Automaton {
	return &Automaton{
		arena:   b.arena,
		byState: b.byState,
		final:   b.final,
		symbols: b.symbols,
		names:   b.names,
	}
}
