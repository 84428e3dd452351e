package fa

import (
	"errors"
	"fmt"
)

// Common NFA construction/use errors.
var (
	// ErrInvalidState indicates a StateID outside the automaton's range.
	ErrInvalidState = errors.New("fa: invalid state")

	// ErrUnknownSymbol indicates a symbol not present in the automaton's
	// alphabet was used where a fixed alphabet is required.
	ErrUnknownSymbol = errors.New("fa: unknown symbol")
)

// BuildError reports a failure while constructing an automaton.
type BuildError struct {
	Message string
	State   StateID
}

func (e *BuildError) Error() string {
	if e.State != InvalidState {
		return fmt.Sprintf("fa: build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("fa: build error: %s", e.Message)
}
