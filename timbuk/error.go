package timbuk

import (
	"errors"
	"fmt"
)

// Common Timbuk parsing errors (spec.md §7 "input error": malformed
// Timbuk, undeclared symbol, arity mismatch — reported, no partial
// output).
var (
	// ErrMalformedLine indicates a line the lexer could not classify or
	// the parser could not fit into the current section's grammar.
	ErrMalformedLine = errors.New("timbuk: malformed line")

	// ErrUnknownState indicates a transition or Final States entry named
	// a state never declared under States.
	ErrUnknownState = errors.New("timbuk: unknown state")

	// ErrArityMismatch indicates a transition's child count disagreed
	// with its symbol's declared (Ops) or previously inferred arity.
	ErrArityMismatch = errors.New("timbuk: arity mismatch")

	// ErrNoTranslation mirrors ta.ErrNoTranslation for the text-format
	// boundary (spec.md §6.1: omitting Ops can later surface as "no
	// translation for symbol of arity k" once inclusion operations need
	// a fixed alphabet this description never declared).
	ErrNoTranslation = errors.New("timbuk: no translation for symbol")
)

// ParseError reports a failure while lexing or parsing a Timbuk
// description, with the 1-based source line it happened on.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("timbuk: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("timbuk: %s", e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
