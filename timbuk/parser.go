package timbuk

import (
	"fmt"
	"strings"
)

// Parse reads a Timbuk description from src (spec.md §6.1). Whitespace
// separates tokens; identifiers are any non-whitespace run. Duplicate
// transitions are preserved here (idempotence is enforced later, by
// ta.Builder.AddTransition) rather than filtered at parse time.
func Parse(src string) (*Description, error) {
	km, err := newKeywordMatcher()
	if err != nil {
		return nil, err
	}

	d := &Description{}
	sawTransitions := false

	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if !sawTransitions {
			switch km.classify([]byte(line)) {
			case kindOps:
				for _, tok := range strings.Fields(strings.TrimSpace(line[len("Ops"):])) {
					sa, err := parseSymbolArity(tok)
					if err != nil {
						return nil, withLine(err, lineNo)
					}
					d.Ops = append(d.Ops, sa)
				}
				continue
			case kindAutomaton:
				d.Name = strings.TrimSpace(line[len("Automaton"):])
				continue
			case kindStates:
				d.States = append(d.States, strings.Fields(strings.TrimSpace(line[len("States"):]))...)
				continue
			case kindFinalStates:
				d.FinalStates = append(d.FinalStates, strings.Fields(strings.TrimSpace(line[len("Final States"):]))...)
				continue
			case kindTransitions:
				sawTransitions = true
				continue
			default:
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unrecognised line %q", line), Err: ErrMalformedLine}
			}
		}

		rule, err := parseTransitionLine(line)
		if err != nil {
			return nil, withLine(err, lineNo)
		}
		d.Transitions = append(d.Transitions, rule)
	}

	if !sawTransitions {
		return nil, &ParseError{Msg: "missing Transitions section", Err: ErrMalformedLine}
	}
	return d, nil
}

func withLine(err error, line int) error {
	if pe, ok := err.(*ParseError); ok && pe.Line == 0 {
		pe.Line = line
		return pe
	}
	return err
}
