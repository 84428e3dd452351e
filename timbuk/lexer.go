package timbuk

import (
	"strconv"
	"strings"
)

// stripComment removes a trailing `# ...` comment, per spec.md §6.1's
// grammar sample annotating transition lines with "# nullary".
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// parseSymbolArity parses one Ops token, "<name>:<arity>".
func parseSymbolArity(tok string) (SymbolArity, error) {
	i := strings.LastIndexByte(tok, ':')
	if i < 0 {
		return SymbolArity{}, &ParseError{Msg: "Ops entry " + strconv.Quote(tok) + " missing ':arity'", Err: ErrMalformedLine}
	}
	name, arityStr := tok[:i], tok[i+1:]
	if name == "" {
		return SymbolArity{}, &ParseError{Msg: "Ops entry " + strconv.Quote(tok) + " has an empty symbol name", Err: ErrMalformedLine}
	}
	arity, err := strconv.Atoi(arityStr)
	if err != nil || arity < 0 {
		return SymbolArity{}, &ParseError{Msg: "Ops entry " + strconv.Quote(tok) + " has a malformed arity", Err: ErrMalformedLine}
	}
	return SymbolArity{Name: name, Arity: arity}, nil
}

// parseTransitionLine parses one Transitions-section rule: either
// "<sym> -> <state>" or "<sym>(<c1>, <c2>, ...) -> <state>".
func parseTransitionLine(line string) (TransitionRule, error) {
	lhs, parent, ok := cutArrow(line)
	if !ok {
		return TransitionRule{}, &ParseError{Msg: "transition " + strconv.Quote(line) + " has no '->'", Err: ErrMalformedLine}
	}
	parent = strings.TrimSpace(parent)
	if parent == "" {
		return TransitionRule{}, &ParseError{Msg: "transition " + strconv.Quote(line) + " names no parent state", Err: ErrMalformedLine}
	}

	open := strings.IndexByte(lhs, '(')
	if open < 0 {
		sym := strings.TrimSpace(lhs)
		if sym == "" {
			return TransitionRule{}, &ParseError{Msg: "transition " + strconv.Quote(line) + " names no symbol", Err: ErrMalformedLine}
		}
		return TransitionRule{Symbol: sym, Parent: parent}, nil
	}

	if !strings.HasSuffix(strings.TrimSpace(lhs), ")") {
		return TransitionRule{}, &ParseError{Msg: "transition " + strconv.Quote(line) + " has an unclosed '('", Err: ErrMalformedLine}
	}
	sym := strings.TrimSpace(lhs[:open])
	inner := strings.TrimSpace(lhs[open+1:])
	inner = strings.TrimSuffix(inner, ")")

	var children []string
	if inner != "" {
		for _, c := range strings.Split(inner, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				return TransitionRule{}, &ParseError{Msg: "transition " + strconv.Quote(line) + " has an empty child", Err: ErrMalformedLine}
			}
			children = append(children, c)
		}
	}
	return TransitionRule{Children: children, Symbol: sym, Parent: parent}, nil
}

// cutArrow splits line on its first "->".
func cutArrow(line string) (before, after string, found bool) {
	i := strings.Index(line, "->")
	if i < 0 {
		return "", "", false
	}
	return line[:i], line[i+2:], true
}
