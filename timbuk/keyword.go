package timbuk

import "github.com/coregx/ahocorasick"

// lineKind classifies a Timbuk line by its leading keyword.
type lineKind int

const (
	kindOther lineKind = iota
	kindOps
	kindAutomaton
	kindStates
	kindFinalStates
	kindTransitions
)

// keywords lists every section header the grammar recognises (spec.md
// §6.1). "Final States" is listed before "States" (the other entries are
// in no particular order); Aho-Corasick reports the earliest-starting
// match at position 0 regardless of pattern length, so the two can never
// collide here since no line starts with both.
var keywords = []struct {
	text string
	kind lineKind
}{
	{"Final States", kindFinalStates},
	{"Automaton", kindAutomaton},
	{"Transitions", kindTransitions},
	{"States", kindStates},
	{"Ops", kindOps},
}

// keywordMatcher recognises which, if any, section header a line opens
// with. Built once per parse and reused across every line, mirroring the
// teacher's own Aho-Corasick reuse for large literal alternations: here
// the "alternation" is the fixed five-keyword set rather than a regex's
// literal factoring, but the dispatch mechanism — build once, `Find` per
// input — is the same.
type keywordMatcher struct {
	auto *ahocorasick.Automaton
}

func newKeywordMatcher() (*keywordMatcher, error) {
	b := ahocorasick.NewBuilder()
	for _, k := range keywords {
		b.AddPattern([]byte(k.text))
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &keywordMatcher{auto: auto}, nil
}

// classify reports which keyword opens line, if any. A header must match
// at offset 0; a match elsewhere in the line (e.g. "States" inside a
// state named "FinalStatesX") does not count as a header.
func (m *keywordMatcher) classify(line []byte) lineKind {
	match := m.auto.Find(line, 0)
	if match == nil || match.Start != 0 {
		return kindOther
	}
	text := string(line[match.Start:match.End])
	for _, k := range keywords {
		if k.text == text {
			return k.kind
		}
	}
	return kindOther
}
