package encode

import (
	"github.com/coregx/vata/fa"
	"github.com/coregx/vata/lts"
)

const (
	faFinalSentinel      = 0
	faInitialSentinel    = 1
	faNonInitialSentinel = 2
	faLabelBase          = 3
)

// Forward translates a word automaton directly into an LTS for forward
// simulation (spec.md §4.5 "NFA translator"): each transition q -a-> r
// becomes edge q --a--> r, finality is the usual reserved-label sentinel,
// and initial states are put in their own partition via two more reserved
// sentinel labels (one looped on initial states, one on the rest), so
// initial states can only simulate/be-simulated by other initial states.
func Forward(a *fa.Automaton) *lts.LTS {
	n := a.States()
	l := lts.New(n)

	labelOf := make(map[fa.Symbol]int)
	for _, sym := range a.Alphabet() {
		if _, ok := labelOf[sym]; !ok {
			labelOf[sym] = faLabelBase + len(labelOf)
		}
	}

	for q := 0; q < n; q++ {
		a.Successors(fa.StateID(q), func(sym fa.Symbol, r fa.StateID) {
			l.AddEdge(labelOf[sym], q, int(r))
		})
	}

	final := a.FinalStates()
	finalInts := make([]int, len(final))
	for i, f := range final {
		finalInts[i] = int(f)
	}
	addSentinel(l, faFinalSentinel, finalInts)

	initial := a.Initial()
	initInts := make([]int, len(initial))
	isInitial := make(map[int]bool, len(initial))
	for i, s := range initial {
		initInts[i] = int(s)
		isInitial[int(s)] = true
	}
	addSentinel(l, faInitialSentinel, initInts)

	var nonInitInts []int
	for q := 0; q < n; q++ {
		if !isInitial[q] {
			nonInitInts = append(nonInitInts, q)
		}
	}
	addSentinel(l, faNonInitialSentinel, nonInitInts)

	l.Init()
	return l
}
