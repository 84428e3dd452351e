// Package lts implements the labelled transition system view (spec.md §3
// "LTS view") that the simulation engine (package simulation) refines, and
// the shared per-(label, state) in-degree counter (Counter). The simulation
// engine reads the counter only to skip labels that carry no edge; it does
// not use it for per-block splitter bookkeeping. A tree or word automaton is translated into
// an LTS by package encode; lts itself knows nothing about trees or rank.
package lts

// LTS is a labelled transition system over a dense state space
// 0..NumStates()-1 and a dense label space 0..NumLabels()-1. post[a][q]
// and pre[a][q] are kept as separate adjacency maps so both directions of
// the refinement (successors for "does q reach B", predecessors for
// "who reaches into B") are O(out-degree) instead of a full scan.
type LTS struct {
	numStates int
	post      []map[int][]int // post[label][state] -> targets
	pre       []map[int][]int // pre[label][state] -> sources
	labelPre  []map[int]int     // labelPre[state][label] -> refcount of labels with an incoming edge into state
	counter   *Counter
	built     bool
}

// New returns an LTS with numStates states and no edges.
func New(numStates int) *LTS {
	return &LTS{
		numStates: numStates,
		labelPre:  make([]map[int]int, numStates),
	}
}

// NumStates returns the number of states.
func (l *LTS) NumStates() int { return l.numStates }

// AddEdge records src --label--> dst. Must be called before Init.
func (l *LTS) AddEdge(label, src, dst int) {
	l.ensureLabel(label)
	for _, t := range l.post[label][src] {
		if t == dst {
			return // idempotent
		}
	}
	l.post[label][src] = append(l.post[label][src], dst)
	l.pre[label][dst] = append(l.pre[label][dst], src)

	if l.labelPre[dst] == nil {
		l.labelPre[dst] = make(map[int]int)
	}
	l.labelPre[dst][label]++
}

func (l *LTS) ensureLabel(label int) {
	for label >= len(l.post) {
		l.post = append(l.post, nil)
		l.pre = append(l.pre, nil)
	}
	if l.post[label] == nil {
		l.post[label] = make(map[int][]int)
		l.pre[label] = make(map[int][]int)
	}
}

// NumLabels returns one past the largest label ever passed to AddEdge.
func (l *LTS) NumLabels() int { return len(l.post) }

// Post returns the targets reachable from state via label.
func (l *LTS) Post(label, state int) []int {
	if label >= len(l.post) || l.post[label] == nil {
		return nil
	}
	return l.post[label][state]
}

// Pre returns the sources reaching state via label.
func (l *LTS) Pre(label, state int) []int {
	if label >= len(l.pre) || l.pre[label] == nil {
		return nil
	}
	return l.pre[label][state]
}

// HasIncoming reports whether state has at least one label-edge into it,
// for any label in labels. Backed by the label-pre smart-set so this is
// O(len(labels)) rather than a scan of all labels.
func (l *LTS) HasIncoming(state int, labels []int) bool {
	m := l.labelPre[state]
	if m == nil {
		return false
	}
	for _, lab := range labels {
		if m[lab] > 0 {
			return true
		}
	}
	return false
}

// Init materialises the per-(label, state) in-degree into the shared
// counter, to be called once all edges are inserted (spec.md §4.3: "After
// insertion bulk ends, init() materialises per-state per-label in-degree
// into the shared counter").
func (l *LTS) Init() {
	if l.built {
		return
	}
	l.counter = NewCounter()
	for label := range l.post {
		for _, targets := range l.post[label] {
			for _, t := range targets {
				l.counter.Incr(label, t)
			}
		}
	}
	l.built = true
}

// Counter returns the shared in-degree counter. Valid only after Init.
func (l *LTS) Counter() *Counter { return l.counter }
