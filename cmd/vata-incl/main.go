// Command vata-incl decides tree-automaton language inclusion between
// two Timbuk descriptions (spec.md §6.5).
//
// Usage:
//
//	vata-incl [flags] small.timbuk big.timbuk
//
// Exit codes: 0 (L(small) ⊆ L(big)), 1 (not included), 2 (usage error),
// 3 (runtime error: malformed Timbuk, or an internal invariant failed).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/vata"
	"github.com/coregx/vata/dict"
	"github.com/coregx/vata/incl"
	"github.com/coregx/vata/ta"
	"github.com/coregx/vata/timbuk"
)

const (
	exitYes   = 0
	exitNo    = 1
	exitUsage = 2
	exitError = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "vata-incl: internal invariant violated: %v\n", r)
			code = exitError
		}
	}()

	fs := flag.NewFlagSet("vata-incl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	direction := fs.String("direction", "upward", "upward | downward")
	algorithm := fs.String("algorithm", "antichains", "antichains | congruence")
	useSimulation := fs.Bool("use_simulation", false, "compute a simulation preorder and use it")
	useRecursion := fs.Bool("use_recursion", true, "use the recursive (vs worklist) downward decider")
	cacheImplications := fs.Bool("cache_implications", false, "cache non-implications in the downward decider")
	order := fs.String("order", "lifo", "lifo | fifo (congruence worklist order)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: vata-incl [flags] small.timbuk big.timbuk")
		return exitUsage
	}

	p, err := parseParams(*direction, *algorithm, *useSimulation, *useRecursion, *cacheImplications, *order)
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitUsage
	}

	smallText, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitError
	}
	bigText, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitError
	}

	small, err := vata.LoadTA(string(smallText))
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitError
	}
	big, err := vata.LoadTA(string(bigText))
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitError
	}

	ok, witness, err := vata.CheckInclusion(small, big, p)
	if err != nil {
		fmt.Fprintln(stderr, "vata-incl:", err)
		return exitError
	}

	if ok {
		fmt.Fprintln(stdout, "YES")
		return exitYes
	}
	fmt.Fprintln(stdout, "NO")
	if witness != nil && witness.Automaton != nil {
		fmt.Fprintln(stdout, serializeWitness(witness.Automaton))
	}
	return exitNo
}

// serializeWitness renders a witness automaton to Timbuk text. Witness
// automata carry no original symbol names (they are reconstructed purely
// from ta.Symbol label/arity pairs), so symbols are printed as "symN".
func serializeWitness(a *ta.Automaton) string {
	syms := dict.New[ta.SymbolID]()
	for _, sym := range a.Alphabet() {
		for syms.Len() <= int(sym.Label) {
			syms.Intern(fmt.Sprintf("sym%d", syms.Len()))
		}
	}
	return timbuk.Serialize(timbuk.FromAutomaton(a, "witness", syms))
}

func parseParams(direction, algorithm string, useSimulation, useRecursion, cacheImplications bool, order string) (incl.Params, error) {
	p := incl.DefaultParams()

	switch direction {
	case "upward":
		p.Direction = incl.DirectionUpward
	case "downward":
		p.Direction = incl.DirectionDownward
	default:
		return p, fmt.Errorf("unknown -direction %q", direction)
	}

	switch algorithm {
	case "antichains":
		p.Algorithm = incl.AlgorithmAntichains
	case "congruence":
		p.Algorithm = incl.AlgorithmCongruence
	default:
		return p, fmt.Errorf("unknown -algorithm %q", algorithm)
	}

	switch order {
	case "lifo":
		p.Order = incl.OrderLIFO
	case "fifo":
		p.Order = incl.OrderFIFO
	default:
		return p, fmt.Errorf("unknown -order %q", order)
	}

	p.UseSimulation = useSimulation
	p.UseRecursion = useRecursion
	p.CacheImplications = cacheImplications
	return p, nil
}
