// Command walksat reads a DIMACS CNF file, runs the host decision
// procedure, and falls back to stochastic local search when the decision
// procedure exhausts its own budget without resolving the formula.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/walksat/bf"
	"github.com/crillab/walksat/solver"
	"github.com/crillab/walksat/walk"
)

var (
	walkEffort    int64
	decisionLimit int64
	stable        bool
	warmup        bool
	seed          int64
	verbose       bool
	pigeonholes   int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walksat [file.cnf]",
		Short: "Solve a DIMACS CNF formula, falling back to stochastic local search",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	flags := cmd.Flags()
	flags.Int64Var(&walkEffort, "walk-effort", 0, "extra walk_steps budget per round (0 uses the default effort policy)")
	flags.Int64Var(&decisionLimit, "decision-limit", 0, "give up systematic search and fall back to local search after this many decisions (0 disables the limit)")
	flags.BoolVar(&stable, "stable", false, "start the walker in stable mode (prefer phases.target over phases.saved)")
	flags.BoolVar(&warmup, "warmup", false, "run the warm-up collaborator before walking")
	flags.Int64Var(&seed, "seed", 0, "PRNG seed; XORed with the walk count the way the host does internally")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVar(&pigeonholes, "pigeonhole", 0, "ignore the file argument and instead solve the unsatisfiable N-hole, N+1-pigeon problem, built with the bf DSL")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var pb *solver.Problem
	switch {
	case pigeonholes > 0:
		var err error
		pb, err = pigeonholeProblem(pigeonholes)
		if err != nil {
			return errors.Wrap(err, "could not build pigeonhole problem")
		}
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "could not open input file")
		}
		defer f.Close()

		pb, err = solver.ParseDIMACS(f)
		if err != nil {
			return errors.Wrap(err, "could not parse DIMACS input")
		}
	default:
		return errors.New("either a DIMACS file or --pigeonhole must be given")
	}

	s := solver.New(pb)
	s.Log = log.WithField("component", "solver")
	s.Stable = stable
	s.Random = uint64(seed)
	s.DecisionLimit = decisionLimit
	if walkEffort > 0 {
		s.EffortLimit = func(*solver.Solver) int64 { return walkEffort }
	}

	status := s.Solve()
	if status == solver.Indet && walk.Walkable(s) {
		walk.Walk(s, walk.Options{Warmup: warmup})
	}

	if verbose {
		pretty.Println(s.Statistics)
	}

	switch status {
	case solver.Sat:
		fmt.Println("s SATISFIABLE")
		printModel(s.Model())
	case solver.Unsat:
		fmt.Println("s UNSATISFIABLE")
	default:
		fmt.Println("s UNKNOWN")
		printModel(s.Model())
	}
	return nil
}

// pigeonholeProblem builds the classic unsatisfiable "holes+1 pigeons, holes
// holes" formula with the bf DSL (one variable per pigeon/hole pair: every
// pigeon sits in at least one hole, no hole holds two pigeons) and hands the
// resulting DIMACS text to ParseDIMACS, the same path a hand-written .cnf
// file takes.
func pigeonholeProblem(holes int) (*solver.Problem, error) {
	pigeons := holes + 1
	in := func(p, h int) bf.Formula { return bf.Var(fmt.Sprintf("p%d_h%d", p, h)) }

	var clauses []bf.Formula
	for p := 1; p <= pigeons; p++ {
		var atLeastOne []bf.Formula
		for h := 1; h <= holes; h++ {
			atLeastOne = append(atLeastOne, in(p, h))
		}
		clauses = append(clauses, bf.Or(atLeastOne...))
	}
	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= pigeons; p1++ {
			for p2 := p1 + 1; p2 <= pigeons; p2++ {
				clauses = append(clauses, bf.Or(bf.Not(in(p1, h)), bf.Not(in(p2, h))))
			}
		}
	}

	var buf bytes.Buffer
	if err := bf.Dimacs(bf.And(clauses...), &buf); err != nil {
		return nil, errors.Wrap(err, "could not render pigeonhole formula to DIMACS")
	}
	return solver.ParseDIMACS(&buf)
}

func printModel(model []bool) {
	fmt.Print("v")
	for v, val := range model {
		lit := v + 1
		if !val {
			lit = -lit
		}
		fmt.Printf(" %d", lit)
	}
	fmt.Println(" 0")
}
