package solver

import (
	"github.com/sirupsen/logrus"
)

// Status is the outcome of a solving attempt.
type Status int

const (
	// Indet means the solver hasn't (yet) determined satisfiability.
	Indet Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "INDETERMINATE"
	}
}

// Solver is the host CDCL-style solver the walker (package walk) plugs
// into. It owns the clause arena, variable activity/decision queue and
// phase memory described in spec section 6 ("External interfaces").
//
// Its own search procedure is intentionally a plain decision+BCP loop with
// chronological backtracking, not full conflict-driven clause learning:
// adding learnt clauses is out of scope for the walker subsystem, and the
// host only needs to reach a "stuck, hand the formula to local search"
// state, not resolve every conflict optimally. See DESIGN.md.
type Solver struct {
	NbVars int
	Active []bool

	// Values is the live three-valued assignment, indexed by Lit (length
	// 2*NbVars). The walker swaps this out for its own scratch vector for
	// the duration of a walk and restores it afterwards.
	Values []Value

	Phases     Phases
	Stable     bool
	Random     uint64
	Statistics Statistics

	EffortLimit EffortLimiter
	Terminator  Terminator
	PhaseTimer  PhaseTimer
	Warmup      Warmer

	// DecisionLimit bounds the host's own search: once NbDecisions reaches
	// it, Solve returns Indet instead of exhausting the full search tree,
	// the way a systematic-search round in front of a walk phase gives up
	// after a fixed number of decisions. Zero means unlimited (the host
	// search always runs to completion).
	DecisionLimit int64

	BinaryClauses   []BinaryClause
	Arena           []Clause
	LastIrredundant int // index of the last irredundant clause in Arena, -1 if none

	// Watches holds, per literal, the large-watch list the walker builds
	// during setup (compact counter_ref entries, see walk/registry.go). The
	// host never writes to it outside of dense-mode entry/exit.
	Watches [][]int32

	activity []float64
	polarity []bool
	queue    queue
	trail    []Lit

	status Status

	Log *logrus.Entry
}

// New builds a Solver from a parsed Problem.
func New(problem *Problem) *Solver {
	s := &Solver{
		NbVars:      problem.NbVars,
		Active:      make([]bool, problem.NbVars),
		Values:      make([]Value, 2*problem.NbVars),
		Phases:      newPhases(problem.NbVars),
		BinaryClauses: append([]BinaryClause(nil), problem.BinaryClauses...),
		Arena:       append([]Clause(nil), problem.Arena...),
		activity:    make([]float64, problem.NbVars),
		polarity:    make([]bool, problem.NbVars),
		EffortLimit: DefaultEffortLimiter,
		Warmup:      defaultWarmer{},
		Log:         logrus.WithField("component", "solver"),
	}
	s.PhaseTimer = PhaseTimer{
		Start: func(phase string) { s.Logger().Debugf("entering phase %s", phase) },
		Stop:  func(phase string) { s.Logger().Debugf("leaving phase %s", phase) },
	}
	s.LastIrredundant = len(s.Arena) - 1
	s.markActive()
	s.queue = newQueue(&s.activity)
	ints := make([]int, 0, problem.NbVars)
	for v := 0; v < problem.NbVars; v++ {
		if s.Active[v] {
			ints = append(ints, v)
		}
	}
	s.queue.build(ints)
	for _, lit := range problem.Units {
		switch s.Values[lit] {
		case -1:
			// Two contradicting unit clauses: the problem is unsatisfiable.
			s.status = Unsat
		case 0:
			s.assign(lit)
		}
	}
	return s
}

// markActive sets Active[v] for every variable referenced by a clause.
func (s *Solver) markActive() {
	mark := func(l Lit) { s.Active[l.Var()] = true }
	for _, bc := range s.BinaryClauses {
		mark(bc.A)
		mark(bc.B)
	}
	for _, c := range s.Arena {
		for _, l := range c.Lits {
			mark(l)
		}
	}
}

func (s *Solver) assign(l Lit) {
	s.Values[l] = 1
	s.Values[l.Negation()] = -1
	s.trail = append(s.trail, l)
}

func (s *Solver) unassign(l Lit) {
	s.Values[l] = 0
	s.Values[l.Negation()] = 0
}

// Logger returns s.Log, lazily defaulting it for solvers built as a bare
// struct literal (tests, mostly) instead of through New. The walker uses
// this (rather than the Log field directly) for the same reason.
func (s *Solver) Logger() *logrus.Entry {
	if s.Log == nil {
		s.Log = logrus.WithField("component", "solver")
	}
	return s.Log
}

// Model returns, for every variable, whether it is bound true. Valid only
// after Solve returned Sat.
func (s *Solver) Model() []bool {
	res := make([]bool, s.NbVars)
	for v := 0; v < s.NbVars; v++ {
		res[v] = s.Values[Var(v).SignedLit(true)] > 0
	}
	return res
}

func (s *Solver) varBumpActivity(v Var) {
	s.activity[v]++
	if s.queue.contains(int(v)) {
		s.queue.decrease(int(v))
	}
}

// chooseLit picks the next decision literal from the activity queue,
// preferring each var's saved polarity, or -1 if every active var is
// bound.
func (s *Solver) chooseLit() Lit {
	for !s.queue.empty() {
		v := Var(s.queue.removeMin())
		if s.Values[v.SignedLit(true)] == 0 {
			return v.SignedLit(s.polarity[v])
		}
	}
	return Lit(-1)
}
