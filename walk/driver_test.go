package walk

import (
	"testing"

	"github.com/crillab/walksat/solver"
)

// TestWalkTrivialOneClause is spec scenario 1: a single clause (x1), with
// an initial phase of -1, must flip x1 and export saved[x1] = +1.
func TestWalkTrivialOneClause(t *testing.T) {
	pb := &solver.Problem{
		NbVars: 1,
		Arena:  []solver.Clause{{Lits: []solver.Lit{solver.IntToLit(1)}}},
	}
	s := solver.New(pb)
	s.Phases.Saved[0] = -1

	Walk(s, Options{})

	if got := s.Phases.Saved[0]; got != 1 {
		t.Fatalf("Phases.Saved[0] = %d, want 1", got)
	}
	if s.Statistics.Walks != 1 {
		t.Fatalf("Statistics.Walks = %d, want 1", s.Statistics.Walks)
	}
	if s.Statistics.WalkImproved == 0 {
		t.Fatalf("expected at least one recorded improvement")
	}
}

// TestWalkZeroUnsatAtInitNoFlips is the "zero unsatisfied at init" boundary
// behavior: the round must exit immediately without touching phases.
func TestWalkZeroUnsatAtInitNoFlips(t *testing.T) {
	pb := &solver.Problem{
		NbVars: 1,
		Arena:  []solver.Clause{{Lits: []solver.Lit{solver.IntToLit(1)}}},
	}
	s := solver.New(pb)
	s.Phases.Saved[0] = 1 // already satisfies the clause

	before := append([]solver.Value(nil), s.Phases.Saved...)
	Walk(s, Options{})

	if s.Phases.Saved[0] != before[0] {
		t.Fatalf("phases changed despite zero initial unsat: got %v, want unchanged %v", s.Phases.Saved, before)
	}
}

// TestWalkPigeonStyleUnsat is spec scenario 2: {(x), (y), (¬x ∨ ¬y)} with
// x=y=false initially is 2-unsatisfied; after a modest step budget the
// walker should reach at most 1 unsatisfied clause (the satisfiable
// two-clause projection) and export an improved assignment.
func TestWalkPigeonStyleUnsat(t *testing.T) {
	pb, err := solver.ParseSlice([][]int{{1}, {2}, {-1, -2}})
	if err != nil {
		t.Fatalf("ParseSlice: %v", err)
	}
	// Route the two unit clauses into the arena directly so the walker
	// sees them as ordinary (unsatisfied) clauses rather than the host
	// resolving them as top-level facts before the walk even starts.
	pb2 := &solver.Problem{
		NbVars: 2,
		Arena: []solver.Clause{
			{Lits: []solver.Lit{solver.IntToLit(1)}},
			{Lits: []solver.Lit{solver.IntToLit(2)}},
		},
		BinaryClauses: pb.BinaryClauses,
	}
	s := solver.New(pb2)
	s.Phases.Saved[0] = -1
	s.Phases.Saved[1] = -1
	s.EffortLimit = func(*solver.Solver) int64 { return 20 }

	Walk(s, Options{})

	x := s.Phases.Saved[0] > 0
	y := s.Phases.Saved[1] > 0
	unsat := 0
	for _, sat := range []bool{x, y, !x || !y} {
		if !sat {
			unsat++
		}
	}
	if unsat > 1 {
		t.Fatalf("unsatisfied clause count = %d after walking, want <= 1", unsat)
	}
}

// TestWalkableRefusesOversizedProblem is the refuse path: when
// LastIrredundant exceeds MaxRef, Walkable must report false.
func TestWalkableRefusesOversizedProblem(t *testing.T) {
	s := &solver.Solver{
		NbVars:        1,
		BinaryClauses: make([]solver.BinaryClause, 0),
	}
	s.LastIrredundant = MaxRef + 1

	if Walkable(s) {
		t.Fatalf("Walkable must return false when LastIrredundant exceeds MaxRef")
	}
}
