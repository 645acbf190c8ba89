package walk

import (
	"testing"

	"github.com/crillab/walksat/solver"
)

func newTestWalker(nbVars int) *Walker {
	s := &solver.Solver{
		NbVars: nbVars,
		Active: make([]bool, nbVars),
		Values: make([]solver.Value, 2*nbVars),
		Phases: solver.Phases{
			Saved:  make([]solver.Value, nbVars),
			Target: make([]solver.Value, nbVars),
		},
	}
	for v := range s.Active {
		s.Active[v] = true
	}
	return &Walker{host: s, trailCap: nbVars/4 + 1}
}

func TestTrailInvalidateOnCap(t *testing.T) {
	w := newTestWalker(4) // trailCap = 4/4 + 1 = 2
	w.minimum, w.current = 5, 5

	l0 := solver.IntToLit(1)
	l1 := solver.IntToLit(2)
	l2 := solver.IntToLit(3)

	w.pushFlipped(l0) // trail = [l0], best stays 0
	if len(w.trail) != 1 || w.best != 0 {
		t.Fatalf("after first flip: trail=%v best=%d, want len 1, best 0", w.trail, w.best)
	}

	w.pushFlipped(l1) // trail = [l0, l1], at cap, best still 0
	if len(w.trail) != 2 || w.best != 0 {
		t.Fatalf("after second flip: trail=%v best=%d, want len 2, best 0", w.trail, w.best)
	}

	w.pushFlipped(l2) // cap reached with best == 0: invalidate
	if w.best != bestInvalid {
		t.Fatalf("best = %d, want bestInvalid after invalidation", w.best)
	}
	if len(w.trail) != 0 {
		t.Fatalf("trail = %v, want empty after invalidation", w.trail)
	}

	// A later push while invalid must be a no-op.
	w.pushFlipped(l0)
	if w.best != bestInvalid || len(w.trail) != 0 {
		t.Fatalf("push after invalidation must be ignored, got trail=%v best=%d", w.trail, w.best)
	}
}

func TestUpdateBestAfterInvalidationCopiesFullAssignment(t *testing.T) {
	w := newTestWalker(4)
	w.minimum, w.current = 5, 3
	w.best = bestInvalid

	s := w.host
	s.Values[solver.IntToLit(1)] = 1  // x1 true
	s.Values[solver.IntToLit(-1)] = -1
	s.Values[solver.IntToLit(2)] = -1 // x2 false
	s.Values[solver.IntToLit(-2)] = 1
	s.Values[solver.IntToLit(3)] = 1 // x3 true
	s.Values[solver.IntToLit(-3)] = -1

	w.updateBest()

	if w.minimum != 3 {
		t.Fatalf("minimum = %d, want 3", w.minimum)
	}
	if w.best != 0 {
		t.Fatalf("best = %d, want 0 after recovering from invalid", w.best)
	}
	if s.Phases.Saved[0] != 1 {
		t.Fatalf("Phases.Saved[0] = %d, want 1", s.Phases.Saved[0])
	}
	if s.Phases.Saved[1] != -1 {
		t.Fatalf("Phases.Saved[1] = %d, want -1", s.Phases.Saved[1])
	}
	if s.Phases.Saved[2] != 1 {
		t.Fatalf("Phases.Saved[2] = %d, want 1", s.Phases.Saved[2])
	}
}

func TestPushFlippedAndFlushAtCapWithValidBest(t *testing.T) {
	w := newTestWalker(4) // trailCap = 2
	w.minimum, w.current = 5, 4
	w.best = 0

	l0 := solver.IntToLit(1)
	l1 := solver.IntToLit(-2)
	l2 := solver.IntToLit(3)

	w.pushFlipped(l0) // trail len 0 < cap: push. trail=[l0]
	w.current = 3
	w.updateBest() // improvement: best = len(trail) = 1

	if w.best != 1 {
		t.Fatalf("best = %d, want 1 after improving with trail=[l0]", w.best)
	}

	w.pushFlipped(l1) // trail len 1 < cap: push. trail=[l0,l1]
	if len(w.trail) != 2 || w.best != 1 {
		t.Fatalf("after second push: trail=%v best=%d, want len 2, best 1", w.trail, w.best)
	}

	// trail len (2) now equals cap: this push must flush trail[:best]
	// first, shift the remainder down, reset best, then push.
	w.pushFlipped(l2)
	if w.best != 0 {
		t.Fatalf("best = %d, want 0 after flush", w.best)
	}
	if len(w.trail) != 2 || w.trail[0] != int32(l1) || w.trail[1] != int32(l2) {
		t.Fatalf("trail = %v, want [l1, l2] after flush+shift+push", w.trail)
	}
	if w.host.Phases.Saved[l0.Var()] != 1 {
		t.Fatalf("flush should have written l0's phase into Phases.Saved")
	}
}

func TestSaveFinalMinimumNoImprovement(t *testing.T) {
	w := newTestWalker(2)
	w.initial = 3
	w.minimum = 3
	w.best = 0
	w.host.Phases.Saved[0] = -1

	w.saveFinalMinimum()

	if w.host.Phases.Saved[0] != -1 {
		t.Fatalf("saveFinalMinimum must not touch phases when minimum == initial")
	}
}

func TestSaveFinalMinimumWritesTrailPrefix(t *testing.T) {
	w := newTestWalker(2)
	w.initial = 3
	w.minimum = 1
	w.best = 1
	w.trail = []int32{int32(solver.IntToLit(1)), int32(solver.IntToLit(-2))}

	w.saveFinalMinimum()

	if w.host.Phases.Saved[0] != 1 {
		t.Fatalf("Phases.Saved[0] = %d, want 1 (only trail[:best] should be written)", w.host.Phases.Saved[0])
	}
	if w.host.Phases.Saved[1] != 0 {
		t.Fatalf("Phases.Saved[1] = %d, want 0 (trail[1] is past best, must be skipped)", w.host.Phases.Saved[1])
	}
}
