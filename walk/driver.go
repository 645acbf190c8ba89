package walk

import "github.com/crillab/walksat/solver"

// Options configures one call to Walk.
type Options struct {
	// Warmup, if true, skips the stable-mode target phase when importing
	// the starting assignment, preferring saved/INITIAL_PHASE instead.
	Warmup bool
}

// Walkable implements kissat_walking: the walker declines to run if either
// bound would overflow the 31-bit counter_ref it relies on.
func Walkable(s *solver.Solver) bool {
	if s.LastIrredundant > MaxRef {
		return false
	}
	if len(s.BinaryClauses) > MaxRef {
		return false
	}
	return true
}

// Walk implements kissat_walk: runs one local-search round over the
// host's irredundant clauses and exports the best assignment found back
// into the host's phase memory. It is a no-op, beyond bookkeeping, if
// Walkable reports false.
func Walk(s *solver.Solver, opts Options) {
	if !Walkable(s) {
		return
	}

	if opts.Warmup && s.Warmup != nil {
		s.Warmup.Warmup(s)
	}

	s.PhaseTimer.Enter("walk")
	defer s.PhaseTimer.Leave("walk")

	s.Statistics.Walks++
	s.EnterDenseMode()
	defer s.ResumeSparseMode()

	w := newWalker(s, opts.Warmup)
	defer w.release()
	w.initLimit()

	s.Logger().Debugf("walk %d: starting round with %d unsatisfied clauses, step budget %d", s.Statistics.Walks, w.minimum, w.limit)
	startSteps := s.Statistics.WalkSteps
	w.runRound()
	w.saveFinalMinimum()
	s.Logger().Debugf("walk %d: finished after %d steps, %d unsatisfied clauses remaining", s.Statistics.Walks, s.Statistics.WalkSteps-startSteps, w.minimum)
}

// runRound steps while there remain unsatisfied clauses, the step budget
// isn't exhausted, and the host hasn't asked to stop.
func (w *Walker) runRound() {
	s := w.host
	for w.minimum > 0 {
		if s.Statistics.WalkSteps >= w.limit {
			return
		}
		if s.Terminator != nil && s.Terminator() {
			return
		}
		l := w.pickLiteral()
		w.flipLiteral(l)
		w.pushFlipped(l)
		if w.current < w.minimum {
			w.updateBest()
		}
	}
}
