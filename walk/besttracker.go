package walk

import "github.com/crillab/walksat/solver"

// pushFlipped records one flip onto the trail, implementing the trail's
// state-machine transitions. It must run after flipLiteral (so w.current
// already reflects the flip) and before updateBest.
func (w *Walker) pushFlipped(l solver.Lit) {
	if w.best == bestInvalid {
		return
	}
	if len(w.trail) == w.trailCap {
		if w.best > 0 {
			w.flushTrail()
		} else {
			w.trail = w.trail[:0]
			w.best = bestInvalid
			return
		}
	}
	w.trail = append(w.trail, int32(l))
}

// flushTrail writes trail[0:best] into phases.saved, then compacts the
// trail down to its remaining suffix and resets best to 0.
func (w *Walker) flushTrail() {
	s := w.host
	for _, raw := range w.trail[:w.best] {
		l := solver.Lit(raw)
		if l.IsPositive() {
			s.Phases.Saved[l.Var()] = 1
		} else {
			s.Phases.Saved[l.Var()] = -1
		}
	}
	kept := copy(w.trail, w.trail[w.best:])
	w.trail = w.trail[:kept]
	w.best = 0
}

// saveAllValues copies the walker's entire current assignment into
// phases.saved, used when the trail has been invalidated.
func (w *Walker) saveAllValues() {
	s := w.host
	for v := 0; v < s.NbVars; v++ {
		if !s.Active[v] {
			continue
		}
		lit := solver.Var(v).SignedLit(true)
		if s.Values[lit] > 0 {
			s.Phases.Saved[v] = 1
		} else if s.Values[lit] < 0 {
			s.Phases.Saved[v] = -1
		}
	}
}

// updateBest handles an improvement: called after pushFlipped whenever
// w.current < w.minimum.
func (w *Walker) updateBest() {
	w.minimum = w.current
	w.host.Statistics.WalkImproved++
	w.host.Logger().Debugf("walk: new minimum %d unsatisfied clauses", w.minimum)
	if w.best == bestInvalid {
		w.saveAllValues()
		w.best = 0
		return
	}
	w.best = int32(len(w.trail))
}

// saveFinalMinimum writes the best assignment found this round back into
// phases.saved, if it improved on the pre-walk state and hasn't already
// been flushed there.
func (w *Walker) saveFinalMinimum() {
	if w.minimum == w.initial {
		return
	}
	if w.best == 0 || w.best == bestInvalid {
		return
	}
	s := w.host
	s.Logger().Debugf("walk: exporting minimum %d (from initial %d)", w.minimum, w.initial)
	for _, raw := range w.trail[:w.best] {
		l := solver.Lit(raw)
		if l.IsPositive() {
			s.Phases.Saved[l.Var()] = 1
		} else {
			s.Phases.Saved[l.Var()] = -1
		}
	}
}
