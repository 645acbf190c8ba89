package solver

// decide assigns l as a new decision, bumps its variable's activity and
// records the phase (classic phase-saving: later decisions on the same
// variable prefer whatever polarity last held).
func (s *Solver) decide(l Lit) {
	s.assign(l)
	v := l.Var()
	s.polarity[v] = l.IsPositive()
	if l.IsPositive() {
		s.Phases.Saved[v] = 1
	} else {
		s.Phases.Saved[v] = -1
	}
	s.varBumpActivity(v)
	s.Statistics.NbDecisions++
}

// backtrackTo undoes every trail entry from index mark onward, restoring
// the corresponding variables to the decision queue.
func (s *Solver) backtrackTo(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		l := s.trail[i]
		s.unassign(l)
		s.queue.insert(int(l.Var()))
	}
	s.trail = s.trail[:mark]
}

// propagateAll performs naive boolean constraint propagation to a
// fixpoint by repeatedly rescanning binary clauses and the arena. It
// reports true on conflict. This is deliberately not a watched-literal
// scheme: the host's own search is a minimal decision+BCP procedure
// (no clause learning, see solver.go doc comment), so the simplicity is
// worth more here than propagation speed — the watch lists this module
// maintains (Solver.Watches) are reserved for the walker's own large-watch
// bookkeeping during a walk.
func (s *Solver) propagateAll() bool {
	changed := true
	for changed {
		changed = false
		for _, bc := range s.BinaryClauses {
			av, bv := s.Values[bc.A], s.Values[bc.B]
			if av == 1 || bv == 1 {
				continue
			}
			if av == -1 && bv == -1 {
				s.Logger().Debugf("conflict in binary clause (%s, %s)", bc.A, bc.B)
				return true
			}
			if av == -1 && bv == 0 {
				s.decide(bc.B)
				changed = true
			} else if bv == -1 && av == 0 {
				s.decide(bc.A)
				changed = true
			}
		}
		for ci := range s.Arena {
			c := &s.Arena[ci]
			if c.Garbage {
				continue
			}
			sat := false
			unassigned := 0
			var lastUnassigned Lit
			for _, l := range c.Lits {
				switch s.Values[l] {
				case 1:
					sat = true
				case 0:
					unassigned++
					lastUnassigned = l
				}
			}
			if sat {
				continue
			}
			if unassigned == 0 {
				s.Logger().Debugf("conflict in arena clause %d", ci)
				return true
			}
			if unassigned == 1 {
				s.decide(lastUnassigned)
				changed = true
			}
		}
	}
	return false
}

// search implements plain backtracking DPLL: propagate to a fixpoint,
// pick a decision literal, try it and (on failure) its negation. The
// second return reports whether the search ran to completion; a false
// here means DecisionLimit was hit and the result is indeterminate, not
// unsatisfiable.
func (s *Solver) search() (sat bool, complete bool) {
	if s.propagateAll() {
		return false, true
	}
	lit := s.chooseLit()
	if lit == Lit(-1) {
		return true, true
	}
	if s.DecisionLimit > 0 && s.Statistics.NbDecisions >= s.DecisionLimit {
		s.Logger().Debugf("decision limit %d reached, giving up systematic search", s.DecisionLimit)
		return false, false
	}
	mark := len(s.trail)
	for _, candidate := range [2]Lit{lit, lit.Negation()} {
		s.decide(candidate)
		if sat, complete := s.search(); sat || !complete {
			if !sat && !complete {
				s.backtrackTo(mark)
			}
			return sat, complete
		}
		s.backtrackTo(mark)
	}
	return false, true
}

// Solve runs the host's decision procedure to completion or until
// DecisionLimit decisions have been made. It never invokes the walker:
// callers that want local search between (failed) systematic rounds must
// call walk.Walk explicitly.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	sat, complete := s.search()
	switch {
	case sat:
		s.status = Sat
	case complete:
		s.status = Unsat
	default:
		s.status = Indet
	}
	s.Logger().Debugf("search finished after %d decisions: %s", s.Statistics.NbDecisions, s.status)
	return s.status
}
