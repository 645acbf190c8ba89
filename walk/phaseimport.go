package walk

import "github.com/crillab/walksat/solver"

// importDecisionPhases copies a starting truth assignment from the host's
// saved/target phases into values.
//
// For each active variable v, prefer the stable-mode target phase (unless
// warmup is enabled, in which case target is skipped), falling back to
// the saved phase, and finally to the host's configured initial phase.
// The chosen phase is written back into phases.saved, so a variable that
// was never phased before is remembered for next time.
func importDecisionPhases(s *solver.Solver, values []solver.Value, warmupEnabled bool) {
	useTarget := s.Stable && !warmupEnabled
	for v := 0; v < s.NbVars; v++ {
		if !s.Active[v] {
			continue
		}
		var p solver.Value
		if useTarget {
			p = s.Phases.Target[v]
		}
		if p == 0 {
			p = s.Phases.Saved[v]
		}
		if p == 0 {
			p = solver.InitialPhase
		}
		s.Phases.Saved[v] = p

		lit := solver.Var(v).SignedLit(true)
		values[lit] = p
		values[lit.Negation()] = -p
	}
}
