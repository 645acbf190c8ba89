package solver

// Phases holds the per-variable phase memory the decision procedure reads
// from and the walker writes to. Saved is the "last assigned sign" memory
// every decision procedure maintains; Target is an additional memory bank
// only meaningful while the solver is in "stable" mode (see Solver.Stable).
type Phases struct {
	Saved  []Value
	Target []Value
}

func newPhases(nbVars int) Phases {
	return Phases{
		Saved:  make([]Value, nbVars),
		Target: make([]Value, nbVars),
	}
}

// InitialPhase is the phase used for a variable that was never assigned a
// saved or target phase before (equivalent to kissat's configurable
// INITIAL_PHASE option, defaulting to "true" the way MiniSat-derived
// solvers historically have).
const InitialPhase Value = 1
