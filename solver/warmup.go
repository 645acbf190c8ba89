package solver

// Warmer is the warm-up collaborator the walker invokes before a round
// when the host's warmup option is enabled. The real collaborator runs a
// cheap propagation pass to refresh target phases; we only specify the
// interface, since warm-up internals are out of scope for the walker.
type Warmer interface {
	Warmup(s *Solver)
}

// defaultWarmer copies Saved into Target, the minimal useful stand-in: it
// gives "stable mode" decisions something freshly derived from the most
// recent search to read, without re-deriving anything via propagation.
type defaultWarmer struct{}

func (defaultWarmer) Warmup(s *Solver) {
	copy(s.Phases.Target, s.Phases.Saved)
}
