package solver

// Statistics are the counters the walker reads and increments. They are
// provided for information purposes and for the walker's own step-budget
// accounting (Statistics.WalkSteps).
type Statistics struct {
	NbDecisions int64

	Walks         int64
	WalkDecisions int64
	WalkSteps     int64
	WalkImproved  int64
}

// EffortLimiter computes a step budget for one local-search round from
// whatever effort policy the host uses. The default policy is linear in
// the number of irredundant clauses and variables, mirroring kissat's
// SET_EFFORT_LIMIT macro applied to the walk_steps statistic.
type EffortLimiter func(s *Solver) int64

// DefaultEffortLimiter grants roughly 40 steps per variable plus 8 per
// irredundant clause, the same order of magnitude kissat's default walk
// effort uses relative to formula size.
func DefaultEffortLimiter(s *Solver) int64 {
	clauses := int64(len(s.Arena)) + int64(len(s.BinaryClauses))
	return 40*int64(s.NbVars) + 8*clauses + 1000
}

// Terminator is polled by the walker between steps (cooperative
// cancellation only at step boundaries, never mid-flip). A nil Terminator
// means "never terminate early".
type Terminator func() bool

// PhaseTimer brackets a phase of solving (e.g. "stop search and start
// simplifier") purely for instrumentation. Both hooks may be nil.
type PhaseTimer struct {
	Start func(phase string)
	Stop  func(phase string)
}

// Enter invokes the start hook, if any.
func (t PhaseTimer) Enter(phase string) {
	if t.Start != nil {
		t.Start(phase)
	}
}

// Leave invokes the stop hook, if any.
func (t PhaseTimer) Leave(phase string) {
	if t.Stop != nil {
		t.Stop(phase)
	}
}
