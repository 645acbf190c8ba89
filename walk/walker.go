package walk

import "github.com/crillab/walksat/solver"

// bestInvalid marks that the current best assignment was saved directly
// into phases; the trail can no longer be used to reconstruct it.
const bestInvalid = -1

// Walker holds everything a local-search round owns exclusively: the
// counter array, clause registry, unsat stack, score table, scratch
// scores buffer and flip trail. A Walker is built fresh for one round
// (WalkerDriver.init_walker) and released at the end of it; it never
// outlives a single call to Walk.
type Walker struct {
	host *solver.Solver

	savedValues []solver.Value // host's pre-walk values, restored on release

	refs     []taggedRef
	counters []counter
	unsat    unsatIndex
	scores   []float64

	trail     []int32 // flipped literals, most recent last
	best      int32   // bestInvalid, or an index into trail
	trailCap  int     // VARS/4 + 1

	initial int
	minimum int
	current int

	size float64 // average clause size

	table *scoreTable
	gen   generator

	flipped uint64
	limit   int64

	warmupEnabled bool
}

// newWalker swaps in a fresh values vector, imports decision phases,
// connects binary and large clauses into the counter/registry/unsat
// structures, and builds the score table.
func newWalker(s *solver.Solver, warmupEnabled bool) *Walker {
	w := &Walker{
		host:          s,
		warmupEnabled: warmupEnabled,
		trailCap:      s.NbVars/4 + 1,
	}

	w.savedValues = s.Values
	s.Values = make([]solver.Value, len(w.savedValues))
	importDecisionPhases(s, s.Values, warmupEnabled)

	upperBound := len(s.BinaryClauses) + len(s.Arena)
	w.refs = make([]taggedRef, 0, upperBound)
	w.counters = make([]counter, 0, upperBound)

	var totalOccurrences float64
	w.connectBinaryClauses(&totalOccurrences)
	w.connectLargeClauses(&totalOccurrences)

	w.initial = w.unsat.Len()
	w.minimum = w.initial
	w.current = w.initial

	var avgClauseSize float64
	if n := len(w.refs); n > 0 {
		avgClauseSize = totalOccurrences / float64(n)
	}
	w.size = avgClauseSize

	s.Statistics.WalkDecisions++
	cb := 2.0
	if s.Statistics.Walks%2 == 1 {
		cb = fitCBVal(avgClauseSize)
	}
	w.table = newScoreTable(cb)
	w.gen = newGenerator(s.Random ^ uint64(s.Statistics.Walks))

	return w
}

// connectBinaryClauses connects a binary clause only if both its
// variables currently have a non-zero (imported) value; clauses with a
// zero-valued side are skipped as trivially satisfied elsewhere, or
// deferred to outer logic.
func (w *Walker) connectBinaryClauses(totalOccurrences *float64) {
	s := w.host
	for idx, bc := range s.BinaryClauses {
		av, bv := s.Values[bc.A], s.Values[bc.B]
		if av == 0 || bv == 0 {
			continue
		}
		ref := int32(len(w.refs))
		w.refs = append(w.refs, taggedRef{binary: true, ref: int32(idx)})
		s.PushLargeWatch(bc.A, ref)
		s.PushLargeWatch(bc.B, ref)
		count := int32(0)
		if av > 0 {
			count++
		}
		if bv > 0 {
			count++
		}
		w.counters = append(w.counters, counter{count: count})
		if count == 0 {
			w.unsat.push(ref, w.counters)
		}
		*totalOccurrences += 2
	}
}

// connectLargeClauses connects large clauses: a clause already satisfied
// by the pre-walk assignment is permanently marked garbage and never
// becomes a counter. Literals with zero walker value are skipped (their
// saved phase must have been negative, i.e. they were never satisfied by
// the culling pass above).
func (w *Walker) connectLargeClauses(totalOccurrences *float64) {
	s := w.host
	for ci := 0; ci <= s.LastIrredundant && ci < len(s.Arena); ci++ {
		c := &s.Arena[ci]
		if c.Garbage || c.Redundant {
			continue
		}
		satisfied := false
		for _, l := range c.Lits {
			if w.savedValues[l] > 0 {
				satisfied = true
				break
			}
		}
		if satisfied {
			c.Garbage = true
			continue
		}
		ref := int32(len(w.refs))
		size := 0
		count := int32(0)
		for _, l := range c.Lits {
			v := s.Values[l]
			if v == 0 {
				continue
			}
			s.PushLargeWatch(l, ref)
			size++
			if v > 0 {
				count++
			}
		}
		w.refs = append(w.refs, taggedRef{binary: false, ref: int32(ci)})
		w.counters = append(w.counters, counter{count: count})
		if count == 0 {
			w.unsat.push(ref, w.counters)
		}
		*totalOccurrences += float64(size)
	}
}

// initLimit computes the step budget for this round from the host's
// effort policy.
func (w *Walker) initLimit() {
	delta := int64(0)
	if w.host.EffortLimit != nil {
		delta = w.host.EffortLimit(w.host)
	}
	w.limit = w.host.Statistics.WalkSteps + delta
	w.flipped = 0
}

// release restores the host's original values vector. Must run even on
// an early exit (budget exhaustion, termination), via defer at the call
// site.
func (w *Walker) release() {
	w.host.Values = w.savedValues
}
