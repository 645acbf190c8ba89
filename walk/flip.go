package walk

import "github.com/crillab/walksat/solver"

// breakValue counts how many currently-satisfied clauses would become
// unsatisfied if l were flipped: the large-watches of ¬l whose counter
// currently sits at exactly 1 true literal (l itself would be the one
// true literal lost).
func (w *Walker) breakValue(l solver.Lit) int {
	neg := l.Negation()
	b := 0
	for _, ref := range w.host.Watches[neg] {
		w.host.Statistics.WalkSteps++
		if w.counters[ref].count == 1 {
			b++
		}
	}
	return b
}

// pickLiteral picks an unsatisfied clause by round-robin over the unsat
// stack, scores each of its literals by break count, and draws one
// proportionally to score.
func (w *Walker) pickLiteral() solver.Lit {
	pos := int32(w.flipped % uint64(w.unsat.Len()))
	w.flipped++

	ref := w.unsat.at(pos)
	lits := w.literals(ref)

	w.scores = w.scores[:0]
	var sum float64
	for _, l := range lits {
		w.host.Statistics.WalkSteps++
		if w.host.Values[l] == 0 {
			w.scores = append(w.scores, 0)
			continue
		}
		b := w.breakValue(l)
		s := w.table.scaleScore(b)
		w.scores = append(w.scores, s)
		sum += s
	}

	r := w.gen.pickDouble()
	threshold := sum * r

	var picked solver.Lit
	var partial float64
	for i, l := range lits {
		if w.host.Values[l] == 0 {
			continue
		}
		partial += w.scores[i]
		picked = l
		if partial > threshold {
			break
		}
	}
	return picked
}

// flipLiteral flips l, which must currently be false. The make pass
// (clauses l newly satisfies) always runs before the break pass
// (clauses l's negation stops satisfying), so no counter transiently
// reaches zero while another is mid-swap in the unsat stack.
func (w *Walker) flipLiteral(l solver.Lit) {
	neg := l.Negation()
	w.host.Values[l] = 1
	w.host.Values[neg] = -1

	for _, ref := range w.host.Watches[l] {
		w.host.Statistics.WalkSteps++
		c := &w.counters[ref]
		if c.count == 0 {
			w.unsat.popAt(ref, c.pos, w.counters)
		}
		c.count++
	}

	for _, ref := range w.host.Watches[neg] {
		w.host.Statistics.WalkSteps++
		c := &w.counters[ref]
		c.count--
		if c.count == 0 {
			w.unsat.push(ref, w.counters)
		}
	}

	w.current = w.unsat.Len()
}
