// Package walk implements the stochastic local-search ("ProbSAT-style")
// walker: given a host solver's irredundant clauses and a starting phase
// assignment, it repeatedly flips literals to minimize the number of
// unsatisfied clauses, and exports the best assignment it finds back into
// the host's phase memory.
package walk

// MaxRef is the largest value a 31-bit counter_ref or arena offset may
// take. Both the number of irredundant clauses and the largest arena
// offset must fit in this many bits, or the walker declines to run
// (Walkable returns false).
const MaxRef = 1<<31 - 1

// counter is the per-clause bookkeeping entry: the number of currently
// true literals, and — only meaningful while count == 0 — its index in
// the unsat stack.
//
// Invariant A: a counter_ref appears in the unsat stack iff its count is
// 0, at exactly the index it stores in pos.
// Invariant B: count equals the number of literals in the clause
// currently assigned true.
type counter struct {
	count int32
	pos   int32
}
