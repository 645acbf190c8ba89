package solver

// Clause is an irredundant or redundant (learned) clause living in the
// arena. Clauses are addressed by their index in Solver.Arena ("arena
// offset"), never by pointer, so the walker can keep compact 31-bit
// references to them (see walk.MaxRef).
type Clause struct {
	Lits      []Lit
	Garbage   bool
	Redundant bool
}

// Len returns the number of literals still in c.
func (c *Clause) Len() int { return len(c.Lits) }

// Get returns the i-th literal of c.
func (c *Clause) Get(i int) Lit { return c.Lits[i] }

// BinaryClause is a clause of exactly two literals, stored outside the
// arena in its own dense array (mirroring kissat's litpairs, and the
// teacher's preference for specialised binary-clause handling).
type BinaryClause struct {
	A, B Lit
}
