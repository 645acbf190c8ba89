// Package solver implements a small CDCL-style host solver: decisions,
// boolean constraint propagation and the clause/phase/watch bookkeeping
// that the stochastic local-search walker (package walk) plugs into.
package solver

import "fmt"

// Var is a boolean variable, indexed from 0.
type Var int32

// Lit is a literal, encoded as 2*v for the positive occurrence of v and
// 2*v+1 for its negation. This is the same encoding used throughout the
// walker: Var*2+sign.
type Lit int32

// IntToLit converts a DIMACS-style signed integer (no 0) into a Lit.
func IntToLit(v int32) Lit {
	if v > 0 {
		return Lit((v - 1) * 2)
	}
	return Lit((-v-1)*2 + 1)
}

// Int returns the DIMACS-style signed integer for l.
func (l Lit) Int() int32 {
	v := int32(l)/2 + 1
	if l.IsPositive() {
		return v
	}
	return -v
}

// Var returns the variable l is about.
func (l Lit) Var() Var { return Var(int32(l) / 2) }

// IsPositive reports whether l is the positive occurrence of its variable.
func (l Lit) IsPositive() bool { return int32(l)%2 == 0 }

// Negation returns ¬l.
func (l Lit) Negation() Lit { return l ^ 1 }

// SignedLit returns the literal for v, positive if positive is true.
func (v Var) SignedLit(positive bool) Lit {
	if positive {
		return Lit(v * 2)
	}
	return Lit(v*2 + 1)
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Int())
}

// Value is a three-valued assignment cell: -1 false, 0 unassigned/eliminated,
// +1 true.
type Value int8

// LitValue reads the three-valued assignment of l out of a per-literal
// values array sized 2*nbVars (values[l] == -values[¬l] always holds).
func LitValue(values []Value, l Lit) Value {
	return values[l]
}
