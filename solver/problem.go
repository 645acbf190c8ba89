package solver

import "github.com/pkg/errors"

// Problem is a parsed CNF problem ready to be turned into a Solver. Unit
// clauses are split out as top-level assignments, two-literal clauses go
// into BinaryClauses, and everything else lives in the clause Arena —
// this is exactly the split the walk package's clause registry expects
// at setup time.
type Problem struct {
	NbVars       int
	Units        []Lit
	BinaryClauses []BinaryClause
	Arena        []Clause
}

// ParseSlice builds a Problem from a slice of clauses, each clause itself
// a slice of non-zero DIMACS-style signed integers. This mirrors the bf
// package, which compiles its boolean-formula DSL down to exactly this
// shape before handing it to the solver.
func ParseSlice(clauses [][]int) (*Problem, error) {
	nbVars := 0
	for _, clause := range clauses {
		for _, v := range clause {
			if v == 0 {
				return nil, errors.New("clause contains a literal 0")
			}
			if av := v; av < 0 {
				av = -av
				if av > nbVars {
					nbVars = av
				}
			} else if v > nbVars {
				nbVars = v
			}
		}
	}
	pb := &Problem{NbVars: nbVars}
	for _, clause := range clauses {
		lits := make([]Lit, len(clause))
		for i, v := range clause {
			lits[i] = IntToLit(int32(v))
		}
		switch len(lits) {
		case 0:
			return nil, errors.New("empty clause: problem is trivially unsatisfiable")
		case 1:
			pb.Units = append(pb.Units, lits[0])
		case 2:
			pb.BinaryClauses = append(pb.BinaryClauses, BinaryClause{A: lits[0], B: lits[1]})
		default:
			pb.Arena = append(pb.Arena, Clause{Lits: lits})
		}
	}
	return pb, nil
}

// NewProblem is the structured constructor equivalent of ParseSlice, for
// callers that already hold parsed clauses as []Lit rather than []int
// (e.g. a DIMACS reader that wants to avoid the int/Lit round-trip).
func NewProblem(nbVars int, clauses [][]Lit) (*Problem, error) {
	pb := &Problem{NbVars: nbVars}
	for _, lits := range clauses {
		switch len(lits) {
		case 0:
			return nil, errors.New("empty clause: problem is trivially unsatisfiable")
		case 1:
			pb.Units = append(pb.Units, lits[0])
		case 2:
			pb.BinaryClauses = append(pb.BinaryClauses, BinaryClause{A: lits[0], B: lits[1]})
		default:
			pb.Arena = append(pb.Arena, Clause{Lits: append([]Lit(nil), lits...)})
		}
	}
	return pb, nil
}
