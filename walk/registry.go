package walk

import "github.com/crillab/walksat/solver"

// taggedRef is the two-variant sum a counter_ref resolves to: either an
// index into the host's binary-clause array, or an offset into the host's
// clause arena. A 31-bit payload plus a 1-bit tag into a 32-bit word would
// also work, but a tagged struct is clearer and Go doesn't charge much
// for it at this scale.
type taggedRef struct {
	binary bool
	ref    int32
}

// literals dereferences a counter_ref into its clause's literal slice,
// consulting the binary-clauses array or the host's arena depending on
// the tag. This is ClauseRegistry's one job: build at setup, read-only
// thereafter.
func (w *Walker) literals(ref int32) []solver.Lit {
	t := w.refs[ref]
	if t.binary {
		bc := w.host.BinaryClauses[t.ref]
		return []solver.Lit{bc.A, bc.B}
	}
	return w.host.Arena[t.ref].Lits
}
