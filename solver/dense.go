package solver

// EnterDenseMode reshapes the per-literal watch lists into the "large
// watch only" form the walker's ClauseRegistry requires: each Watches[l]
// becomes an (initially empty) slice of counter_refs the walker will
// append to during setup. The real collaborator this stands in for also
// migrates existing 2-watched-literal state; our host's own propagation
// (solver/search.go) doesn't use Watches at all, so entering dense mode
// here is just allocation.
func (s *Solver) EnterDenseMode() {
	s.Watches = make([][]int32, 2*s.NbVars)
}

// PushLargeWatch appends counterRef to l's large-watch list.
func (s *Solver) PushLargeWatch(l Lit, counterRef int32) {
	s.Watches[l] = append(s.Watches[l], counterRef)
}

// ResumeSparseMode releases the large-watch lists built for a walk. The
// real collaborator would rebuild proper 2-watched-literal state here;
// our host doesn't need that to keep searching (see search.go), so this
// is just deallocation.
func (s *Solver) ResumeSparseMode() {
	s.Watches = nil
}
