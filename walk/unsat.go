package walk

// unsatIndex is the unsat-clause stack: the ordered set of counter_refs
// whose clause currently has zero true literals. Both push and
// remove-at-position run in O(1) by swapping the removed entry with the
// last one.
type unsatIndex struct {
	stack []int32
}

func (u *unsatIndex) Len() int { return len(u.stack) }

// at returns the counter_ref stored at position pos.
func (u *unsatIndex) at(pos int32) int32 { return u.stack[pos] }

// push appends ref, recording its new position in counters[ref].pos.
func (u *unsatIndex) push(ref int32, counters []counter) {
	counters[ref].pos = int32(len(u.stack))
	u.stack = append(u.stack, ref)
}

// popAt removes the counter_ref at pos (which must equal
// counters[ref].pos) by swapping the last stack entry into its place.
// It reports whether a swap actually happened (ref wasn't already last);
// flipLiteral does not use the result.
func (u *unsatIndex) popAt(ref int32, pos int32, counters []counter) bool {
	n := len(u.stack)
	top := u.stack[n-1]
	u.stack = u.stack[:n-1]
	if top == ref {
		return false
	}
	u.stack[pos] = top
	counters[top].pos = pos
	return true
}
