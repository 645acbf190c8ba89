package walk

// cbPoints are the (avg_clause_size, cb) control points the break
// multiplier is linearly interpolated (or, beyond the last point,
// extrapolated) from.
var cbPoints = [6][2]float64{
	{0, 2.00},
	{3, 2.50},
	{4, 2.85},
	{5, 3.70},
	{6, 5.10},
	{7, 7.40},
}

// fitCBVal finds the break multiplier for a query average clause size by
// scanning for the bracketing segment and linearly interpolating (or, for
// size beyond the last control point, continuing that segment's slope —
// extrapolation is intentional and not clamped).
func fitCBVal(size float64) float64 {
	i := 0
	n := len(cbPoints)
	for i+2 < n && (cbPoints[i][0] > size || cbPoints[i+1][0] < size) {
		i++
	}
	x1, y1 := cbPoints[i][0], cbPoints[i][1]
	x2, y2 := cbPoints[i+1][0], cbPoints[i+1][1]
	dx, dy := x2-x1, y2-y1
	return y1 + dy*(size-x1)/dx
}

// scoreTable is the precomputed geometric sequence of break-count scores:
// table[i] = base^i where base = 1/cb, stopping at the largest i for
// which base^i is still representable as a positive double. epsilon is
// that smallest representable value, used as a floor for any break count
// at or beyond the table's length.
type scoreTable struct {
	table   []float64
	epsilon float64
}

// newScoreTable builds the table for a given break multiplier cb.
func newScoreTable(cb float64) *scoreTable {
	base := 1 / cb
	var table []float64
	for next := 1.0; next != 0; next *= base {
		table = append(table, next)
	}
	return &scoreTable{table: table, epsilon: table[len(table)-1]}
}

// scaleScore returns the (strictly positive) score for a literal whose
// flip would break `breaks` currently-satisfied clauses: table[breaks] if
// that's within range, else the epsilon floor.
//
// Law: scaleScore(b1) >= scaleScore(b2) iff b1 <= b2 (more breaks always
// scores no higher), since cb > 1 makes the table strictly decreasing.
func (t *scoreTable) scaleScore(breaks int) float64 {
	if breaks < len(t.table) {
		return t.table[breaks]
	}
	return t.epsilon
}
