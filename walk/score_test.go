package walk

import "testing"

func TestFitCBVal(t *testing.T) {
	for _, tt := range []struct {
		size float64
		want float64
	}{
		{3.0, 2.50},
		{5.5, (3.70 + 5.10) / 2},
		{10.0, 7.40 + (10-7)*(7.40-5.10)},
	} {
		if got := fitCBVal(tt.size); !almostEqual(got, tt.want) {
			t.Errorf("fitCBVal(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestScoreTableCb2(t *testing.T) {
	table := newScoreTable(2.0)
	if got := table.scaleScore(0); !almostEqual(got, 1.0) {
		t.Errorf("scaleScore(0) = %v, want 1.0", got)
	}
	if got := table.scaleScore(1); !almostEqual(got, 0.5) {
		t.Errorf("scaleScore(1) = %v, want 0.5", got)
	}
	if got := table.scaleScore(2); !almostEqual(got, 0.25) {
		t.Errorf("scaleScore(2) = %v, want 0.25", got)
	}
}

// scaleScore(b1) >= scaleScore(b2) iff b1 <= b2, since cb > 1 makes the
// table strictly decreasing.
func TestScoreMonotonicity(t *testing.T) {
	table := newScoreTable(2.5)
	for b := 0; b < 20; b++ {
		if table.scaleScore(b) < table.scaleScore(b+1) {
			t.Fatalf("scaleScore(%d)=%v < scaleScore(%d)=%v, want non-increasing",
				b, table.scaleScore(b), b+1, table.scaleScore(b+1))
		}
	}
}

func TestScoreTableAlwaysPositive(t *testing.T) {
	table := newScoreTable(2.0)
	for b := 0; b < 2000; b++ {
		if table.scaleScore(b) <= 0 {
			t.Fatalf("scaleScore(%d) = %v, want strictly positive", b, table.scaleScore(b))
		}
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
