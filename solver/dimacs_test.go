package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		name    string
		text    string
		nbVars  int
		nbUnits int
		nbBin   int
		nbArena int
	}{
		{
			name:    "single unit clause",
			text:    "c a unit clause\np cnf 1 1\n1 0\n",
			nbVars:  1,
			nbUnits: 1,
		},
		{
			name:    "binary and ternary clause",
			text:    "p cnf 3 2\n1 2 0\n-1 2 -3 0\n",
			nbVars:  3,
			nbBin:   1,
			nbArena: 1,
		},
		{
			name:    "comments interleaved with clauses",
			text:    "p cnf 2 2\n1 2 0\nc a mid-file comment\n-1 -2 0\n",
			nbVars:  2,
			nbBin:   2,
		},
		{
			name:   "missing problem line",
			text:   "1 2 0\n",
			nbVars: 2,
			nbBin:  1,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			pb, err := ParseDIMACS(strings.NewReader(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.nbVars, pb.NbVars, "NbVars")
			assert.Len(t, pb.Units, tt.nbUnits)
			assert.Len(t, pb.BinaryClauses, tt.nbBin)
			assert.Len(t, pb.Arena, tt.nbArena)
		})
	}
}

func TestParseDIMACSRejectsClauseCountMismatch(t *testing.T) {
	text := "p cnf 2 2\n1 2 0\n"
	_, err := ParseDIMACS(strings.NewReader(text))
	assert.Error(t, err, "expected an error when the clause count doesn't match the problem line")
}

func TestParseDIMACSRejectsProblemLineAfterClauses(t *testing.T) {
	text := "1 0\np cnf 1 1\n"
	_, err := ParseDIMACS(strings.NewReader(text))
	assert.Error(t, err, "expected an error for a problem line after clauses")
}
