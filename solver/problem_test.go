package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSliceSplitsBySize(t *testing.T) {
	pb, err := ParseSlice([][]int{
		{1},
		{2, 3},
		{-1, 2, -3},
	})
	require.NoError(t, err)
	assert.Len(t, pb.Units, 1)
	assert.Len(t, pb.BinaryClauses, 1)
	assert.Len(t, pb.Arena, 1)
	assert.Equal(t, 3, pb.NbVars)
}

func TestParseSliceRejectsEmptyClause(t *testing.T) {
	_, err := ParseSlice([][]int{{}})
	assert.Error(t, err)
}

func TestParseSliceRejectsZeroLiteral(t *testing.T) {
	_, err := ParseSlice([][]int{{1, 0}})
	assert.Error(t, err)
}

func TestNewProblemMirrorsParseSlice(t *testing.T) {
	fromInts, err := ParseSlice([][]int{{1}, {2, 3}, {-1, 2, -3}})
	require.NoError(t, err)
	fromLits, err := NewProblem(3, [][]Lit{
		{IntToLit(1)},
		{IntToLit(2), IntToLit(3)},
		{IntToLit(-1), IntToLit(2), IntToLit(-3)},
	})
	require.NoError(t, err)

	assert.Equal(t, len(fromInts.Units), len(fromLits.Units), "unit clause count")
	assert.Equal(t, len(fromInts.BinaryClauses), len(fromLits.BinaryClauses), "binary clause count")
	assert.Equal(t, len(fromInts.Arena), len(fromLits.Arena), "arena clause count")
}
