package problems

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcweld/cspsolver/pkg/search"
)

func TestNQueensFourIsSatisfiable(t *testing.T) {
	p, err := NQueens(4)
	require.NoError(t, err)

	solver := search.NewBacktrackingSolver(p, search.NewDefaultConfig())
	res, err := solver.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, search.Satisfiable, res.Status)
	require.Len(t, res.Solutions, 1)

	sol := res.Solutions[0]
	seenCol := make(map[int]bool)
	for row := 0; row < 4; row++ {
		col, ok := sol[queenName(row)]
		require.True(t, ok)
		assert.False(t, seenCol[col], "two queens share column %d", col)
		seenCol[col] = true
		for other := row + 1; other < 4; other++ {
			otherCol := sol[queenName(other)]
			assert.NotEqual(t, other-row, abs(otherCol-col), "queens at rows %d,%d attack diagonally", row, other)
		}
	}
}

func TestNQueensTwoIsUnsatisfiable(t *testing.T) {
	p, err := NQueens(2)
	require.NoError(t, err)

	solver := search.NewBacktrackingSolver(p, search.NewDefaultConfig())
	res, err := solver.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Unsatisfiable, res.Status)
}

func TestNQueensEightFindsAllNinetyTwoSolutions(t *testing.T) {
	p, err := NQueens(8)
	require.NoError(t, err)

	cfg := search.NewDefaultConfig()
	cfg.FindAllSolutions = true
	cfg.MaxSolutions = 92
	solver := search.NewBacktrackingSolver(p, cfg)
	res, err := solver.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Satisfiable, res.Status)
	assert.Len(t, res.Solutions, 92)
}

func TestNQueensOutOfRangeRejected(t *testing.T) {
	_, err := NQueens(0)
	assert.Error(t, err)
	_, err = NQueens(10_001)
	assert.Error(t, err)
}

func TestShouldUseMinConflictsRoutingThreshold(t *testing.T) {
	assert.False(t, ShouldUseMinConflicts(49))
	assert.True(t, ShouldUseMinConflicts(50))
}

func TestSolveNQueensMinConflictsLarge(t *testing.T) {
	sol, ok := SolveNQueensMinConflicts(60)
	require.True(t, ok)
	assert.Len(t, sol, 60)
}

func queenName(row int) string { return fmt.Sprintf("Q%d", row) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
