// Package problems implements the curated problem builders named in
// spec.md §6: N-Queens, Sudoku, graph/map coloring, and cryptarithmetic.
// Each builder turns an external payload into a *csp.CSP, grounded on the
// teacher's examples/n-queens, examples/sudoku, examples/graph-coloring,
// and examples/send-more-money mains — reworked from the teacher's
// relational-goal style into this package's generic constraint network.
package problems

import (
	"fmt"

	"github.com/arcweld/cspsolver/pkg/csp"
	"github.com/arcweld/cspsolver/pkg/minconflict"
)

// MinBacktrackingNQueens is the spec.md §6 routing threshold: N-Queens
// instances at or above this size bypass backtracking for min-conflicts.
const MinBacktrackingNQueens = 50

// NQueens builds the N-Queens CSP: variables Q0..Q(n-1), each with domain
// {0..n-1} (the column of the queen in that row), pairwise NotEqual (no
// shared column) and NQueensDiagonalConstraint (no shared diagonal).
// Validation matches spec.md §6: 1 <= n <= 10000.
func NQueens(n int) (*csp.CSP[int], error) {
	if n < 1 || n > 10_000 {
		return nil, fmt.Errorf("problems: NQueens: n=%d out of range [1,10000]", n)
	}
	universe := make([]int, n)
	for i := range universe {
		universe[i] = i
	}

	b := csp.NewBuilder[int]()
	queens := make([]*csp.Variable[int], n)
	for row := 0; row < n; row++ {
		queens[row] = b.AddVariable(fmt.Sprintf("Q%d", row), universe)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddConstraint(csp.NewNotEqual(queens[i], queens[j]))
			b.AddConstraint(csp.NewNQueensDiagonal(queens[i], queens[j], j-i))
		}
	}
	return b.Build()
}

// ShouldUseMinConflicts reports whether NQueens(n) should be routed to the
// min-conflicts local search instead of backtracking, per spec.md §6's
// routing rule.
func ShouldUseMinConflicts(n int) bool { return n >= MinBacktrackingNQueens }

// SolveNQueensMinConflicts runs the min-conflicts solver for large n and
// renders its queens array as a variable-name -> column map matching the
// shape backtracking solutions use, so callers don't need to branch on
// which solver produced a Result.
func SolveNQueensMinConflicts(n int) (map[string]int, bool) {
	res := minconflict.Solve(minconflict.NewDefaultConfig(n))
	if !res.Satisfiable {
		return nil, false
	}
	out := make(map[string]int, n)
	for row, col := range res.Queens {
		out[fmt.Sprintf("Q%d", row)] = col
	}
	return out, true
}
