package minconflict

import "testing"

func validateQueens(t *testing.T, queens []int) {
	t.Helper()
	n := len(queens)
	seenCol := make(map[int]bool, n)
	for row, col := range queens {
		if seenCol[col] {
			t.Fatalf("two queens share column %d", col)
		}
		seenCol[col] = true
		for other := row + 1; other < n; other++ {
			if abs(queens[other]-col) == other-row {
				t.Fatalf("queens at rows %d and %d attack diagonally", row, other)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSolve100QueensFindsValidPlacement(t *testing.T) {
	res := Solve(NewDefaultConfig(100))
	if !res.Satisfiable {
		t.Fatal("Solve(100) did not find a placement within budget")
	}
	if len(res.Queens) != 100 {
		t.Fatalf("len(Queens) = %d, want 100", len(res.Queens))
	}
	validateQueens(t, res.Queens)
}

func TestSolveIsReproducibleForSameSeed(t *testing.T) {
	cfg := NewDefaultConfig(50)
	first := Solve(cfg)
	second := Solve(cfg)
	if !first.Satisfiable || !second.Satisfiable {
		t.Fatal("expected both solves to succeed")
	}
	for i := range first.Queens {
		if first.Queens[i] != second.Queens[i] {
			t.Fatalf("solves with identical seed diverged at row %d: %d vs %d", i, first.Queens[i], second.Queens[i])
		}
	}
}

func TestSolveOneQueen(t *testing.T) {
	res := Solve(NewDefaultConfig(1))
	if !res.Satisfiable || len(res.Queens) != 1 || res.Queens[0] != 0 {
		t.Fatalf("Solve(1) = %+v, want a single queen at column 0", res)
	}
}

func TestSolveZeroQueens(t *testing.T) {
	res := Solve(NewDefaultConfig(0))
	if !res.Satisfiable || len(res.Queens) != 0 {
		t.Fatalf("Solve(0) = %+v, want trivially satisfiable with no queens", res)
	}
}
