package problems

import (
	"fmt"

	"github.com/arcweld/cspsolver/pkg/csp"
)

// sudokuUniverse is shared by every blank cell's variable.
var sudokuUniverse = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// CellName renders the spec.md naming convention for a Sudoku cell,
// C{row}{col}, 0-indexed.
func CellName(row, col int) string { return fmt.Sprintf("C%d%d", row, col) }

// Sudoku builds the 9x9 Sudoku CSP from an 81-entry row-major grid (0 =
// blank). Blanks get domain {1..9}; filled cells get a singleton domain.
// 27 AllDifferent constraints enforce the 9 rows, 9 columns, and 9 3x3
// boxes, grounded on the teacher's examples/sudoku main (FDAllDifferent
// over row/column/block variable groups).
func Sudoku(grid [81]int) (*csp.CSP[int], error) {
	for i, v := range grid {
		if v < 0 || v > 9 {
			return nil, fmt.Errorf("problems: Sudoku: cell %d has out-of-range value %d", i, v)
		}
	}

	b := csp.NewBuilder[int]()
	cells := make([][9]*csp.Variable[int], 9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := grid[row*9+col]
			name := CellName(row, col)
			if v == 0 {
				cells[row][col] = b.AddVariable(name, sudokuUniverse)
			} else {
				cells[row][col] = b.AddVariable(name, []int{v})
			}
		}
	}

	for row := 0; row < 9; row++ {
		vars := make([]*csp.Variable[int], 9)
		for col := 0; col < 9; col++ {
			vars[col] = cells[row][col]
		}
		b.AddConstraint(csp.NewAllDifferent(vars...))
	}
	for col := 0; col < 9; col++ {
		vars := make([]*csp.Variable[int], 9)
		for row := 0; row < 9; row++ {
			vars[row] = cells[row][col]
		}
		b.AddConstraint(csp.NewAllDifferent(vars...))
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			vars := make([]*csp.Variable[int], 0, 9)
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					vars = append(vars, cells[br*3+r][bc*3+c])
				}
			}
			b.AddConstraint(csp.NewAllDifferent(vars...))
		}
	}

	return b.Build()
}
