package problems

import (
	"fmt"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// NQueens builds the classic n-queens CSP: VarID(i) is the row of the
// queen in column i, domain 0..n-1. A builder for it belongs alongside
// Sudoku and graph coloring rather than being left to callers, since
// n-queens under min-conflicts is a standard benchmark instance.
func NQueens(n int) (*csp.CSP, error) {
	if n <= 0 {
		return nil, fmt.Errorf("problems: n-queens needs at least one queen")
	}

	names := make([]string, n)
	domains := make([][]int, n)
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("col%d", i)
		domains[i] = append([]int(nil), rows...)
	}

	var constraints []csp.Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			offset := j - i
			constraints = append(constraints,
				csp.NotEqual{X: csp.VarID(i), Y: csp.VarID(j)},
				csp.BinaryRelation{X: csp.VarID(i), Y: csp.VarID(j), Rel: notDiagonal(offset)},
			)
		}
	}

	return csp.New(names, domains, constraints)
}

// notDiagonal returns a relation rejecting two queens offset columns
// apart from sharing either diagonal.
func notDiagonal(offset int) func(a, b int) bool {
	return func(a, b int) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d != offset
	}
}
