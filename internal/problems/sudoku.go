// Package problems builds csp.CSP instances for a handful of standard
// finite-domain problems, thin boundary shells exercising the solving
// core rather than complete standalone systems.
package problems

import (
	"fmt"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// Sudoku builds a 9x9 Sudoku CSP from an 81-character string; '0' or
// '.' marks a blank cell, '1'-'9' a given. Cell (row, col) maps to
// VarID(row*9+col). Returns an error if the input is not exactly 81
// characters long.
func Sudoku(puzzle string) (*csp.CSP, error) {
	if len(puzzle) != 81 {
		return nil, fmt.Errorf("problems: sudoku input must be 81 characters, got %d", len(puzzle))
	}

	names := make([]string, 81)
	domains := make([][]int, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			i := r*9 + c
			names[i] = fmt.Sprintf("r%dc%d", r, c)
			ch := puzzle[i]
			if ch >= '1' && ch <= '9' {
				domains[i] = []int{int(ch - '0')}
			} else {
				domains[i] = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
			}
		}
	}

	var constraints []csp.Constraint
	for r := 0; r < 9; r++ {
		row := make([]csp.VarID, 9)
		for c := 0; c < 9; c++ {
			row[c] = csp.VarID(r*9 + c)
		}
		constraints = append(constraints, csp.AllDifferent(row)...)
	}
	for c := 0; c < 9; c++ {
		col := make([]csp.VarID, 9)
		for r := 0; r < 9; r++ {
			col[r] = csp.VarID(r*9 + c)
		}
		constraints = append(constraints, csp.AllDifferent(col)...)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			box := make([]csp.VarID, 0, 9)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					box = append(box, csp.VarID(r*9+c))
				}
			}
			constraints = append(constraints, csp.AllDifferent(box)...)
		}
	}

	return csp.New(names, domains, constraints)
}

// SolutionToGrid renders a Sudoku solution back into an 81-character
// string, '0' for any cell Solve left unassigned (should not happen
// for a StatusSolved result).
func SolutionToGrid(sol csp.Solution) string {
	out := make([]byte, 81)
	for i := range out {
		if v, ok := sol[csp.VarID(i)]; ok {
			out[i] = byte('0' + v)
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
