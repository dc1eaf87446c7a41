package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sudokuCSP builds a 9x9 Sudoku CSP from an 81-character string, '0'
// marking a blank cell. Cell (row, col) maps to VarID(row*9+col).
func sudokuCSP(t *testing.T, puzzle string) *CSP {
	t.Helper()
	require.Len(t, puzzle, 81)

	names := make([]string, 81)
	domains := make([][]int, 81)
	for i := 0; i < 81; i++ {
		ch := puzzle[i]
		if ch >= '1' && ch <= '9' {
			domains[i] = []int{int(ch - '0')}
		} else {
			domains[i] = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		}
	}

	var constraints []Constraint
	for r := 0; r < 9; r++ {
		row := make([]VarID, 9)
		for c := 0; c < 9; c++ {
			row[c] = VarID(r*9 + c)
		}
		constraints = append(constraints, AllDifferent(row)...)
	}
	for c := 0; c < 9; c++ {
		col := make([]VarID, 9)
		for r := 0; r < 9; r++ {
			col[r] = VarID(r*9 + c)
		}
		constraints = append(constraints, AllDifferent(col)...)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			box := make([]VarID, 0, 9)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					box = append(box, VarID(r*9+c))
				}
			}
			constraints = append(constraints, AllDifferent(box)...)
		}
	}

	c, err := New(names, domains, constraints)
	require.NoError(t, err)
	return c
}

// nQueensCSP builds the classic n-queens CSP: VarID(i) is the row of
// the queen in column i.
func nQueensCSP(t *testing.T, n int) *CSP {
	t.Helper()
	names := make([]string, n)
	domains := make([][]int, n)
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	for i := 0; i < n; i++ {
		domains[i] = append([]int(nil), rows...)
	}

	var constraints []Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			offset := j - i
			constraints = append(constraints,
				NotEqual{X: VarID(i), Y: VarID(j)},
				BinaryRelation{X: VarID(i), Y: VarID(j), Rel: func(a, b int) bool {
					d := a - b
					if d < 0 {
						d = -d
					}
					return d != offset
				}},
			)
		}
	}

	c, err := New(names, domains, constraints)
	require.NoError(t, err)
	return c
}

// Trivial SAT — A != B over {1,2}.
func TestScenarioTrivialSAT(t *testing.T) {
	c := trivialSAT(t)
	sol, stats, err := Solve(c, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, StatusSolved, stats.Status)
	require.True(t, c.IsConsistent(sol))
	require.Zero(t, stats.Backtracks())
	require.LessOrEqual(t, stats.ConstraintChecks(), int64(3))
}

// Trivial UNSAT — three Boolean variables, all pairwise different,
// only two values available.
func TestScenarioTrivialUNSAT(t *testing.T) {
	c, err := New(
		[]string{"A", "B", "C"},
		[][]int{{0, 1}, {0, 1}, {0, 1}},
		AllDifferent([]VarID{0, 1, 2}),
	)
	require.NoError(t, err)

	_, stats, err := Solve(c, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, StatusUnsolvable, stats.Status)
}

// A well-known easy Sudoku puzzle solves to completion with MAC+MRV
// and zero backtracks.
func TestScenarioSudokuEasyZeroBacktracks(t *testing.T) {
	c := sudokuCSP(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")

	cfg := DefaultConfig()
	cfg.Inference = InferenceMAC
	cfg.VariableOrder = VariableOrderMRV

	sol, stats, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Equal(t, StatusSolved, stats.Status)
	require.True(t, c.IsConsistent(sol))
	require.Zero(t, stats.Backtracks())
}

// K4 with 3 colors is unsatisfiable; CBJ must not need more
// backtracks than chronological search on the same instance.
func TestScenarioK4ThreeColorsUnsatisfiableCBJNotWorse(t *testing.T) {
	names := []string{"v0", "v1", "v2", "v3"}
	domains := [][]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}, {0, 1, 2}}
	var constraints []Constraint
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			constraints = append(constraints, NotEqual{X: VarID(i), Y: VarID(j)})
		}
	}
	c, err := New(names, domains, constraints)
	require.NoError(t, err)

	chronoCfg := DefaultConfig()
	chronoCfg.UseCBJ = false
	_, chronoStats, err := Solve(c, chronoCfg)
	require.NoError(t, err)
	require.Equal(t, StatusUnsolvable, chronoStats.Status)

	cbjCfg := DefaultConfig()
	cbjCfg.UseCBJ = true
	_, cbjStats, err := Solve(c, cbjCfg)
	require.NoError(t, err)
	require.Equal(t, StatusUnsolvable, cbjStats.Status)

	require.LessOrEqual(t, cbjStats.Backtracks(), chronoStats.Backtracks())
}

// min-conflicts solves N=50 n-queens within 10,000 steps for a fixed
// seed, and the result is sound.
func TestScenarioMinConflictsFiftyQueens(t *testing.T) {
	c := nQueensCSP(t, 50)

	cfg := DefaultConfig()
	cfg.Inference = InferenceMinConflicts
	cfg.Seed = 7
	cfg.MaxSteps = 10000

	sol, stats, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Equal(t, StatusSolved, stats.Status)
	require.True(t, c.IsConsistent(sol))
	require.Len(t, sol, 50)
}
