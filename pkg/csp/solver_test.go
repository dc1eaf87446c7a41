package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveRejectsInvalidConfig(t *testing.T) {
	c := trivialSAT(t)
	cfg := DefaultConfig()
	cfg.MaxSteps = -1

	_, _, err := Solve(c, cfg)
	require.Error(t, err)
}

func TestSolveRejectsNilCSP(t *testing.T) {
	_, _, err := Solve(nil, DefaultConfig())
	require.Error(t, err)
}

func TestSolveDispatchesToMinConflicts(t *testing.T) {
	c := nQueensCSP(t, 8)
	cfg := DefaultConfig()
	cfg.Inference = InferenceMinConflicts
	cfg.Seed = 3

	sol, stats, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Equal(t, StatusSolved, stats.Status)
	require.Positive(t, stats.LocalSteps())
	require.Zero(t, stats.Assignments(), "assignments counter is systematic-search-only")
	require.True(t, c.IsConsistent(sol))
}

func TestSolveRejectsMismatchedInitialWeights(t *testing.T) {
	c := trivialSAT(t)
	cfg := DefaultConfig()
	cfg.InitialWeights = []int64{1, 1, 1} // trivialSAT has exactly one constraint

	_, _, err := Solve(c, cfg)
	require.Error(t, err)
	var ic *InvalidConfigError
	require.ErrorAs(t, err, &ic)
	require.Equal(t, "InitialWeights", ic.Field)
}

func TestSolveCarriesWeightsForward(t *testing.T) {
	c := smallColoringCSP(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, 3) // K4, 3 colors
	cfg := DefaultConfig()
	cfg.VariableOrder = VariableOrderDomWdeg
	cfg.UseCBJ = true

	_, stats1, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Equal(t, StatusUnsolvable, stats1.Status)
	require.Len(t, stats1.Weights(), c.NumConstraints())

	cfg.InitialWeights = stats1.Weights()
	_, stats2, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Equal(t, StatusUnsolvable, stats2.Status)

	for i, w := range stats2.Weights() {
		require.GreaterOrEqual(t, w, stats1.Weights()[i])
	}
}

func TestSolveSurfacesMinConflictsBestEffortOnBudgetExceeded(t *testing.T) {
	c := nQueensCSP(t, 50)
	cfg := DefaultConfig()
	cfg.Inference = InferenceMinConflicts
	cfg.Seed = 2
	cfg.MaxSteps = 1

	sol, stats, err := Solve(c, cfg)
	require.NoError(t, err)
	if stats.Status == StatusBudgetExceeded {
		require.NotNil(t, sol, "Solve must surface min-conflicts' best-effort assignment, not nil")
		require.Len(t, sol, 50)
	}
}

func TestSolveBudgetExceeded(t *testing.T) {
	// a 1-coloring of K5 has no solution; with a zero-width time
	// budget the search must report budget_exceeded rather than
	// exhausting the full tree.
	names := []string{"v0", "v1", "v2", "v3", "v4"}
	domains := [][]int{{0}, {0}, {0}, {0}, {0}}
	c, err := New(names, domains, AllDifferent([]VarID{0, 1, 2, 3, 4}))
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.TimeLimit = 1 // 1ns: expires before the first node expands
	_, stats, err := Solve(c, cfg)
	require.NoError(t, err)
	require.Contains(t, []Status{StatusUnsolvable, StatusBudgetExceeded}, stats.Status)
}
