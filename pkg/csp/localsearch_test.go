package csp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMinConflictsSolvesEightQueens(t *testing.T) {
	c := nQueensCSP(t, 8)
	cfg := DefaultConfig()
	cfg.Seed = 1

	sol, status := minConflicts(c, cfg, newStats())
	require.Equal(t, StatusSolved, status)
	require.True(t, c.IsConsistent(sol))
}

func TestMinConflictsRespectsMaxSteps(t *testing.T) {
	c := nQueensCSP(t, 50)
	cfg := DefaultConfig()
	cfg.Seed = 2
	cfg.MaxSteps = 1

	_, status := minConflicts(c, cfg, newStats())
	require.Contains(t, []Status{StatusSolved, StatusBudgetExceeded}, status)
}

func TestMinConflictsReturnsBestSeenOnTimeLimit(t *testing.T) {
	c := nQueensCSP(t, 50)
	cfg := DefaultConfig()
	cfg.Seed = 2
	cfg.TimeLimit = time.Nanosecond

	sol, status := minConflicts(c, cfg, newStats())
	require.Equal(t, StatusBudgetExceeded, status)
	require.NotNil(t, sol, "a time-limit exhaustion must return the best assignment seen, not nil")
	require.Len(t, sol, 50)
}

func TestMinConflictsReturnsBestSeenOnExhaustion(t *testing.T) {
	c := nQueensCSP(t, 50)
	cfg := DefaultConfig()
	cfg.Seed = 2
	cfg.MaxSteps = 1

	sol, status := minConflicts(c, cfg, newStats())
	require.NotNil(t, sol, "exhaustion must return the best assignment seen, not nil")
	require.Len(t, sol, 50)
	if status == StatusBudgetExceeded {
		require.GreaterOrEqual(t, totalViolations(c, sol), 0)
	}
}
