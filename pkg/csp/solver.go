package csp

import "fmt"

// Solution is a complete, consistent assignment keyed by VarID, the
// positive result of Solve.
type Solution = Assignment

// Solve runs one search over c according to cfg, dispatching to
// systematic backtracking (with the configured inference level and
// heuristics) or to min-conflicts local search when
// cfg.Inference == InferenceMinConflicts, through a single entry point
// over all algorithm families.
//
// Solve always returns a Stats snapshot, even on failure or budget
// exhaustion, so a caller can distinguish "proven unsolvable" from
// "gave up". On StatusBudgetExceeded, Solution is min-conflicts' best
// (fewest violations) assignment seen so far, or nil for systematic
// search, which has no partial assignment worth returning once it
// backs out of an incomplete branch.
func Solve(c *CSP, cfg Config) (Solution, Stats, error) {
	if c == nil {
		return nil, Stats{}, &MalformedCSPError{Reason: "nil CSP"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if cfg.InitialWeights != nil && len(cfg.InitialWeights) != c.NumConstraints() {
		return nil, Stats{}, &InvalidConfigError{
			Field:  "InitialWeights",
			Reason: "length must equal the CSP's constraint count",
		}
	}

	stats := newStats()
	if cfg.Logger != nil {
		cfg.Logger.Debugf("solve start: inference=%s var_order=%s value_order=%s cbj=%t",
			cfg.Inference, cfg.VariableOrder, cfg.ValueOrder, cfg.UseCBJ)
	}

	var (
		solution Assignment
		status   Status
	)
	if cfg.Inference == InferenceMinConflicts {
		solution, status = minConflicts(c, cfg, stats)
	} else {
		solution, status = runSystematicSearch(c, cfg, stats)
	}

	snap := stats.finish(status).Snapshot()
	if cfg.Metrics != nil {
		cfg.Metrics.Observe(snap)
	}
	if cfg.Logger != nil {
		cfg.Logger.Debugf("solve done: status=%s assignments=%d backtracks=%d checks=%d",
			snap.Status, snap.Assignments(), snap.Backtracks(), snap.ConstraintChecks())
	}

	switch status {
	case StatusSolved, StatusBudgetExceeded:
		return solution, snap, nil
	default:
		return nil, snap, nil
	}
}

// MustSolve is a convenience wrapper for callers (demos, benchmarks)
// that treat anything but StatusSolved as a programmer error.
func MustSolve(c *CSP, cfg Config) Solution {
	sol, stats, err := Solve(c, cfg)
	if err != nil {
		panic(fmt.Sprintf("csp: Solve failed: %v", err))
	}
	if stats.Status != StatusSolved {
		panic(fmt.Sprintf("csp: Solve did not find a solution: status=%s", stats.Status))
	}
	return sol
}
