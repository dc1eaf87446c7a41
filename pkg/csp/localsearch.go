package csp

import (
	"math/rand"
	"time"
)

// minConflicts implements the min-conflicts local search: start from a
// complete greedy assignment, then repeatedly pick a conflicted
// variable at random and reassign it to the value minimizing the
// number of violated constraints, breaking ties uniformly at random.
// Runs for at most cfg.MaxSteps repair steps before giving up. On
// exhaustion (budget or step limit) it returns the best — fewest
// violated constraints — assignment seen during the repair loop,
// rather than discarding all progress.
func minConflicts(c *CSP, cfg Config, stats *Stats) (Assignment, Status) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	assignment := greedyInitialAssignment(c, rng)

	if c.IsConsistent(assignment) {
		return assignment, StatusSolved
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 100000
	}

	best := cloneAssignment(assignment)
	bestViolations := totalViolations(c, assignment)

	deadlineCheckEvery := 256
	for step := 0; step < maxSteps; step++ {
		if step%deadlineCheckEvery == 0 && cfg.TimeLimit > 0 {
			if time.Since(stats.startedAt) >= cfg.TimeLimit {
				return best, StatusBudgetExceeded
			}
		}

		conflicted := conflictedVariables(c, assignment)
		if len(conflicted) == 0 {
			return assignment, StatusSolved
		}
		stats.recordLocalStep()

		v := conflicted[rng.Intn(len(conflicted))]
		vals := bestValuesByConflicts(c, assignment, v)
		assignment[v] = vals[rng.Intn(len(vals))]

		if n := totalViolations(c, assignment); n < bestViolations {
			bestViolations = n
			best = cloneAssignment(assignment)
		}
	}

	return best, StatusBudgetExceeded
}

// cloneAssignment returns an independent copy of assignment.
func cloneAssignment(assignment Assignment) Assignment {
	cp := make(Assignment, len(assignment))
	for k, v := range assignment {
		cp[k] = v
	}
	return cp
}

// totalViolations counts the constraints, fully bound by assignment,
// that are violated — the count min-conflicts minimizes when judging
// its best-seen assignment. Unlike violationCount summed per variable,
// each violated constraint is counted once even if several of its
// variables are conflicted.
func totalViolations(c *CSP, assignment Assignment) int {
	n := 0
	bound := assignedSet(assignment)
	for _, con := range c.Constraints() {
		if !scopeBound(con.Scope(), bound) {
			continue
		}
		if !con.IsSatisfied(assignment) {
			n++
		}
	}
	return n
}

// greedyInitialAssignment assigns every variable, in declaration
// order, to the value minimizing conflicts with variables already
// assigned so far.
func greedyInitialAssignment(c *CSP, rng *rand.Rand) Assignment {
	assignment := make(Assignment, c.NumVariables())
	for _, v := range c.Variables() {
		best := bestValuesByConflicts(c, assignment, v)
		assignment[v] = best[rng.Intn(len(best))]
	}
	return assignment
}

// conflictedVariables returns the variables participating in at least
// one violated constraint under assignment.
func conflictedVariables(c *CSP, assignment Assignment) []VarID {
	var out []VarID
	for _, v := range c.Variables() {
		if violationCount(c, assignment, v) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// violationCount counts constraints touching v, fully bound by
// assignment, that are violated.
func violationCount(c *CSP, assignment Assignment, v VarID) int {
	n := 0
	bound := assignedSet(assignment)
	for _, ci := range c.ConstraintsOf(v) {
		con := c.Constraint(ci)
		if !scopeBound(con.Scope(), bound) {
			continue
		}
		if !con.IsSatisfied(assignment) {
			n++
		}
	}
	return n
}

// bestValuesByConflicts returns the values in v's original domain
// that minimize the resulting violation count, trying each value
// against the rest of assignment (v's own current binding, if any, is
// ignored while scoring).
func bestValuesByConflicts(c *CSP, assignment Assignment, v VarID) []int {
	trial := make(Assignment, len(assignment)+1)
	for k, val := range assignment {
		if k != v {
			trial[k] = val
		}
	}

	values := c.OriginalDomain(v).Values()
	best := -1
	var candidates []int
	for _, val := range values {
		trial[v] = val
		n := violationCount(c, trial, v)
		switch {
		case best == -1 || n < best:
			best = n
			candidates = []int{val}
		case n == best:
			candidates = append(candidates, val)
		}
	}
	return candidates
}
