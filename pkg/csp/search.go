package csp

import "time"

// searchState is the mutable state threaded through one systematic
// search call: current domains, the partial assignment, the undo
// trail, and the bookkeeping conflict-directed backjumping and
// dom/wdeg need. It owns its domains and weights directly so that two
// concurrent Solve calls over the same CSP never share mutable state.
type searchState struct {
	csp        *CSP
	domains    []Domain
	assignment Assignment

	// order and posOf track the current DFS path: order[i] is the
	// variable assigned at depth i, posOf is its inverse. Both are
	// popped on the way back out of search, so a position captured in
	// a local variable remains a stable identifier for the frame that
	// assigned it even after the slice/map entry is gone.
	order []VarID
	posOf map[VarID]int

	weights []int64
	trail   trail
	stats   *Stats
	cfg     Config

	timedOut bool
}

// newSearchState seeds a fresh search over c's original domains. The
// weight vector starts from cfg.InitialWeights when the caller supplied
// one (cloned, so the caller's slice is never mutated), or from a fresh
// all-ones vector otherwise.
func newSearchState(c *CSP, cfg Config, stats *Stats) *searchState {
	weights := c.InitialWeights()
	if cfg.InitialWeights != nil {
		weights = append([]int64(nil), cfg.InitialWeights...)
	}
	return &searchState{
		csp:        c,
		domains:    c.CloneDomains(),
		assignment: make(Assignment, c.NumVariables()),
		order:      make([]VarID, 0, c.NumVariables()),
		posOf:      make(map[VarID]int, c.NumVariables()),
		weights:    weights,
		stats:      stats,
		cfg:        cfg,
	}
}

// budgetExpired reports whether cfg.TimeLimit has elapsed. A zero
// TimeLimit means unbounded.
func (st *searchState) budgetExpired() bool {
	if st.cfg.TimeLimit <= 0 {
		return false
	}
	return time.Since(st.stats.startedAt) >= st.cfg.TimeLimit
}

// bumpWeight increments the weight of the constraint blamed for a
// wipeout, feeding dom/wdeg's bookkeeping. A no-op for ci < 0.
func (st *searchState) bumpWeight(ci int) {
	if ci >= 0 {
		st.weights[ci]++
	}
}

// blamePositions returns the DFS positions of every currently-assigned
// variable in constraint ci's scope (empty for ci < 0). Variables in
// scope that are not yet assigned contribute nothing — they have no
// position to blame.
func (st *searchState) blamePositions(ci int) bitset {
	b := newBitset(st.csp.NumVariables())
	if ci < 0 {
		return b
	}
	for _, s := range st.csp.Constraint(ci).Scope() {
		if p, ok := st.posOf[s]; ok {
			b.set(p)
		}
	}
	return b
}

// checkConsistent evaluates every constraint touching v that is now
// fully bound by st.assignment (v must already be set), returning the
// union of blamed positions for any that are violated.
func (st *searchState) checkConsistent(v VarID) (bool, bitset) {
	bound := assignedSet(st.assignment)
	conflict := newBitset(st.csp.NumVariables())
	ok := true
	for _, ci := range st.csp.ConstraintsOf(v) {
		c := st.csp.Constraint(ci)
		if !scopeBound(c.Scope(), bound) {
			continue
		}
		st.stats.recordCheck()
		if !c.IsSatisfied(st.assignment) {
			ok = false
			conflict.union(st.blamePositions(ci))
		}
	}
	return ok, conflict
}

// search runs one recursive step of backtracking search with the
// configured inference and variable/value ordering, implementing both
// chronological backtracking and conflict-directed backjumping through
// the same conflict-set machinery: UseCBJ only changes
// whether a value-loop failure can be short-circuited past values that
// were never tried, and whether the post-loop backjump target comes
// from the accumulated conflict set or is left for the chronological
// caller to interpret as "try my own next value".
//
// Return semantics:
//   - solved=true: st.assignment is a complete, consistent assignment.
//   - solved=false, hasTarget=false: ordinary chronological failure;
//     the caller should try its own next value (or exhaust, in turn).
//   - solved=false, hasTarget=true: a backjump target was computed.
//     targetPos is the DFS position that must try a new value; if it
//     is not the caller's own position, the caller must propagate the
//     same target upward without trying further values of its own.
func (st *searchState) search() (solved bool, targetPos int, hasTarget bool, conflict bitset) {
	if st.timedOut || st.budgetExpired() {
		st.timedOut = true
		return false, 0, false, bitset{}
	}

	v, ok := selectVariable(st)
	if !ok {
		return true, 0, false, bitset{}
	}

	pos := len(st.order)
	st.posOf[v] = pos
	st.order = append(st.order, v)

	myConflict := newBitset(st.csp.NumVariables())
	values := orderValues(st, v)

	for _, val := range values {
		if st.timedOut || st.budgetExpired() {
			st.timedOut = true
			break
		}

		mark := st.trail.mark()
		st.assignment[v] = val

		consistent, directConflict := st.checkConsistent(v)
		if !consistent {
			delete(st.assignment, v)
			myConflict.union(directConflict)
			st.stats.recordBacktrack()
			continue
		}

		st.stats.recordAssignment()
		narrowToSingleton(st.domains, &st.trail, v, val)

		wipeout := wipeoutInfo{}
		switch st.cfg.Inference {
		case InferenceFC:
			wipeout = forwardCheck(st, v)
		case InferenceMAC:
			wipeout = ac3(st, ac3SeedFromAssignment(st, v))
		}

		if wipeout.happened {
			st.bumpWeight(wipeout.constraintIdx)
			myConflict.union(st.blamePositions(wipeout.constraintIdx))
			myConflict.set(pos)
			undoTo(st.domains, &st.trail, mark)
			delete(st.assignment, v)
			st.stats.recordBacktrack()
			continue
		}

		childSolved, childTargetPos, childHasTarget, childConflict := st.search()
		if childSolved {
			return true, 0, false, bitset{}
		}
		if st.timedOut {
			undoTo(st.domains, &st.trail, mark)
			delete(st.assignment, v)
			delete(st.posOf, v)
			st.order = st.order[:len(st.order)-1]
			return false, 0, false, bitset{}
		}

		undoTo(st.domains, &st.trail, mark)
		delete(st.assignment, v)
		st.stats.recordBacktrack()

		if st.cfg.UseCBJ && childHasTarget {
			if childTargetPos != pos {
				delete(st.posOf, v)
				st.order = st.order[:len(st.order)-1]
				return false, childTargetPos, true, childConflict
			}
			myConflict.union(childConflict)
		}
	}

	delete(st.posOf, v)
	st.order = st.order[:len(st.order)-1]

	if st.timedOut {
		return false, 0, false, bitset{}
	}
	if !st.cfg.UseCBJ {
		return false, 0, false, bitset{}
	}

	myConflict.clear(pos)
	if myConflict.isEmpty() {
		return false, 0, false, bitset{}
	}
	target := myConflict.max()
	full := myConflict.clone()
	full.set(pos)
	return false, target, true, full
}

// runSystematicSearch drives one full backtracking/CBJ search to
// completion, root-seeding MAC when configured: AC-3 also runs once
// before search begins, not only after each assignment.
func runSystematicSearch(c *CSP, cfg Config, stats *Stats) (Assignment, Status) {
	st := newSearchState(c, cfg, stats)
	defer func() { stats.weights = append([]int64(nil), st.weights...) }()

	if cfg.Inference == InferenceMAC {
		if w := ac3(st, ac3Seed(c)); w.happened {
			return nil, StatusUnsolvable
		}
	}
	if st.budgetExpired() {
		return nil, StatusBudgetExceeded
	}

	solved, _, _, _ := st.search()
	switch {
	case solved:
		out := make(Assignment, len(st.assignment))
		for k, v := range st.assignment {
			out[k] = v
		}
		return out, StatusSolved
	case st.timedOut:
		return nil, StatusBudgetExceeded
	default:
		return nil, StatusUnsolvable
	}
}
