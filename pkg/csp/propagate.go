package csp

// wipeoutInfo reports that propagation emptied a variable's current
// domain, and which constraint is blamed — the information CBJ and
// dom/wdeg need.
type wipeoutInfo struct {
	happened      bool
	variable      VarID
	constraintIdx int
}

// assignedSet returns the set of currently-bound variables.
func assignedSet(assignment Assignment) map[VarID]struct{} {
	s := make(map[VarID]struct{}, len(assignment))
	for v := range assignment {
		s[v] = struct{}{}
	}
	return s
}

// forwardCheck implements Forward Checking: after assigning
// x, every unassigned neighbor's current domain is filtered to the
// values consistent with every constraint that is now fully bound.
// Removals are pushed onto the shared trail so the caller can undo them
// on backtrack.
func forwardCheck(st *searchState, x VarID) wipeoutInfo {
	bound := assignedSet(st.assignment)
	for _, y := range st.csp.Neighbors(x) {
		if _, ok := bound[y]; ok {
			continue
		}
		boundPlusY := make(map[VarID]struct{}, len(bound)+1)
		for v := range bound {
			boundPlusY[v] = struct{}{}
		}
		boundPlusY[y] = struct{}{}

		var relevant []int
		for _, ci := range st.csp.ConstraintsOf(y) {
			if scopeBound(st.csp.Constraint(ci).Scope(), boundPlusY) {
				relevant = append(relevant, ci)
			}
		}
		if len(relevant) == 0 {
			continue
		}

		for _, b := range st.domains[y].Values() {
			violated := false
			blamed := -1
			trial := make(Assignment, len(st.assignment)+1)
			for k, v := range st.assignment {
				trial[k] = v
			}
			trial[y] = b
			for _, ci := range relevant {
				st.stats.recordCheck()
				if !st.csp.Constraint(ci).IsSatisfied(trial) {
					violated, blamed = true, ci
					break
				}
			}
			if violated {
				remove(st.domains, &st.trail, y, b, blamed)
				st.stats.recordPropagation(1)
				if st.domains[y].IsEmpty() {
					return wipeoutInfo{happened: true, variable: y, constraintIdx: blamed}
				}
			}
		}
	}
	return wipeoutInfo{}
}

// arcQueue is a deterministic FIFO worklist of directed arcs; ties are
// broken by insertion order.
type arc struct{ xi, xj VarID }

type arcQueue struct {
	items []arc
	head  int
}

func (q *arcQueue) push(a arc)  { q.items = append(q.items, a) }
func (q *arcQueue) empty() bool { return q.head >= len(q.items) }
func (q *arcQueue) pop() arc {
	a := q.items[q.head]
	q.head++
	return a
}

// ac3 drains queue to a fixed point over the given domains/trail,
// revising one binary arc at a time. It returns a wipeout descriptor
// if any variable's domain empties.
func ac3(st *searchState, queue *arcQueue) wipeoutInfo {
	bound := assignedSet(st.assignment)
	for !queue.empty() {
		if st.budgetExpired() {
			return wipeoutInfo{}
		}
		a := queue.pop()
		if _, ok := bound[a.xi]; ok {
			continue // already assigned, nothing left to revise
		}
		cis := constraintsBetween(st.csp, a.xi, a.xj)
		if len(cis) == 0 {
			continue
		}
		revised, blamed := false, -1
		for _, v := range st.domains[a.xi].Values() {
			supported := false
			for _, ci := range cis {
				if checkSupport(st.csp.Constraint(ci), a.xi, v, a.xj, st.domains[a.xj], st.stats) {
					supported = true
					break
				}
			}
			if !supported {
				remove(st.domains, &st.trail, a.xi, v, cis[0])
				st.stats.recordPropagation(1)
				revised, blamed = true, cis[0]
			}
		}
		if !revised {
			continue
		}
		if st.domains[a.xi].IsEmpty() {
			return wipeoutInfo{happened: true, variable: a.xi, constraintIdx: blamed}
		}
		for _, xk := range st.csp.Neighbors(a.xi) {
			if xk == a.xj {
				continue
			}
			if _, ok := bound[xk]; ok {
				continue
			}
			queue.push(arc{xi: xk, xj: a.xi})
		}
	}
	return wipeoutInfo{}
}

// ac3Seed builds the initial worklist for full root-level AC-3: every
// arc over a binary constraint, both directions.
func ac3Seed(c *CSP) *arcQueue {
	q := &arcQueue{}
	seen := make(map[arc]struct{})
	for _, con := range c.Constraints() {
		x, y, ok := binaryScope(con)
		if !ok {
			continue
		}
		for _, a := range []arc{{x, y}, {y, x}} {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			q.push(a)
		}
	}
	return q
}

// ac3SeedFromAssignment builds the worklist for maintaining arc
// consistency after assigning x: every arc (y, x) for y an unassigned
// neighbor of x.
func ac3SeedFromAssignment(st *searchState, x VarID) *arcQueue {
	q := &arcQueue{}
	for _, y := range st.csp.Neighbors(x) {
		if _, ok := st.assignment[y]; ok {
			continue
		}
		q.push(arc{xi: y, xj: x})
	}
	return q
}
