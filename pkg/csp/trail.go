package csp

// trailEntry records a single value removed from a variable's current
// domain, together with the constraint blamed for the removal (or -1 if
// the removal came from narrowing a variable to its assigned value
// rather than from propagation).
type trailEntry struct {
	v             VarID
	value         int
	constraintIdx int // -1 for an assignment narrowing, else the blamed constraint
}

// trail is the LIFO undo log shared by assignment narrowing and
// propagation within one search. Its depth is bounded by
// O(|V|^2 * max|D|); restore is strictly LIFO per recursion frame.
type trail []trailEntry

// mark returns the current trail length, a snapshot a caller can later
// pass to undoTo.
func (t trail) mark() int { return len(t) }

// undoTo reinserts every value removed since mark, in reverse order, and
// truncates the trail back to mark.
func undoTo(domains []Domain, t *trail, mark int) {
	for i := len(*t) - 1; i >= mark; i-- {
		e := (*t)[i]
		domains[e.v].Insert(e.value)
	}
	*t = (*t)[:mark]
}

// remove deletes v=value from domains[v]'s current domain and appends
// the removal to the trail, blamed on constraintIdx (-1 for assignment
// narrowing). Returns false if the value was already absent (the
// caller should treat that as a no-op, not a fresh removal).
func remove(domains []Domain, t *trail, v VarID, value int, constraintIdx int) bool {
	if !domains[v].Remove(value) {
		return false
	}
	*t = append(*t, trailEntry{v: v, value: value, constraintIdx: constraintIdx})
	return true
}

// narrowToSingleton removes every value but keep from domains[v],
// recording each removal on the trail as an assignment narrowing
// (constraintIdx -1) rather than a propagation blame.
func narrowToSingleton(domains []Domain, t *trail, v VarID, keep int) {
	for _, val := range domains[v].Values() {
		if val == keep {
			continue
		}
		remove(domains, t, v, val, -1)
	}
}
