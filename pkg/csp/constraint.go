package csp

// VarID identifies a variable within a single CSP. It is a dense index
// into CSP.Variables(); callers mapping richer identifiers (e.g. a
// Sudoku cell's (row, col)) keep their own VarID-indexed lookup.
type VarID int

// Assignment is a (partial or total) mapping from variables to the values
// bound to them.
type Assignment map[VarID]int

// Constraint is the capability set the engine requires of every
// constraint: its scope and a satisfaction check over partial
// assignments. Unbound variables in Scope are ignored by IsSatisfied.
type Constraint interface {
	// Scope returns the ordered, non-empty sequence of variables this
	// constraint ranges over.
	Scope() []VarID

	// IsSatisfied reports whether the bound variables in partial satisfy
	// the constraint (true means not violated). Variables in Scope that
	// are absent from partial are ignored.
	IsSatisfied(partial Assignment) bool
}

// SupportChecker is an optional binary-constraint capability: for a
// binary constraint, Supports reports whether some value in xj's
// current domain is compatible with xi=a. The propagation engine
// falls back to iterating xj's domain with IsSatisfied when a
// constraint does not implement this interface.
type SupportChecker interface {
	Supports(xi VarID, a int, xj VarID, domain Domain) bool
}

// binaryScope returns (x, y, true) if c has exactly two variables in
// scope, else (0, 0, false).
func binaryScope(c Constraint) (VarID, VarID, bool) {
	s := c.Scope()
	if len(s) != 2 {
		return 0, 0, false
	}
	return s[0], s[1], true
}

// checkSupport evaluates whether xi=a is consistent with some value of
// xj, using the constraint's own Supports if provided, or a default
// domain-scan fallback.
func checkSupport(c Constraint, xi VarID, a int, xj VarID, domain Domain, stats *Stats) bool {
	if sc, ok := c.(SupportChecker); ok {
		return sc.Supports(xi, a, xj, domain)
	}
	ok := false
	domain.ForEach(func(b int) {
		if ok {
			return
		}
		part := Assignment{xi: a, xj: b}
		stats.recordCheck()
		if c.IsSatisfied(part) {
			ok = true
		}
	})
	return ok
}

// scopeBound reports whether every variable in scope has a binding in
// assigned (the set of currently-assigned variables).
func scopeBound(scope []VarID, assigned map[VarID]struct{}) bool {
	for _, v := range scope {
		if _, ok := assigned[v]; !ok {
			return false
		}
	}
	return true
}

// --- Constraint kinds (closed sum, dispatched structurally) ---
//
// Constraints are a handful of concrete wrapper types plus one
// user-predicate escape hatch, dispatched structurally rather than
// through a deep class hierarchy.

// NotEqual is a binary disequality constraint X != Y. AllDifferent
// expands into a collection of these.
type NotEqual struct {
	X, Y VarID
}

// Scope implements Constraint.
func (c NotEqual) Scope() []VarID { return []VarID{c.X, c.Y} }

// IsSatisfied implements Constraint.
func (c NotEqual) IsSatisfied(partial Assignment) bool {
	a, ok1 := partial[c.X]
	b, ok2 := partial[c.Y]
	if !ok1 || !ok2 {
		return true
	}
	return a != b
}

// Supports implements SupportChecker with an O(1) check instead of the
// default domain scan: a != b always has support unless xj's domain is
// the singleton {a}.
func (c NotEqual) Supports(xi VarID, a int, xj VarID, domain Domain) bool {
	if domain.IsSingleton() {
		return domain.SingletonValue() != a
	}
	return domain.Size() > 0
}

// BinaryRelation wraps an arbitrary two-variable predicate, for
// relations that are not simple disequality (offsets, arithmetic,
// ordering).
type BinaryRelation struct {
	X, Y VarID
	Rel  func(a, b int) bool
}

// Scope implements Constraint.
func (c BinaryRelation) Scope() []VarID { return []VarID{c.X, c.Y} }

// IsSatisfied implements Constraint.
func (c BinaryRelation) IsSatisfied(partial Assignment) bool {
	a, ok1 := partial[c.X]
	b, ok2 := partial[c.Y]
	if !ok1 || !ok2 {
		return true
	}
	return c.Rel(a, b)
}

// PredicateConstraint wraps an arbitrary user-supplied predicate over an
// arbitrary scope.
type PredicateConstraint struct {
	scope []VarID
	pred  func(Assignment) bool
}

// NewPredicateConstraint builds a constraint from a raw scope and
// predicate. The predicate must treat variables absent from the partial
// assignment as unconstrained (return true).
func NewPredicateConstraint(scope []VarID, pred func(Assignment) bool) PredicateConstraint {
	cp := make([]VarID, len(scope))
	copy(cp, scope)
	return PredicateConstraint{scope: cp, pred: pred}
}

// Scope implements Constraint.
func (c PredicateConstraint) Scope() []VarID { return c.scope }

// IsSatisfied implements Constraint.
func (c PredicateConstraint) IsSatisfied(partial Assignment) bool { return c.pred(partial) }

// AllDifferent expands an AllDifferent constraint over vars into the
// pairwise NotEqual constraints the engine actually propagates.
func AllDifferent(vars []VarID) []Constraint {
	out := make([]Constraint, 0, len(vars)*(len(vars)-1)/2)
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			out = append(out, NotEqual{X: vars[i], Y: vars[j]})
		}
	}
	return out
}
