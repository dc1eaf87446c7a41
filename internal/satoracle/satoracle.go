// Package satoracle cross-checks pkg/csp's search results against an
// independent SAT solver (go-air/gini) for small instances, the same
// "second solver as ground truth" role go-air/gini plays in
// operator-lifecycle-manager's dependency resolver
// (pkg/controller/registry/resolver/solver). It exists purely for
// property tests: csp.Solve never imports this package.
//
// Only binary CSPs over small, explicit integer domains are
// supported — exactly the shape pkg/csp's property tests exercise
// (graph coloring, small Sudoku blocks). Encoding is the classical
// "direct" CSP-to-SAT translation: one boolean per (variable, value)
// pair, an at-least-one and pairwise at-most-one clause per variable,
// and one binary clause per forbidden value pair per constraint.
package satoracle

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// Oracle answers "is this CSP satisfiable" independently of pkg/csp's
// own search, for use as an adversarial check in property tests.
type Oracle struct {
	g    *gini.Gini
	lit  map[csp.VarID]map[int]z.Lit
	vals map[csp.VarID][]int
}

// Build encodes c into CNF and returns an Oracle ready to Solve.
func Build(c *csp.CSP) *Oracle {
	g := gini.New()
	o := &Oracle{
		g:    g,
		lit:  make(map[csp.VarID]map[int]z.Lit),
		vals: make(map[csp.VarID][]int),
	}

	for _, v := range c.Variables() {
		values := c.OriginalDomain(v).Values()
		o.vals[v] = values
		lits := make(map[int]z.Lit, len(values))
		row := make([]z.Lit, 0, len(values))
		for _, val := range values {
			m := g.Lit()
			lits[val] = m
			row = append(row, m)
		}
		o.lit[v] = lits

		// at-least-one
		for _, m := range row {
			g.Add(m)
		}
		g.Add(z.LitNull)

		// pairwise at-most-one
		for i := 0; i < len(row); i++ {
			for j := i + 1; j < len(row); j++ {
				g.Add(row[i].Not())
				g.Add(row[j].Not())
				g.Add(z.LitNull)
			}
		}
	}

	for _, con := range c.Constraints() {
		scope := con.Scope()
		if len(scope) != 2 {
			continue // direct encoding below only supports binary scopes
		}
		x, y := scope[0], scope[1]
		for _, a := range o.vals[x] {
			for _, b := range o.vals[y] {
				part := csp.Assignment{x: a, y: b}
				if con.IsSatisfied(part) {
					continue
				}
				g.Add(o.lit[x][a].Not())
				g.Add(o.lit[y][b].Not())
				g.Add(z.LitNull)
			}
		}
	}

	return o
}

// Satisfiable reports whether the encoded CSP has a solution. ok is
// false if gini returned neither SAT nor UNSAT within its default
// effort (this package sets no resource limits, so that should not
// happen on the small instances it is meant for).
func (o *Oracle) Satisfiable() (sat bool, ok bool) {
	switch o.g.Solve() {
	case 1:
		return true, true
	case -1:
		return false, true
	default:
		return false, false
	}
}

// Solution reads back a satisfying assignment after a true Solve
// result. Callers must have already confirmed Satisfiable returned
// (true, true).
func (o *Oracle) Solution(c *csp.CSP) csp.Assignment {
	out := make(csp.Assignment, c.NumVariables())
	for v, lits := range o.lit {
		for val, m := range lits {
			if o.g.Value(m) {
				out[v] = val
				break
			}
		}
	}
	return out
}
