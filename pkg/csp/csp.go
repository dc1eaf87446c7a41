package csp

import "sort"

// CSP holds the read-mostly model of a constraint satisfaction problem:
// variables, their original domains, constraints, and the neighbor /
// constraint-incidence indexes derived from them, all built in a
// single construction pass as constraints are registered.
//
// Once built, a CSP is read-mostly: the only mutable facet is weights,
// and even those are copied per search rather than mutated here —
// weights must be per-solve to avoid cross-run contamination when a
// CSP is shared by concurrent solves.
type CSP struct {
	names         []string
	domains       []Domain
	constraints   []Constraint
	neighbors     [][]VarID
	constraintsOf [][]int
}

// New validates and constructs a CSP. names[i] is a display label for
// VarID(i) (may be empty); domains[i] is that variable's original,
// non-empty value set. Construction fails fast, returning a
// MalformedCSPError, if any domain is empty or any constraint's scope
// references a variable outside range.
func New(names []string, domains [][]int, constraints []Constraint) (*CSP, error) {
	if len(names) != len(domains) {
		return nil, &MalformedCSPError{Reason: "names and domains length mismatch"}
	}
	n := len(domains)
	doms := make([]Domain, n)
	for i, vals := range domains {
		if len(vals) == 0 {
			return nil, &MalformedCSPError{Reason: "variable has empty original domain", Err: ErrEmptyDomain}
		}
		doms[i] = NewDomain(vals)
	}

	neighborSets := make([]map[VarID]struct{}, n)
	for i := range neighborSets {
		neighborSets[i] = make(map[VarID]struct{})
	}
	constraintsOf := make([][]int, n)

	for ci, c := range constraints {
		scope := c.Scope()
		if len(scope) == 0 {
			return nil, &MalformedCSPError{Reason: "constraint has empty scope", Err: ErrNoScope}
		}
		for _, v := range scope {
			if int(v) < 0 || int(v) >= n {
				return nil, &MalformedCSPError{Reason: "constraint scope references unknown variable", Err: ErrUnknownVariable}
			}
			constraintsOf[v] = append(constraintsOf[v], ci)
		}
		for _, a := range scope {
			for _, b := range scope {
				if a != b {
					neighborSets[a][b] = struct{}{}
				}
			}
		}
	}

	neighbors := make([][]VarID, n)
	for v, set := range neighborSets {
		list := make([]VarID, 0, len(set))
		for nb := range set {
			list = append(list, nb)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		neighbors[v] = list
	}

	return &CSP{
		names:         append([]string(nil), names...),
		domains:       doms,
		constraints:   append([]Constraint(nil), constraints...),
		neighbors:     neighbors,
		constraintsOf: constraintsOf,
	}, nil
}

// NumVariables returns the number of variables in the CSP.
func (c *CSP) NumVariables() int { return len(c.domains) }

// Variables returns the ordered sequence of variable identifiers
// (0..NumVariables-1), giving a deterministic total order for
// tie-breaking.
func (c *CSP) Variables() []VarID {
	out := make([]VarID, len(c.domains))
	for i := range out {
		out[i] = VarID(i)
	}
	return out
}

// Name returns the display label for v, if any.
func (c *CSP) Name(v VarID) string { return c.names[v] }

// OriginalDomain returns a clone of v's declared domain. Callers use
// this to seed the mutable current-domain map for a search.
func (c *CSP) OriginalDomain(v VarID) Domain { return c.domains[v].Clone() }

// CloneDomains returns the mutable current-domain slice a search
// mutates in place, one clone per variable.
func (c *CSP) CloneDomains() []Domain {
	out := make([]Domain, len(c.domains))
	for i, d := range c.domains {
		out[i] = d.Clone()
	}
	return out
}

// Constraints returns the CSP's constraints in declaration order.
func (c *CSP) Constraints() []Constraint { return c.constraints }

// Constraint returns the constraint with the given index.
func (c *CSP) Constraint(idx int) Constraint { return c.constraints[idx] }

// NumConstraints returns the number of constraints.
func (c *CSP) NumConstraints() int { return len(c.constraints) }

// Neighbors returns the variables that share at least one constraint
// with v, excluding v itself, in ascending VarID order.
func (c *CSP) Neighbors(v VarID) []VarID { return c.neighbors[v] }

// ConstraintsOf returns the indices of constraints whose scope includes
// v, in declaration order.
func (c *CSP) ConstraintsOf(v VarID) []int { return c.constraintsOf[v] }

// InitialWeights returns a fresh all-ones weight vector, one entry per
// constraint, for a new search to own and mutate. A solve starts from
// this vector unless Config.InitialWeights supplies one.
func (c *CSP) InitialWeights() []int64 {
	w := make([]int64, len(c.constraints))
	for i := range w {
		w[i] = 1
	}
	return w
}

// IsConsistent reports whether every constraint fully bound by
// assignment is satisfied.
func (c *CSP) IsConsistent(assignment Assignment) bool {
	bound := make(map[VarID]struct{}, len(assignment))
	for v := range assignment {
		bound[v] = struct{}{}
	}
	for _, con := range c.constraints {
		if scopeBound(con.Scope(), bound) && !con.IsSatisfied(assignment) {
			return false
		}
	}
	return true
}
