package csp

import "sort"

// selectVariable picks the next unassigned variable to branch on,
// according to the configured heuristic. It is read-only over the
// search state, returning false once every variable is assigned.
func selectVariable(st *searchState) (VarID, bool) {
	switch st.cfg.VariableOrder {
	case VariableOrderMRV:
		return selectMRV(st)
	case VariableOrderDomWdeg:
		return selectDomWdeg(st)
	default:
		return selectDefault(st)
	}
}

func selectDefault(st *searchState) (VarID, bool) {
	for _, v := range st.csp.Variables() {
		if _, bound := st.assignment[v]; !bound {
			return v, true
		}
	}
	return 0, false
}

// futureDegree counts v's neighbors that are not yet assigned.
func futureDegree(st *searchState, v VarID) int {
	d := 0
	for _, nb := range st.csp.Neighbors(v) {
		if _, bound := st.assignment[nb]; !bound {
			d++
		}
	}
	return d
}

// selectMRV picks the unassigned variable with the smallest current
// domain, breaking ties by largest future degree, then by CSP
// declaration order.
func selectMRV(st *searchState) (VarID, bool) {
	best, bestSize, bestDeg, found := VarID(0), 0, -1, false
	for _, v := range st.csp.Variables() {
		if _, bound := st.assignment[v]; bound {
			continue
		}
		size := st.domains[v].Size()
		deg := futureDegree(st, v)
		if !found || size < bestSize || (size == bestSize && deg > bestDeg) {
			best, bestSize, bestDeg, found = v, size, deg, true
		}
	}
	return best, found
}

// wdeg returns the weighted degree of v: the sum of weights of
// constraints touching v that still have at least two unassigned
// variables in scope.
func wdeg(st *searchState, v VarID) int64 {
	var total int64
	for _, ci := range st.csp.ConstraintsOf(v) {
		unassigned := 0
		for _, s := range st.csp.Constraint(ci).Scope() {
			if _, bound := st.assignment[s]; !bound {
				unassigned++
			}
		}
		if unassigned >= 2 {
			total += st.weights[ci]
		}
	}
	return total
}

// selectDomWdeg picks the unassigned variable minimizing
// |domain|/wdeg, treating wdeg=0 as +Inf; ties broken by CSP
// declaration order.
func selectDomWdeg(st *searchState) (VarID, bool) {
	best, found := VarID(0), false
	bestScore := 0.0
	bestIsInf := true
	for _, v := range st.csp.Variables() {
		if _, bound := st.assignment[v]; bound {
			continue
		}
		w := wdeg(st, v)
		size := float64(st.domains[v].Size())
		isInf := w == 0
		var score float64
		if !isInf {
			score = size / float64(w)
		}
		if !found {
			best, bestScore, bestIsInf, found = v, score, isInf, true
			continue
		}
		switch {
		case bestIsInf && !isInf:
			best, bestScore, bestIsInf = v, score, isInf
		case bestIsInf && isInf:
			// both infinite: fall back to MRV among infinite-wdeg vars
			if size < float64(st.domains[best].Size()) {
				best, bestScore, bestIsInf = v, score, isInf
			}
		case !bestIsInf && !isInf && score < bestScore:
			best, bestScore, bestIsInf = v, score, isInf
		}
	}
	return best, found
}

// orderValues orders v's candidate values according to the configured
// value-ordering heuristic.
func orderValues(st *searchState, v VarID) []int {
	values := st.domains[v].Values()
	switch st.cfg.ValueOrder {
	case ValueOrderLCV:
		return orderLCV(st, v, values)
	default:
		return values
	}
}

// orderLCV sorts candidate values ascending by how many values they
// would rule out of unassigned neighbors' current domains under a
// one-step lookahead.
func orderLCV(st *searchState, v VarID, values []int) []int {
	type scored struct {
		val   int
		ruled int
	}
	scores := make([]scored, len(values))
	for i, val := range values {
		ruled := 0
		for _, nb := range st.csp.Neighbors(v) {
			if _, bound := st.assignment[nb]; bound {
				continue
			}
			ruled += countRuledOut(st, v, val, nb)
		}
		scores[i] = scored{val: val, ruled: ruled}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].ruled < scores[j].ruled })
	out := make([]int, len(scores))
	for i, s := range scores {
		out[i] = s.val
	}
	return out
}

// countRuledOut counts values b in nb's current domain such that some
// binary constraint between v and nb rejects (v=val, nb=b).
func countRuledOut(st *searchState, v VarID, val int, nb VarID) int {
	ruled := 0
	cis := constraintsBetween(st.csp, v, nb)
	st.domains[nb].ForEach(func(b int) {
		part := Assignment{v: val, nb: b}
		for _, ci := range cis {
			if !st.csp.Constraint(ci).IsSatisfied(part) {
				ruled++
				return
			}
		}
	})
	return ruled
}

// constraintsBetween returns the indices of constraints whose scope is
// exactly {x, y} (the binary constraints directly linking them).
func constraintsBetween(c *CSP, x, y VarID) []int {
	var out []int
	for _, ci := range c.ConstraintsOf(x) {
		a, b, ok := binaryScope(c.Constraint(ci))
		if ok && ((a == x && b == y) || (a == y && b == x)) {
			out = append(out, ci)
		}
	}
	return out
}
