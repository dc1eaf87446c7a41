package problems

import (
	"fmt"
	"math/rand"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// RandomGraphColoring builds an Erdos-Renyi random graph on n vertices
// with edge probability p (seeded by seed) and a coloring CSP over k
// colors. VarID(i) is vertex i.
func RandomGraphColoring(n int, p float64, k int, seed int64) (*csp.CSP, error) {
	if n <= 0 {
		return nil, fmt.Errorf("problems: graph coloring needs at least one vertex")
	}
	if k <= 0 {
		return nil, fmt.Errorf("problems: graph coloring needs at least one color")
	}

	rng := rand.New(rand.NewSource(seed))
	names := make([]string, n)
	domains := make([][]int, n)
	colors := make([]int, k)
	for i := range colors {
		colors[i] = i
	}
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("v%d", i)
		domains[i] = append([]int(nil), colors...)
	}

	var constraints []csp.Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				constraints = append(constraints, csp.NotEqual{X: csp.VarID(i), Y: csp.VarID(j)})
			}
		}
	}

	return csp.New(names, domains, constraints)
}
