// Package bench runs independent Solve calls concurrently across a
// seed sweep, exercising the concurrency the core solver allows (a
// CSP's immutable parts may be shared across concurrent solves on
// distinct inputs, since each Solve call owns its own domains and
// weights). It is test/benchmark tooling, not part of the solving
// core.
package bench

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// Result pairs a seed with the outcome of solving with that seed.
type Result struct {
	Seed     int64
	Solution csp.Solution
	Stats    csp.Stats
	Err      error
}

// SeedSweep solves c once per seed in seeds, concurrently, returning
// one Result per seed in the same order as seeds regardless of
// completion order. cfg is reused for every solve except Seed, which
// is overridden per call.
func SeedSweep(ctx context.Context, c *csp.CSP, cfg csp.Config, seeds []int64) ([]Result, error) {
	results := make([]Result, len(seeds))
	g, _ := errgroup.WithContext(ctx)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			runCfg := cfg
			runCfg.Seed = seed
			sol, stats, err := csp.Solve(c, runCfg)
			results[i] = Result{Seed: seed, Solution: sol, Stats: stats, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
