// Package metrics mirrors csp.Stats into Prometheus counters and a
// runtime histogram, an additive scrape surface for a host service. The core
// solver never depends on this package; it is wired in only through
// csp.Config.Metrics's unexported metricsSink capability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gitrdm/csplogic/pkg/csp"
)

// Registry holds the Prometheus collectors a solver run reports to.
// One Registry can back many sequential or concurrent Solve calls.
// Stats is a cumulative-since-solve-start snapshot, so Observe adds
// each counter's total and records the runtime once per finished
// solve, not incrementally per node.
type Registry struct {
	solves           *prometheus.CounterVec
	backtracks       prometheus.Counter
	assignments      prometheus.Counter
	constraintChecks prometheus.Counter
	propagations     prometheus.Counter
	localSteps       prometheus.Counter
	runtimeSeconds   prometheus.Histogram
}

// NewRegistry builds a Registry and registers its collectors with reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "solves_total",
			Help:      "Count of Solve calls by terminal status.",
		}, []string{"status"}),
		backtracks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "backtracks_total",
			Help:      "Cumulative count of failed value attempts across all solves.",
		}),
		assignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "assignments_total",
			Help:      "Cumulative count of successful variable bindings attempted.",
		}),
		constraintChecks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "constraint_checks_total",
			Help:      "Cumulative count of constraint checks (see csp.Stats.ConstraintChecks).",
		}),
		propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "propagations_total",
			Help:      "Cumulative count of domain values removed by inference.",
		}),
		localSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "csplogic",
			Name:      "local_steps_total",
			Help:      "Cumulative count of min-conflicts repair steps.",
		}),
		runtimeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "csplogic",
			Name:      "solve_runtime_seconds",
			Help:      "Per-solve wall-clock duration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.solves, r.backtracks, r.assignments, r.constraintChecks, r.propagations, r.localSteps, r.runtimeSeconds)
	return r
}

// Observe implements csp's unexported metricsSink capability, recording
// one finished Solve call's statistics.
func (r *Registry) Observe(s csp.Stats) {
	if r == nil {
		return
	}
	r.solves.WithLabelValues(s.Status.String()).Inc()
	r.backtracks.Add(float64(s.Backtracks()))
	r.assignments.Add(float64(s.Assignments()))
	r.constraintChecks.Add(float64(s.ConstraintChecks()))
	r.propagations.Add(float64(s.Propagations()))
	r.localSteps.Add(float64(s.LocalSteps()))
	r.runtimeSeconds.Observe(s.RuntimeSeconds())
}
