package csp

import "time"

// Inference selects the propagation/search family, modeled as a
// first-class field rather than overloading one "inference level" enum
// with an unrelated local-search mode; see DESIGN.md for the rationale.
type Inference int

const (
	// InferenceNone performs no propagation beyond the direct
	// consistency check at assignment time.
	InferenceNone Inference = iota
	// InferenceFC runs forward checking after each assignment.
	InferenceFC
	// InferenceMAC runs full AC-3 (maintaining arc consistency) after
	// each assignment, and once at the root before search begins.
	InferenceMAC
	// InferenceMinConflicts switches the facade to the local searcher
	// instead of systematic search; VariableOrder, ValueOrder and UseCBJ
	// are ignored in this mode.
	InferenceMinConflicts
)

func (i Inference) String() string {
	switch i {
	case InferenceNone:
		return "none"
	case InferenceFC:
		return "fc"
	case InferenceMAC:
		return "mac"
	case InferenceMinConflicts:
		return "min_conflicts"
	default:
		return "unknown"
	}
}

// VariableOrder selects the variable-selection heuristic for systematic
// search.
type VariableOrder int

const (
	// VariableOrderDefault uses CSP declaration order.
	VariableOrderDefault VariableOrder = iota
	// VariableOrderMRV uses minimum-remaining-values with degree
	// tie-breaking.
	VariableOrderMRV
	// VariableOrderDomWdeg uses domain-size / weighted-degree; weight
	// increments on wipeout are tracked regardless of UseCBJ.
	VariableOrderDomWdeg
)

func (v VariableOrder) String() string {
	switch v {
	case VariableOrderMRV:
		return "mrv"
	case VariableOrderDomWdeg:
		return "dom_wdeg"
	default:
		return "default"
	}
}

// ValueOrder selects the value-ordering heuristic for systematic search.
type ValueOrder int

const (
	// ValueOrderDefault uses the domain's intrinsic iteration order.
	ValueOrderDefault ValueOrder = iota
	// ValueOrderLCV uses least-constraining-value ordering.
	ValueOrderLCV
)

func (v ValueOrder) String() string {
	if v == ValueOrderLCV {
		return "lcv"
	}
	return "default"
}

// Config configures a single Solve call. The zero value is valid and
// selects no propagation, declaration-order variables, domain-order
// values and no CBJ; DefaultConfig returns the recommended settings.
type Config struct {
	Inference     Inference
	VariableOrder VariableOrder
	ValueOrder    ValueOrder
	UseCBJ        bool

	// MaxSteps bounds min-conflicts repair steps. Ignored by systematic
	// search.
	MaxSteps int

	// TimeLimit, if non-zero, bounds wall-clock time for any mode.
	// Checked at every node expansion and propagation worklist
	// iteration.
	TimeLimit time.Duration

	// Seed drives the local searcher's random choices; LCV/MRV
	// tie-breaks are otherwise deterministic and ignore Seed.
	Seed int64

	// InitialWeights, if non-nil, seeds systematic search's dom/wdeg
	// weight vector instead of the all-ones default, letting a caller
	// carry weights learned from one solve into the next over a series
	// of runs on the same CSP. Length must equal the CSP's constraint
	// count; ignored by min-conflicts. See Stats.Weights for reading
	// the weights a solve produced.
	InitialWeights []int64

	// Logger receives one debug line when Solve starts (the
	// configuration) and one when it finishes (status and counters);
	// individual search decisions are not logged. nil disables all
	// logging (see internal/log).
	Logger searchLogger

	// Metrics, if non-nil, receives the final Stats once each Solve call
	// finishes (see internal/metrics).
	Metrics metricsSink
}

// DefaultConfig returns a Config using MAC propagation, MRV+degree
// variable ordering, LCV value ordering, and CBJ enabled — a reasonable
// default for general finite-domain problems.
func DefaultConfig() Config {
	return Config{
		Inference:     InferenceMAC,
		VariableOrder: VariableOrderMRV,
		ValueOrder:    ValueOrderLCV,
		UseCBJ:        true,
		MaxSteps:      100000,
		Seed:          42,
	}
}

// Validate checks Config for invalid field values (unknown option
// value, negative budget), failing fast at Solve entry.
func (c Config) Validate() error {
	switch c.Inference {
	case InferenceNone, InferenceFC, InferenceMAC, InferenceMinConflicts:
	default:
		return &InvalidConfigError{Field: "Inference", Reason: "unknown value"}
	}
	switch c.VariableOrder {
	case VariableOrderDefault, VariableOrderMRV, VariableOrderDomWdeg:
	default:
		return &InvalidConfigError{Field: "VariableOrder", Reason: "unknown value"}
	}
	switch c.ValueOrder {
	case ValueOrderDefault, ValueOrderLCV:
	default:
		return &InvalidConfigError{Field: "ValueOrder", Reason: "unknown value"}
	}
	if c.MaxSteps < 0 {
		return &InvalidConfigError{Field: "MaxSteps", Reason: "must be non-negative"}
	}
	if c.TimeLimit < 0 {
		return &InvalidConfigError{Field: "TimeLimit", Reason: "must be non-negative"}
	}
	return nil
}

// searchLogger is the minimal logging capability Config.Logger needs;
// internal/log's Logger satisfies it. Kept as an unexported interface so
// pkg/csp never imports logrus directly.
type searchLogger interface {
	Debugf(format string, args ...any)
}

// metricsSink is the minimal capability Config.Metrics needs;
// internal/metrics's Registry satisfies it.
type metricsSink interface {
	Observe(s Stats)
}
