// SPDX-License-Identifier: MIT

package simplex

import "math"

const (
	// DefaultMaxIterations caps the number of pivots of one solve.
	DefaultMaxIterations = 100

	// DefaultBigM is the smallest penalty used by StrategyBigM.
	DefaultBigM = 1e6

	// DefaultTolerance is the pivot tolerance: reduced costs below -Tolerance
	// improve the objective, column entries above Tolerance qualify for the
	// ratio test.
	DefaultTolerance = 1e-9

	// PhaseOneTolerance bounds the phase-1 artificial sum of a feasible problem.
	PhaseOneTolerance = 1e-10

	// bigMScale multiplies the largest coefficient magnitude when BigM is derived.
	bigMScale = 1e3
)

// Options configures Solve.
//
// Strategy      – how the initial basis is obtained (default StrategyAuto).
// PivotRule     – entering/leaving rule (default Dantzig).
// MaxIterations – pivot cap across all phases (default 100).
// BigM          – artificial penalty; 0 derives max(1e6, 1e3·max|coefficient|).
// Tolerance     – pivot tolerance (default 1e-9).
// Lenient       – zero-fill/truncate ragged rows instead of rejecting them.
type Options struct {
	Strategy      Strategy
	PivotRule     PivotRule
	MaxIterations int
	BigM          float64
	Tolerance     float64
	Lenient       bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Strategy:      StrategyAuto,
		PivotRule:     Dantzig,
		MaxIterations: DefaultMaxIterations,
		BigM:          0,
		Tolerance:     DefaultTolerance,
	}
}

// WithStrategy selects the strategy. Unknown values are reported by Solve
// as ErrUnknownStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithPivotRule selects the pivot rule. Unknown values are reported by Solve
// as ErrUnknownPivotRule.
func WithPivotRule(r PivotRule) Option {
	return func(o *Options) {
		o.PivotRule = r
	}
}

// WithMaxIterations sets the pivot cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithBigM fixes the Big-M penalty. Panics if m is not positive and finite.
func WithBigM(m float64) Option {
	return func(o *Options) {
		if !(m > 0) || math.IsInf(m, 0) {
			panic(ErrBadBigM.Error())
		}
		o.BigM = m
	}
}

// WithTolerance sets the pivot tolerance. Panics unless 0 < eps < 1.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0 && eps < 1) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = eps
	}
}

// WithLenientInput accepts constraint rows whose length differs from the
// number of decision variables: short rows are zero-filled, long rows
// truncated. Non-finite numbers and unknown relations are still rejected.
func WithLenientInput() Option {
	return func(o *Options) {
		o.Lenient = true
	}
}
