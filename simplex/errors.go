// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors. Input errors from lp.Validate are returned wrapped and can
// be matched with errors.Is against the lp sentinels.
var (
	// ErrUnknownStrategy indicates a Strategy value outside the known set.
	ErrUnknownStrategy = errors.New("simplex: unknown strategy")

	// ErrUnknownPivotRule indicates a PivotRule value outside the known set.
	ErrUnknownPivotRule = errors.New("simplex: unknown pivot rule")

	// ErrArtificialRequired indicates that StrategyStandard was asked to solve
	// a problem with ≥ or = rows, which has no feasible slack basis.
	ErrArtificialRequired = errors.New("simplex: problem needs artificial variables; use big-m, two-phase or auto")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("simplex: MaxIterations must be positive")

	// ErrBadBigM indicates a non-positive or non-finite Big-M penalty.
	ErrBadBigM = errors.New("simplex: BigM must be positive and finite")

	// ErrBadTolerance indicates a tolerance outside (0, 1).
	ErrBadTolerance = errors.New("simplex: Tolerance must be in (0, 1)")
)
