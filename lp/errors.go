// SPDX-License-Identifier: MIT

package lp

import "errors"

// Sentinel errors returned by Validate and Decode.
var (
	// ErrNoVariables indicates an empty objective (no decision variables).
	ErrNoVariables = errors.New("lp: objective has no coefficients")

	// ErrNoConstraints indicates a problem without constraints.
	ErrNoConstraints = errors.New("lp: problem has no constraints")

	// ErrCoefficientCount indicates a constraint whose coefficient count
	// differs from the number of decision variables.
	ErrCoefficientCount = errors.New("lp: constraint coefficient count mismatch")

	// ErrNonFinite indicates a NaN or ±Inf coefficient or right-hand side.
	ErrNonFinite = errors.New("lp: NaN or Inf value")

	// ErrUnknownRelation indicates a relation other than ≤, = or ≥.
	ErrUnknownRelation = errors.New("lp: unknown constraint relation")

	// ErrMissingField indicates a problem document without a required key
	// (kind, or relation / rhs of a constraint).
	ErrMissingField = errors.New("lp: required field missing")

	// ErrUnknownKind indicates an objective kind other than maximize or minimize.
	ErrUnknownKind = errors.New("lp: unknown objective kind")
)
