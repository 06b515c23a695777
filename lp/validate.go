// SPDX-License-Identifier: MIT

// Package lp - validation and normalization.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Validation order: kind -> objective -> constraints (row by row).
package lp

import (
	"fmt"
	"math"
)

// Validate checks p against the strict boundary contract.
//
// Contract:
//   - Kind is Maximize or Minimize.
//   - At least one decision variable and one constraint.
//   - Every constraint has exactly NumVars() coefficients and a known relation.
//   - All numbers are finite.
//
// Complexity: O(m·n).
func Validate(p Problem) error {
	if !p.Kind.Valid() {
		return fmt.Errorf("kind %d: %w", int(p.Kind), ErrUnknownKind)
	}
	n := p.NumVars()
	if n == 0 {
		return ErrNoVariables
	}
	if len(p.Constraints) == 0 {
		return ErrNoConstraints
	}
	for j, v := range p.Objective {
		if !finite(v) {
			return fmt.Errorf("objective[%d]: %w", j, ErrNonFinite)
		}
	}
	for i, c := range p.Constraints {
		if err := validateConstraint(c, n); err != nil {
			return fmt.Errorf("constraint %d: %w", i+1, err)
		}
	}

	return nil
}

// validateConstraint checks a single row against n decision variables.
func validateConstraint(c Constraint, n int) error {
	if !c.Relation.Valid() {
		return fmt.Errorf("relation %d: %w", int(c.Relation), ErrUnknownRelation)
	}
	if len(c.Coefficients) != n {
		return fmt.Errorf("got %d coefficients, want %d: %w", len(c.Coefficients), n, ErrCoefficientCount)
	}
	for j, v := range c.Coefficients {
		if !finite(v) {
			return fmt.Errorf("coefficient[%d]: %w", j, ErrNonFinite)
		}
	}
	if !finite(c.RHS) {
		return fmt.Errorf("rhs: %w", ErrNonFinite)
	}

	return nil
}

// Pad returns a copy of p where every constraint row has exactly NumVars()
// coefficients: short rows are zero-filled, long rows truncated.
// Relations and right-hand sides are copied unchanged.
//
// Complexity: O(m·n).
func Pad(p Problem) Problem {
	n := p.NumVars()
	out := Problem{
		Kind:        p.Kind,
		Objective:   append([]float64(nil), p.Objective...),
		Constraints: make([]Constraint, len(p.Constraints)),
	}
	for i, c := range p.Constraints {
		row := make([]float64, n)
		copy(row, c.Coefficients) // copies min(n, len) values
		out.Constraints[i] = Constraint{Coefficients: row, Relation: c.Relation, RHS: c.RHS}
	}

	return out
}

// Normalize pads p (see Pad) and rewrites every constraint with a negative
// right-hand side as −a·x (flipped relation) −b, so all right-hand sides are
// non-negative. Row order is preserved, which keeps constraint indices stable
// for callers that map results back to the original rows.
//
// Complexity: O(m·n).
func Normalize(p Problem) Problem {
	out := Pad(p)
	for i := range out.Constraints {
		c := &out.Constraints[i]
		if c.RHS >= 0 {
			continue
		}
		for j := range c.Coefficients {
			c.Coefficients[j] = -c.Coefficients[j]
		}
		c.RHS = -c.RHS
		c.Relation = c.Relation.Flip()
	}

	return out
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
