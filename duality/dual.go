// SPDX-License-Identifier: MIT

package duality

import "github.com/katalvlaran/lvlp/lp"

// ConvertToDual returns the dual of p.
//
// Contract:
//   - Dual objective: the primal right-hand sides, in constraint order.
//   - Dual kind: the opposite of p.Kind.
//   - One dual constraint per primal variable j: coefficients are column j of
//     the primal constraints (0 where a row is shorter), RHS is objective
//     coefficient j, relation is ≥ for a Maximize primal and ≤ otherwise.
//
// p is not modified.
//
// Complexity: O(m·n).
func ConvertToDual(p lp.Problem) lp.Problem {
	m, n := p.NumConstraints(), p.NumVars()

	rel := lp.LessEqual
	if p.Kind == lp.Maximize {
		rel = lp.GreaterEqual
	}

	dual := lp.Problem{
		Kind:        p.Kind.Opposite(),
		Objective:   make([]float64, m),
		Constraints: make([]lp.Constraint, n),
	}
	for i, c := range p.Constraints {
		dual.Objective[i] = c.RHS
	}
	for j := 0; j < n; j++ {
		row := make([]float64, m)
		for i, c := range p.Constraints {
			row[i] = c.Coefficient(j)
		}
		dual.Constraints[j] = lp.Constraint{Coefficients: row, Relation: rel, RHS: p.Objective[j]}
	}

	return dual
}
