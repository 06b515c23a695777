// SPDX-License-Identifier: MIT

package duality

import (
	"math"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
)

// PrimalSolution is the primal view of a solved dual.
//
// Unless Status is simplex.StatusOptimal, the flags and Status are copied
// from the dual solution, Objective is NaN and both slices are nil.
type PrimalSolution struct {
	Status    simplex.Status
	Feasible  bool
	Optimal   bool
	Unbounded bool
	Objective float64

	// Values holds the primal decision variables x_1..x_n.
	Values []float64
	// ConstraintValues holds, per primal constraint, the dual variable value
	// (shadow price).
	ConstraintValues []float64
}

// ConvertToPrimalSolution maps a dual solution produced by simplex.Solve on
// ConvertToDual(p) back to p, where primalConstraints are p.Constraints and
// numPrimalVars is p.NumVars().
//
// The basis scan yields the dual variable values, which are reported as
// ConstraintValues (shadow prices of the primal constraints). The primal
// variable values come from the reduced costs of the dual's slack and surplus
// columns instead. Code that expects the basis scan to produce x should read
// Values, not ConstraintValues.
//
// Implementation:
//   - Stage 1: propagate any non-optimal dual outcome.
//   - Stage 2: for every primal constraint i, scan the dual basis for column
//     i; its row RHS is ConstraintValues[i], otherwise 0.
//   - Stage 3: Values[j] is the objective-row entry of the slack/surplus
//     column of dual constraint j. Tiny negative noise is clamped to 0.
//
// Complexity: O(m·k) for m primal constraints and k dual basis rows.
func ConvertToPrimalSolution(dual simplex.Solution, primalConstraints []lp.Constraint, numPrimalVars int) PrimalSolution {
	// Stage 1
	if dual.Status != simplex.StatusOptimal || dual.Tableau == nil {
		return PrimalSolution{
			Status:    dual.Status,
			Feasible:  dual.Feasible,
			Optimal:   dual.Optimal,
			Unbounded: dual.Unbounded,
			Objective: math.NaN(),
		}
	}

	// Stage 2
	rhsCol := dual.Tableau.Cols() - 1
	cv := make([]float64, len(primalConstraints))
	for i := range cv {
		for k, v := range dual.Basis {
			if v.Column != i {
				continue
			}
			rhs, err := dual.Tableau.At(k+1, rhsCol)
			if err == nil {
				cv[i] = clamp(rhs)
			}
			break
		}
	}

	// Stage 3
	values := make([]float64, numPrimalVars)
	for j := range values {
		if j < len(dual.Auxiliary) {
			values[j] = clamp(dual.ReducedCost(dual.Auxiliary[j]))
		}
	}

	return PrimalSolution{
		Status:           simplex.StatusOptimal,
		Feasible:         true,
		Optimal:          true,
		Objective:        dual.Objective,
		Values:           values,
		ConstraintValues: cv,
	}
}

// clamp maps values in (-1e-9, 0) to 0.
func clamp(v float64) float64 {
	if v < 0 && v > -1e-9 {
		return 0
	}

	return v
}
