// Package duality_test provides runnable examples for the duality package.
package duality_test

import (
	"fmt"

	"github.com/katalvlaran/lvlp/duality"
	"github.com/katalvlaran/lvlp/lp"
)

// ExampleSolveDual derives and solves the dual of a production problem and
// reads the primal plan and the shadow prices back from it.
func ExampleSolveDual() {
	p := lp.Problem{
		Kind:      lp.Maximize,
		Objective: []float64{3, 5},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 0}, Relation: lp.LessEqual, RHS: 4},
			{Coefficients: []float64{0, 2}, Relation: lp.LessEqual, RHS: 12},
			{Coefficients: []float64{3, 2}, Relation: lp.LessEqual, RHS: 18},
		},
	}

	res, err := duality.SolveDual(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(lp.Format(res.Dual, "y"))
	fmt.Printf("Z=%.4g\n", res.Primal.Objective)
	fmt.Printf("x1=%.4g x2=%.4g\n", res.Primal.Values[0], res.Primal.Values[1])
	fmt.Printf("y=%.4g, %.4g, %.4g\n", res.Primal.ConstraintValues[0], res.Primal.ConstraintValues[1], res.Primal.ConstraintValues[2])
	// Output:
	// Minimize Z = 4y1 + 12y2 + 18y3
	//
	// Subject to:
	//   1y1 + 0y2 + 3y3 ≥ 3
	//   0y1 + 2y2 + 2y3 ≥ 5
	//
	// With y1, y2, y3 ≥ 0
	// Z=36
	// x1=2 x2=6
	// y=0, 1.5, 1
}

// ExampleConvertToDual shows that a minimization primal yields ≤ dual rows.
func ExampleConvertToDual() {
	p := lp.Problem{
		Kind:      lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.GreaterEqual, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: lp.GreaterEqual, RHS: 6},
		},
	}
	fmt.Println(duality.ConvertToDual(p))
	// Output:
	// Maximize Z = 4x1 + 6x2
	//
	// Subject to:
	//   1x1 + 1x2 ≤ 2
	//   1x1 + 3x2 ≤ 3
	//
	// With x1, x2 ≥ 0
}
