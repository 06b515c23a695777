// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/lp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch indicates a point whose length does not match the
// problem (x: NumVars, y: NumConstraints).
var ErrDimensionMismatch = errors.New("verify: dimension mismatch")

// Report is the outcome of Check.
type Report struct {
	// Activity[i] is a_i·x.
	Activity []float64
	// Violation[i] is how far constraint i is violated (0 when satisfied).
	Violation []float64
	// MaxViolation is the largest entry of Violation or of -x.
	MaxViolation float64
	// Objective is c·x.
	Objective float64
	// Feasible reports MaxViolation ≤ tol.
	Feasible bool
}

// Check evaluates x against every constraint of p and the non-negativity
// bounds.
//
// Implementation:
//   - Stage 1: validate p and the length of x.
//   - Stage 2: Activity = A·x via mat.VecDense.MulVec.
//   - Stage 3: per-relation violation, plus max(-x_j, 0).
//
// Complexity: O(m·n).
func Check(p lp.Problem, x []float64, tol float64) (Report, error) {
	// Stage 1
	if err := lp.Validate(p); err != nil {
		return Report{}, fmt.Errorf("verify: %w", err)
	}
	if len(x) != p.NumVars() {
		return Report{}, fmt.Errorf("verify: x has %d entries, want %d: %w", len(x), p.NumVars(), ErrDimensionMismatch)
	}

	// Stage 2
	a, b := constraintMatrix(p)
	xv := mat.NewVecDense(len(x), append([]float64(nil), x...))
	var ax mat.VecDense
	ax.MulVec(a, xv)

	// Stage 3
	m := p.NumConstraints()
	rep := Report{
		Activity:  make([]float64, m),
		Violation: make([]float64, m),
		Objective: mat.Dot(mat.NewVecDense(len(p.Objective), append([]float64(nil), p.Objective...)), xv),
	}
	for i, c := range p.Constraints {
		act := ax.AtVec(i)
		rep.Activity[i] = act
		var v float64
		switch c.Relation {
		case lp.LessEqual:
			v = act - b.AtVec(i)
		case lp.GreaterEqual:
			v = b.AtVec(i) - act
		default:
			v = math.Abs(act - b.AtVec(i))
		}
		rep.Violation[i] = math.Max(v, 0)
	}
	rep.MaxViolation = math.Max(floats.Max(rep.Violation), -floats.Min(x))
	rep.MaxViolation = math.Max(rep.MaxViolation, 0)
	rep.Feasible = rep.MaxViolation <= tol

	return rep, nil
}

// Complementarity returns the largest complementary-slackness product of a
// primal point x and a dual point y:
//
//	max( |y_i · (b_i − a_i·x)| over constraints,
//	     |x_j · (A_jᵀ·y − c_j)| over variables )
//
// Both points are optimal for their problems when they are feasible and the
// result is 0.
//
// Complexity: O(m·n).
func Complementarity(p lp.Problem, x, y []float64) (float64, error) {
	if err := lp.Validate(p); err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	m, n := p.NumConstraints(), p.NumVars()
	if len(x) != n || len(y) != m {
		return 0, fmt.Errorf("verify: got x[%d], y[%d], want x[%d], y[%d]: %w", len(x), len(y), n, m, ErrDimensionMismatch)
	}

	a, b := constraintMatrix(p)
	xv := mat.NewVecDense(n, append([]float64(nil), x...))
	yv := mat.NewVecDense(m, append([]float64(nil), y...))

	var primalSlack mat.VecDense
	primalSlack.MulVec(a, xv)
	primalSlack.SubVec(b, &primalSlack)

	var dualSlack mat.VecDense
	dualSlack.MulVec(a.T(), yv)
	dualSlack.SubVec(&dualSlack, mat.NewVecDense(n, append([]float64(nil), p.Objective...)))

	var worst float64
	for i := 0; i < m; i++ {
		worst = math.Max(worst, math.Abs(yv.AtVec(i)*primalSlack.AtVec(i)))
	}
	for j := 0; j < n; j++ {
		worst = math.Max(worst, math.Abs(xv.AtVec(j)*dualSlack.AtVec(j)))
	}

	return worst, nil
}

// constraintMatrix copies the constraint rows of a validated problem into A
// and the right-hand sides into b.
func constraintMatrix(p lp.Problem) (*mat.Dense, *mat.VecDense) {
	a := mat.NewDense(p.NumConstraints(), p.NumVars(), nil)
	b := mat.NewVecDense(p.NumConstraints(), nil)
	for i, c := range p.Constraints {
		a.SetRow(i, c.Coefficients)
		b.SetVec(i, c.RHS)
	}

	return a, b
}
