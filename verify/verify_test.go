package verify_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/duality"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/katalvlaran/lvlp/verify"
	"github.com/stretchr/testify/require"
)

func wyndor() lp.Problem {
	return lp.Problem{
		Kind:      lp.Maximize,
		Objective: []float64{3, 5},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 0}, Relation: lp.LessEqual, RHS: 4},
			{Coefficients: []float64{0, 2}, Relation: lp.LessEqual, RHS: 12},
			{Coefficients: []float64{3, 2}, Relation: lp.LessEqual, RHS: 18},
		},
	}
}

func TestCheckFeasiblePoint(t *testing.T) {
	rep, err := verify.Check(wyndor(), []float64{2, 6}, 1e-9)
	require.NoError(t, err)

	require.True(t, rep.Feasible)
	require.Equal(t, []float64{2, 12, 18}, rep.Activity)
	require.Equal(t, []float64{0, 0, 0}, rep.Violation)
	require.Equal(t, 0.0, rep.MaxViolation)
	require.Equal(t, 36.0, rep.Objective)
}

func TestCheckViolations(t *testing.T) {
	p := lp.Problem{
		Objective: []float64{1, 1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.LessEqual, RHS: 2},
			{Coefficients: []float64{1, 0}, Relation: lp.GreaterEqual, RHS: 3},
			{Coefficients: []float64{0, 1}, Relation: lp.Equal, RHS: 1},
		},
	}
	rep, err := verify.Check(p, []float64{2, 0.5}, 1e-9)
	require.NoError(t, err)

	require.False(t, rep.Feasible)
	require.Equal(t, []float64{0.5, 1, 0.5}, rep.Violation)
	require.Equal(t, 1.0, rep.MaxViolation)

	rep, err = verify.Check(p, []float64{-4, 1}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 7.0, rep.MaxViolation)
}

func TestCheckErrors(t *testing.T) {
	_, err := verify.Check(wyndor(), []float64{1}, 1e-9)
	require.ErrorIs(t, err, verify.ErrDimensionMismatch)

	bad := wyndor()
	bad.Constraints[0].Coefficients = []float64{1}
	_, err = verify.Check(bad, []float64{1, 1}, 1e-9)
	require.ErrorIs(t, err, lp.ErrCoefficientCount)

	_, err = verify.Complementarity(wyndor(), []float64{2, 6}, []float64{1})
	require.ErrorIs(t, err, verify.ErrDimensionMismatch)
}

func TestSolverOutputIsFeasibleAndComplementary(t *testing.T) {
	problems := []lp.Problem{
		wyndor(),
		{
			Kind:      lp.Minimize,
			Objective: []float64{2, 3},
			Constraints: []lp.Constraint{
				{Coefficients: []float64{1, 1}, Relation: lp.GreaterEqual, RHS: 4},
				{Coefficients: []float64{1, 3}, Relation: lp.GreaterEqual, RHS: 6},
			},
		},
		{
			Kind:      lp.Maximize,
			Objective: []float64{2, 3, 4},
			Constraints: []lp.Constraint{
				{Coefficients: []float64{3, 2, 1}, Relation: lp.LessEqual, RHS: 10},
				{Coefficients: []float64{2, 5, 3}, Relation: lp.LessEqual, RHS: 15},
			},
		},
	}
	for _, p := range problems {
		for _, st := range []simplex.Strategy{simplex.StrategyAuto, simplex.StrategyBigM, simplex.StrategyTwoPhase} {
			sol, err := simplex.Solve(p, simplex.WithStrategy(st))
			require.NoError(t, err)
			require.True(t, sol.Optimal)

			rep, err := verify.Check(p, sol.Values, 1e-9)
			require.NoError(t, err)
			require.True(t, rep.Feasible, "%s: max violation %g", st, rep.MaxViolation)
			require.InDelta(t, sol.Objective, rep.Objective, 1e-9)

			res, err := duality.SolveDual(p, simplex.WithStrategy(st))
			require.NoError(t, err)
			gap, err := verify.Complementarity(p, sol.Values, res.Primal.ConstraintValues)
			require.NoError(t, err)
			require.InDelta(t, 0, gap, 1e-9)
		}
	}
}
