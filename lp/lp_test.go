package lp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/stretchr/testify/require"
)

// wyndor is the textbook problem max 3x1+5x2 s.t. x1≤4, 2x2≤12, 3x1+2x2≤18.
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

func TestValidateAcceptsWellFormed(t *testing.T) {
	require.NoError(t, lp.Validate(wyndor()))
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *lp.Problem)
		want   error
	}{
		{"unknown kind", func(p *lp.Problem) { p.Kind = lp.Kind(7) }, lp.ErrUnknownKind},
		{"no variables", func(p *lp.Problem) { p.Objective = nil }, lp.ErrNoVariables},
		{"no constraints", func(p *lp.Problem) { p.Constraints = nil }, lp.ErrNoConstraints},
		{"ragged row", func(p *lp.Problem) { p.Constraints[1].Coefficients = []float64{2} }, lp.ErrCoefficientCount},
		{"long row", func(p *lp.Problem) { p.Constraints[0].Coefficients = []float64{1, 0, 3} }, lp.ErrCoefficientCount},
		{"nan objective", func(p *lp.Problem) { p.Objective[0] = math.NaN() }, lp.ErrNonFinite},
		{"inf coefficient", func(p *lp.Problem) { p.Constraints[2].Coefficients[1] = math.Inf(1) }, lp.ErrNonFinite},
		{"inf rhs", func(p *lp.Problem) { p.Constraints[2].RHS = math.Inf(-1) }, lp.ErrNonFinite},
		{"bad relation", func(p *lp.Problem) { p.Constraints[0].Relation = lp.Relation(9) }, lp.ErrUnknownRelation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := wyndor()
			tc.mutate(&p)
			require.ErrorIs(t, lp.Validate(p), tc.want)
		})
	}
}

func TestPadZeroFillsAndTruncates(t *testing.T) {
	p := lp.Problem{
		Objective: []float64{1, 1, 1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1}, RHS: 1},
			{Coefficients: []float64{1, 2, 3, 4}, Relation: lp.GreaterEqual, RHS: 2},
		},
	}
	out := lp.Pad(p)

	require.Equal(t, []float64{1, 0, 0}, out.Constraints[0].Coefficients)
	require.Equal(t, []float64{1, 2, 3}, out.Constraints[1].Coefficients)
	require.Equal(t, lp.GreaterEqual, out.Constraints[1].Relation)
	// Input untouched.
	require.Len(t, p.Constraints[0].Coefficients, 1)
	require.NoError(t, lp.Validate(out))
}

func TestNormalizeFlipsNegativeRHS(t *testing.T) {
	p := lp.Problem{
		Objective: []float64{1, 2},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, -1}, Relation: lp.LessEqual, RHS: -3},
			{Coefficients: []float64{2, 1}, Relation: lp.GreaterEqual, RHS: -1},
			{Coefficients: []float64{1, 1}, Relation: lp.Equal, RHS: -2},
			{Coefficients: []float64{1, 1}, Relation: lp.LessEqual, RHS: 5},
		},
	}
	out := lp.Normalize(p)

	require.Equal(t, lp.Constraint{Coefficients: []float64{-1, 1}, Relation: lp.GreaterEqual, RHS: 3}, out.Constraints[0])
	require.Equal(t, lp.Constraint{Coefficients: []float64{-2, -1}, Relation: lp.LessEqual, RHS: 1}, out.Constraints[1])
	require.Equal(t, lp.Constraint{Coefficients: []float64{-1, -1}, Relation: lp.Equal, RHS: 2}, out.Constraints[2])
	require.Equal(t, p.Constraints[3], out.Constraints[3])
	// Caller data is never mutated.
	require.Equal(t, -3.0, p.Constraints[0].RHS)
	require.Equal(t, []float64{1, -1}, p.Constraints[0].Coefficients)
}

func TestKindAndRelationHelpers(t *testing.T) {
	require.Equal(t, lp.Minimize, lp.Maximize.Opposite())
	require.Equal(t, lp.Maximize, lp.Minimize.Opposite())
	require.Equal(t, "minimize", lp.Minimize.String())

	require.Equal(t, lp.GreaterEqual, lp.LessEqual.Flip())
	require.Equal(t, lp.Equal, lp.Equal.Flip())
	require.Equal(t, "≥", lp.GreaterEqual.Symbol())
	require.Equal(t, ">=", lp.GreaterEqual.String())

	for in, want := range map[string]lp.Relation{"<=": lp.LessEqual, "≤": lp.LessEqual, "EQ": lp.Equal, " >= ": lp.GreaterEqual} {
		got, err := lp.ParseRelation(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := lp.ParseRelation("<")
	require.ErrorIs(t, err, lp.ErrUnknownRelation)

	k, err := lp.ParseKind("Min")
	require.NoError(t, err)
	require.Equal(t, lp.Minimize, k)
	_, err = lp.ParseKind("optimize")
	require.ErrorIs(t, err, lp.ErrUnknownKind)
}

func TestCloneAndEvaluate(t *testing.T) {
	p := wyndor()
	cp := p.Clone()
	cp.Constraints[0].Coefficients[0] = 100
	cp.Objective[1] = 0

	require.Equal(t, 1.0, p.Constraints[0].Coefficients[0])
	require.Equal(t, 36.0, p.Evaluate([]float64{2, 6}))
	require.Equal(t, 6.0, p.Evaluate([]float64{2}))
}

func TestFormat(t *testing.T) {
	p := lp.Problem{
		Kind:      lp.Minimize,
		Objective: []float64{4, -12},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 0}, Relation: lp.GreaterEqual, RHS: 3},
			{Coefficients: []float64{0, -2}, Relation: lp.LessEqual, RHS: 5},
		},
	}
	want := "Minimize Z = 4y1 - 12y2\n\n" +
		"Subject to:\n" +
		"  1y1 + 0y2 ≥ 3\n" +
		"  0y1 - 2y2 ≤ 5\n" +
		"\nWith y1, y2 ≥ 0"
	require.Equal(t, want, lp.Format(p, "y"))
	require.Contains(t, wyndor().String(), "Maximize Z = 3x1 + 5x2")
}
