package simplex

import (
	"testing"

	"github.com/katalvlaran/lvlp/lp"
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

func TestBuildTableauSlackBasis(t *testing.T) {
	tb, err := buildTableau(wyndor(), StrategyStandard, DefaultBigM)
	require.NoError(t, err)

	require.Equal(t, Layout{Decision: 2, Slack: 3}, tb.layout)
	require.Equal(t, []int{2, 3, 4}, tb.basis)
	require.Equal(t, []int{2, 3, 4}, tb.aux)
	require.Equal(t, [][]float64{
		{-3, -5, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 4},
		{0, 2, 0, 1, 0, 12},
		{3, 2, 0, 0, 1, 18},
	}, tb.m.ToRows())
}

func TestBuildTableauBigMCanonical(t *testing.T) {
	p := lp.Problem{
		Kind:      lp.Maximize,
		Objective: []float64{1, 2},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.Equal, RHS: 4},
			{Coefficients: []float64{1, 0}, Relation: lp.LessEqual, RHS: 3},
		},
	}
	tb, err := buildTableau(p, StrategyBigM, 10)
	require.NoError(t, err)

	require.Equal(t, Layout{Decision: 2, Slack: 1, Artificial: 1}, tb.layout)
	require.Equal(t, []int{3, 2}, tb.basis)
	require.Equal(t, []int{-1, 2}, tb.aux)
	require.Equal(t, [][]float64{
		{-11, -12, 0, 0, -40},
		{1, 1, 0, 1, 4},
		{1, 0, 1, 0, 3},
	}, tb.m.ToRows())

	// Without Big-M the artificial column stays out of row 0.
	tb, err = buildTableau(p, StrategyTwoPhase, 10)
	require.NoError(t, err)
	row0, err := tb.m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -2, 0, 0, 0}, row0)
}

func TestBuildTableauSurplusAndMinimize(t *testing.T) {
	p := lp.Problem{
		Kind:      lp.Minimize,
		Objective: []float64{2, 3},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.GreaterEqual, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: lp.GreaterEqual, RHS: 6},
		},
	}
	tb, err := buildTableau(p, StrategyTwoPhase, DefaultBigM)
	require.NoError(t, err)

	require.Equal(t, Layout{Decision: 2, Surplus: 2, Artificial: 2}, tb.layout)
	require.Equal(t, []float64{-2, -3}, tb.cost)
	require.Equal(t, [][]float64{
		{2, 3, 0, 0, 0, 0, 0},
		{1, 1, -1, 0, 1, 0, 4},
		{1, 3, 0, -1, 0, 1, 6},
	}, tb.m.ToRows())
	require.Equal(t, []Variable{
		{Column: 4, Kind: Artificial, Ordinal: 1},
		{Column: 5, Kind: Artificial, Ordinal: 2},
	}, tb.variables())
	require.Equal(t, "e2", tb.auxiliary()[1].Label())
}

func TestDerivedBigM(t *testing.T) {
	require.Equal(t, DefaultBigM, derivedBigM(wyndor()))

	p := wyndor()
	p.Constraints[2].RHS = 5e4
	require.Equal(t, 5e7, derivedBigM(p))
}

func TestSelectionAndPivot(t *testing.T) {
	tb, err := buildTableau(wyndor(), StrategyStandard, DefaultBigM)
	require.NoError(t, err)

	col, err := tb.enteringColumn(Dantzig, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, 1, col)

	blandCol, err := tb.enteringColumn(Bland, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, 0, blandCol)

	row, err := tb.leavingRow(col, Dantzig, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, 2, row)

	element, err := tb.pivot(row, col)
	require.NoError(t, err)
	require.Equal(t, 2.0, element)
	require.Equal(t, []int{2, 1, 4}, tb.basis)
	require.Equal(t, [][]float64{
		{-3, 0, 0, 2.5, 0, 30},
		{1, 0, 1, 0, 0, 4},
		{0, 1, 0, 0.5, 0, 6},
		{3, 0, 0, -1, 1, 6},
	}, tb.m.ToRows())
}

func TestLeavingRowUnbounded(t *testing.T) {
	p := lp.Problem{
		Objective:   []float64{1, 0},
		Constraints: []lp.Constraint{{Coefficients: []float64{-1, 1}, Relation: lp.LessEqual, RHS: 1}},
	}
	tb, err := buildTableau(p, StrategyStandard, DefaultBigM)
	require.NoError(t, err)

	row, err := tb.leavingRow(0, Dantzig, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, -1, row)
}

func TestBlandLeavingTieUsesLowestBasicColumn(t *testing.T) {
	// Both rows give ratio 0; row 1 holds s2 after a swap, row 2 holds s1.
	p := lp.Problem{
		Objective: []float64{1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1}, Relation: lp.LessEqual, RHS: 0},
			{Coefficients: []float64{2}, Relation: lp.LessEqual, RHS: 0},
		},
	}
	tb, err := buildTableau(p, StrategyStandard, DefaultBigM)
	require.NoError(t, err)
	tb.basis = []int{2, 1}

	row, err := tb.leavingRow(0, Dantzig, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, 1, row)

	row, err = tb.leavingRow(0, Bland, DefaultTolerance)
	require.NoError(t, err)
	require.Equal(t, 2, row)
}

func TestLayoutVariable(t *testing.T) {
	l := Layout{Decision: 2, Slack: 1, Surplus: 2, Artificial: 2}

	labels := make([]string, 0, l.Columns())
	for j := 0; j < l.Columns(); j++ {
		labels = append(labels, l.Variable(j).Label())
	}
	require.Equal(t, []string{"x1", "x2", "s1", "e1", "e2", "a1", "a2"}, labels)
	require.True(t, l.Variable(7).IsNone())
	require.True(t, l.Variable(-1).IsNone())
	require.Equal(t, "", None.Label())
}
