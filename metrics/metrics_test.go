package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/prometheus/client_golang/prometheus/testutil"
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

func TestObserve(t *testing.T) {
	r := NewRecorder()
	sol, err := simplex.Solve(wyndor())
	require.NoError(t, err)

	r.ObserveProblem(wyndor())
	r.Observe(sol)
	r.Observe(sol)
	r.ObserveError(simplex.StrategyBigM)

	require.Equal(t, 2.0, testutil.ToFloat64(r.solves.WithLabelValues("standard", "optimal")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("big-m", StatusError)))
	require.Equal(t, 3.0, testutil.ToFloat64(r.size.WithLabelValues("constraints")))
	require.Equal(t, 2, testutil.CollectAndCount(r.solves))

	n, err := testutil.GatherAndCount(r.Gatherer(), "lpsolve_pivots")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestGatherMatchesTextFormat(t *testing.T) {
	r := NewRecorder()
	r.Observe(simplex.Solution{Strategy: simplex.StrategyTwoPhase, Status: simplex.StatusOptimal, Pivots: 3})

	expected := `
# HELP lpsolve_solves_total Counts solves by strategy and terminal status.
# TYPE lpsolve_solves_total counter
lpsolve_solves_total{status="optimal",strategy="two-phase"} 1
`
	require.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "lpsolve_solves_total"))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(simplex.Solution{Strategy: simplex.StrategyStandard, Status: simplex.StatusUnbounded, Pivots: 1})

	path := filepath.Join(t.TempDir(), "lpsolve.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `lpsolve_solves_total{status="unbounded",strategy="standard"} 1`)
	require.Contains(t, string(b), `lpsolve_pivots_count{strategy="standard"} 1`)

	require.Error(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
