// Package simplex_test provides benchmarks for Solve on dense random
// problems with a known feasible region (all ≤ rows, positive RHS).
package simplex_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
)

// randomProblem builds max c·x s.t. A x ≤ b with A, c in [0.1, 1.1) and b in
// [10, 20); x = 0 is feasible and the region is bounded.
func randomProblem(m, n int, seed int64) lp.Problem {
	rng := rand.New(rand.NewSource(seed))
	p := lp.Problem{Kind: lp.Maximize, Objective: make([]float64, n)}
	for j := range p.Objective {
		p.Objective[j] = 0.1 + rng.Float64()
	}
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		for j := range row {
			row[j] = 0.1 + rng.Float64()
		}
		p.Constraints = append(p.Constraints, lp.Constraint{Coefficients: row, Relation: lp.LessEqual, RHS: 10 + 10*rng.Float64()})
	}

	return p
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, size := range []int{8, 32, 64} {
		p := randomProblem(size, size, int64(size))
		for _, st := range []simplex.Strategy{simplex.StrategyStandard, simplex.StrategyBigM, simplex.StrategyTwoPhase} {
			b.Run(fmt.Sprintf("%s/n=%d", st, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := simplex.Solve(p, simplex.WithStrategy(st), simplex.WithMaxIterations(10*size)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
