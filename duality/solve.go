// SPDX-License-Identifier: MIT

package duality

import (
	"fmt"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"k8s.io/klog/v2"
)

// Result bundles the three artifacts of SolveDual.
type Result struct {
	Primal       PrimalSolution
	Dual         lp.Problem
	DualSolution simplex.Solution
}

// SolveDual validates p, builds its dual, solves the dual with simplex.Solve
// and maps the result back with ConvertToPrimalSolution.
//
// opts are passed to simplex.Solve unchanged. The default strategy
// (simplex.StrategyAuto) handles the ≥ rows of a maximization dual with two
// phases; simplex.WithLenientInput also relaxes the validation of p.
//
// Errors: the lp validation sentinels for p, plus anything simplex.Solve
// returns for the dual.
func SolveDual(p lp.Problem, opts ...simplex.Option) (Result, error) {
	cfg := simplex.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Lenient {
		p = lp.Pad(p)
	}
	if err := lp.Validate(p); err != nil {
		return Result{}, fmt.Errorf("duality: %w", err)
	}

	dual := ConvertToDual(p)
	klog.V(2).Infof("duality: solving %s dual with %d variables and %d constraints",
		dual.Kind, dual.NumVars(), dual.NumConstraints())

	sol, err := simplex.Solve(dual, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("duality: %w", err)
	}

	return Result{
		Primal:       ConvertToPrimalSolution(sol, p.Constraints, p.NumVars()),
		Dual:         dual,
		DualSolution: sol,
	}, nil
}
