// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlp/lp"
	"k8s.io/klog/v2"
)

// Solve optimizes p with the tabular Simplex method.
//
// Preconditions and validation (in order):
//  1. Options.Strategy and Options.PivotRule are known
//     (ErrUnknownStrategy, ErrUnknownPivotRule).
//  2. p passes lp.Validate; with WithLenientInput rows are padded first.
//  3. StrategyStandard requires an all-≤ problem after normalization
//     (ErrArtificialRequired).
//
// Infeasible, unbounded and iteration-limit outcomes are not errors; they are
// reported through Solution.Status. p is never modified.
//
// Options customization:
//
//   - WithStrategy(s): standard, Big-M, two-phase or auto (default auto).
//   - WithPivotRule(r): Dantzig (default) or Bland.
//   - WithMaxIterations(n): pivot cap (default 100).
//   - WithBigM(m): fixed penalty instead of the derived one.
//   - WithTolerance(eps): pivot tolerance (default 1e-9).
//   - WithLenientInput(): zero-fill or truncate ragged rows.
//
// Complexity:
//
//   - Time:  O(k·m·(n+m)) for k pivots.
//   - Space: O(k·m·(n+m)) for the recorded snapshots.
func Solve(p lp.Problem, opts ...Option) (Solution, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Strategy.Valid() {
		return Solution{}, fmt.Errorf("simplex: strategy %d: %w", int(cfg.Strategy), ErrUnknownStrategy)
	}
	if !cfg.PivotRule.Valid() {
		return Solution{}, fmt.Errorf("simplex: pivot rule %d: %w", int(cfg.PivotRule), ErrUnknownPivotRule)
	}

	// 2) Validate and normalize the problem
	if cfg.Lenient {
		p = lp.Pad(p)
	}
	if err := lp.Validate(p); err != nil {
		return Solution{}, fmt.Errorf("simplex: %w", err)
	}
	p = lp.Normalize(p)

	// 3) Resolve strategy and M
	if cfg.Strategy == StrategyAuto {
		cfg.Strategy = StrategyStandard
		for _, c := range p.Constraints {
			if c.Relation != lp.LessEqual {
				cfg.Strategy = StrategyTwoPhase
				break
			}
		}
	}
	if cfg.BigM == 0 {
		cfg.BigM = derivedBigM(p)
	}

	// 4) Build the tableau and run
	t, err := buildTableau(p, cfg.Strategy, cfg.BigM)
	if err != nil {
		return Solution{}, fmt.Errorf("simplex: %w", err)
	}
	if cfg.Strategy == StrategyStandard && t.layout.Artificial > 0 {
		return Solution{}, ErrArtificialRequired
	}
	s := &solver{opts: cfg, t: t}
	klog.V(2).Infof("simplex: %s %d×%d, strategy=%s rule=%s layout=%+v",
		p.Kind, p.NumConstraints(), p.NumVars(), cfg.Strategy, cfg.PivotRule, t.layout)

	var status Status
	switch cfg.Strategy {
	case StrategyStandard:
		status, err = s.runStandard()
	case StrategyBigM:
		status, err = s.runBigM()
	default:
		status, err = s.runTwoPhase()
	}
	if err != nil {
		return Solution{}, fmt.Errorf("simplex: %w", err)
	}
	klog.V(2).Infof("simplex: %s after %d pivots", status, s.pivots)

	return s.extract(status)
}
