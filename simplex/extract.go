// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"github.com/katalvlaran/lvlp/lp"
)

// noiseFloor is the magnitude below which negative decision values are
// treated as rounding noise and clamped to 0.
const noiseFloor = 1e-9

// extract turns the terminal tableau into a Solution.
//
// Only StatusOptimal carries an objective and values. The objective is the
// RHS of row 0, negated for lp.Minimize (the tableau always maximizes).
// A decision variable's value is the RHS of the row where it is basic, 0
// otherwise.
func (s *solver) extract(status Status) (Solution, error) {
	sol := Solution{
		Status:     status,
		Objective:  math.NaN(),
		Iterations: s.rec.iterations,
		Pivots:     s.pivots,
		Strategy:   s.opts.Strategy,
		Basis:      s.t.variables(),
		Layout:     s.t.layout,
		Tableau:    s.t.m.Clone(),
		Auxiliary:  s.t.auxiliary(),
	}

	switch status {
	case StatusUnbounded:
		sol.Feasible, sol.Unbounded = true, true
		return sol, nil
	case StatusOptimal:
	default:
		return sol, nil
	}

	rhs, err := s.t.m.Col(s.t.rhs())
	if err != nil {
		return Solution{}, err
	}
	z := rhs[0]
	if s.t.kind == lp.Minimize {
		z = -z
	}
	if z == 0 {
		z = 0 // drop negative zero
	}

	values := make([]float64, s.t.layout.Decision)
	for i, b := range s.t.basis {
		if b >= s.t.layout.Decision {
			continue
		}
		v := rhs[i+1]
		if v < 0 && v > -noiseFloor {
			v = 0
		}
		values[b] = v
	}

	sol.Feasible, sol.Optimal = true, true
	sol.Objective = z
	sol.Values = values

	return sol, nil
}
