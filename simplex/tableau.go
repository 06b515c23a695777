// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/matrix"
)

// tableau is the mutable working state of one solve: the dense tableau
// (row 0 = objective row, last column = RHS), the basic column of every
// constraint row, and the column partition.
type tableau struct {
	m      *matrix.Dense
	basis  []int // basis[i] is the basic column of tableau row i+1
	aux    []int // slack/surplus column per constraint, -1 for = rows
	layout Layout
	cost   []float64 // objective as maximized: c for Maximize, -c for Minimize
	kind   lp.Kind
}

// rhs returns the index of the RHS column.
func (t *tableau) rhs() int { return t.layout.Columns() }

// buildTableau constructs the initial canonical tableau for a normalized
// problem (every RHS ≥ 0, every row exactly NumVars() long).
//
// Implementation:
//   - Stage 1: count slack, surplus and artificial columns per relation
//     (≤ → slack; ≥ → surplus + artificial; = → artificial).
//   - Stage 2: seed row 0 with the negated maximization costs, fill one row
//     per constraint and set the initial basis (slack or artificial).
//   - Stage 3 (Big-M only): put M on every artificial column of row 0 and
//     subtract M × every artificial row so the artificials read 0.
//
// Complexity: O(m·(n+m)).
func buildTableau(p lp.Problem, strategy Strategy, bigM float64) (*tableau, error) {
	n := p.NumVars()
	m := p.NumConstraints()

	// Stage 1
	l := Layout{Decision: n}
	for _, c := range p.Constraints {
		switch c.Relation {
		case lp.LessEqual:
			l.Slack++
		case lp.GreaterEqual:
			l.Surplus++
			l.Artificial++
		case lp.Equal:
			l.Artificial++
		default:
			return nil, fmt.Errorf("buildTableau: %w", lp.ErrUnknownRelation)
		}
	}

	// Stage 2
	t := &tableau{
		basis:  make([]int, m),
		aux:    make([]int, m),
		layout: l,
		cost:   maximizationCosts(p),
		kind:   p.Kind,
	}
	cols := l.Columns() + 1
	rows := make([][]float64, m+1)
	rows[0] = make([]float64, cols)
	for j, c := range t.cost {
		rows[0][j] = -c
	}

	slack, surplus, art := l.Decision, l.Decision+l.Slack, l.ArtificialStart()
	for i, c := range p.Constraints {
		r := make([]float64, cols)
		copy(r, c.Coefficients)
		r[cols-1] = c.RHS
		switch c.Relation {
		case lp.LessEqual:
			r[slack] = 1
			t.basis[i], t.aux[i] = slack, slack
			slack++
		case lp.GreaterEqual:
			r[surplus] = -1
			r[art] = 1
			t.basis[i], t.aux[i] = art, surplus
			surplus++
			art++
		case lp.Equal:
			r[art] = 1
			t.basis[i], t.aux[i] = art, -1
			art++
		}
		rows[i+1] = r
	}

	// Stage 3
	if strategy == StrategyBigM && l.Artificial > 0 {
		obj := rows[0]
		for j := l.ArtificialStart(); j < l.Columns(); j++ {
			obj[j] = bigM
		}
		for i, b := range t.basis {
			if b < l.ArtificialStart() {
				continue
			}
			for j, v := range rows[i+1] {
				obj[j] -= bigM * v
			}
		}
	}

	dense, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("buildTableau: %w", err)
	}
	t.m = dense

	return t, nil
}

// maximizationCosts returns c for Maximize and -c for Minimize.
func maximizationCosts(p lp.Problem) []float64 {
	out := make([]float64, p.NumVars())
	for j, c := range p.Objective {
		if p.Kind == lp.Minimize {
			out[j] = -c
		} else {
			out[j] = c
		}
	}

	return out
}

// derivedBigM returns max(DefaultBigM, bigMScale·max|v|) over every objective
// coefficient, constraint coefficient and RHS of p.
func derivedBigM(p lp.Problem) float64 {
	var peak float64
	for _, c := range p.Objective {
		peak = math.Max(peak, math.Abs(c))
	}
	for _, c := range p.Constraints {
		for _, v := range c.Coefficients {
			peak = math.Max(peak, math.Abs(v))
		}
		peak = math.Max(peak, math.Abs(c.RHS))
	}

	return math.Max(DefaultBigM, bigMScale*peak)
}

// clone returns a deep copy of t.
func (t *tableau) clone() *tableau {
	return &tableau{
		m:      t.m.Clone(),
		basis:  append([]int(nil), t.basis...),
		aux:    append([]int(nil), t.aux...),
		layout: t.layout,
		cost:   append([]float64(nil), t.cost...),
		kind:   t.kind,
	}
}

// variables maps the current basis to Variables.
func (t *tableau) variables() []Variable {
	out := make([]Variable, len(t.basis))
	for i, b := range t.basis {
		out[i] = t.layout.Variable(b)
	}

	return out
}

// auxiliary maps the slack/surplus column of every constraint to a Variable.
func (t *tableau) auxiliary() []Variable {
	out := make([]Variable, len(t.aux))
	for i, c := range t.aux {
		out[i] = t.layout.Variable(c)
	}

	return out
}
