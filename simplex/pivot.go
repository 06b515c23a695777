// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
)

// enteringColumn returns the column that enters the basis, or -1 when no
// reduced cost is below -eps (the tableau is optimal).
//
// Dantzig: the most negative entry of row 0, first occurrence on ties.
// Bland:   the lowest-index entry below -eps.
//
// Complexity: O(cols).
func (t *tableau) enteringColumn(rule PivotRule, eps float64) (int, error) {
	obj, err := t.m.Row(0)
	if err != nil {
		return -1, err
	}

	col, best := -1, -eps
	for j := 0; j < t.rhs(); j++ {
		if obj[j] >= best {
			continue
		}
		if rule == Bland {
			return j, nil
		}
		col, best = j, obj[j]
	}

	return col, nil
}

// leavingRow runs the minimum-ratio test on column col and returns the
// tableau row (1..m) that leaves, or -1 when no entry exceeds eps (the
// problem is unbounded along col).
//
// Ties keep the first row under Dantzig and the row with the lowest basic
// column under Bland.
//
// Complexity: O(rows).
func (t *tableau) leavingRow(col int, rule PivotRule, eps float64) (int, error) {
	entries, err := t.m.Col(col)
	if err != nil {
		return -1, err
	}
	rhs, err := t.m.Col(t.rhs())
	if err != nil {
		return -1, err
	}

	row, best := -1, math.Inf(1)
	for i := 1; i < len(entries); i++ {
		if entries[i] <= eps {
			continue
		}
		ratio := rhs[i] / entries[i]
		switch {
		case ratio < best:
			row, best = i, ratio
		case ratio == best && rule == Bland && t.basis[i-1] < t.basis[row-1]:
			row = i
		}
	}

	return row, nil
}

// pivot performs one Gauss-Jordan step on (row, col): the pivot row is
// divided by the pivot element, then col is eliminated from every other row
// including row 0. Afterwards col is written as an exact unit column and
// becomes the basic column of row. Returns the pivot element.
//
// Implementation:
//   - Stage 1: read the pivot element; refuse a zero pivot.
//   - Stage 2: ScaleRow(row, 1/p).
//   - Stage 3: AddScaledRow(i, row, -a[i][col]) for every i ≠ row.
//   - Stage 4: write exact 1/0 into col, update the basis.
//
// Complexity: O(rows·cols).
func (t *tableau) pivot(row, col int) (float64, error) {
	// Stage 1
	p, err := t.m.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("pivot: %w", err)
	}
	if p == 0 {
		return 0, fmt.Errorf("pivot(%d,%d): zero pivot element", row, col)
	}

	// Stage 2
	if err = t.m.ScaleRow(row, 1/p); err != nil {
		return 0, fmt.Errorf("pivot: %w", err)
	}

	// Stage 3
	factors, err := t.m.Col(col)
	if err != nil {
		return 0, fmt.Errorf("pivot: %w", err)
	}
	for i, f := range factors {
		if i == row || f == 0 {
			continue
		}
		if err = t.m.AddScaledRow(i, row, -f); err != nil {
			return 0, fmt.Errorf("pivot: %w", err)
		}
		if err = t.m.Set(i, col, 0); err != nil {
			return 0, fmt.Errorf("pivot: %w", err)
		}
	}

	// Stage 4
	if err = t.m.Set(row, col, 1); err != nil {
		return 0, fmt.Errorf("pivot: %w", err)
	}
	t.basis[row-1] = col

	return p, nil
}
