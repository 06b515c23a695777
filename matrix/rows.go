// SPDX-License-Identifier: MIT

// Package matrix - row kernels.
//
// Purpose:
//   - Elementary row operations on *Dense, operating on the flat buffer directly.
//   - A Gauss-Jordan pivot is exactly one ScaleRow followed by one AddScaledRow
//     per remaining row; nothing else in the solver mutates a tableau.
//
// Determinism:
//   - Fixed j-loop order; no allocations except in Row.

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxRow          = "Row"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
	ctxSetRow       = "SetRow"
	ctxCol          = "Col"
)

// checkRow validates a row index against m.
func (m *Dense) checkRow(tag string, i int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", tag, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.%s(%d): %w", tag, i, ErrOutOfRange)
	}

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with vals (len(vals) must equal Cols()).
// Complexity: O(c).
func (m *Dense) SetRow(i int, vals []float64) error {
	if err := m.checkRow(ctxSetRow, i); err != nil {
		return err
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.%s(%d): got %d values, want %d: %w", ctxSetRow, i, len(vals), m.c, ErrOutOfRange)
	}
	for j, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// ScaleRow multiplies every entry of row i by alpha.
//
// Implementation:
//   - Stage 1: validate row index and that alpha is finite.
//   - Stage 2: scale in place.
//
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if err := m.checkRow(ctxScaleRow, i); err != nil {
		return err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("Dense.%s(%d): alpha=%g: %w", ctxScaleRow, i, alpha, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= alpha
	}

	return nil
}

// AddScaledRow performs dst ← dst + alpha·src.
// A zero alpha is a no-op and returns immediately.
//
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if err := m.checkRow(ctxAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddScaledRow, src); err != nil {
		return err
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("Dense.%s(%d,%d): alpha=%g: %w", ctxAddScaledRow, dst, src, alpha, ErrNaNInf)
	}
	if alpha == 0 {
		return nil
	}
	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for j := range d {
		d[j] += alpha * s[j]
	}

	return nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}
