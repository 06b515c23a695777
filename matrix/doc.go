// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage used by the simplex
// tableau and the small set of row kernels that Gauss-Jordan pivoting needs.
//
// The package provides:
//
//   - Dense: a flat []float64 buffer addressed as i*cols + j, with
//     bounds-checked At/Set that return sentinel errors instead of panicking.
//   - Row kernels: ScaleRow (row ← α·row) and AddScaledRow (dst ← dst + α·src),
//     the two primitives a pivot is composed of.
//   - Induced: copy-based sub-matrix extraction, used to drop columns (e.g.
//     artificial variables after phase 1) or rows (redundant constraints).
//   - FromRows / ToRows: conversion to and from [][]float64 for callers that
//     keep tableaux as plain nested slices.
//
// Numeric policy: Set and the row kernels reject NaN and ±Inf (ErrNaNInf) so a
// degenerate division never silently poisons a tableau.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c)
//   - ScaleRow: O(c); AddScaledRow: O(c); Induced: O(r'*c')
//
// See example_test.go for a worked pivot built from the row kernels.
package matrix
