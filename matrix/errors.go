// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with
// call-site context via %w); tests match them with errors.Is. Nothing in this
// package panics on caller-supplied indices or values.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so wrapped errors stay greppable
// once they surface through the simplex and duality packages.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows is returned by FromRows when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
