// SPDX-License-Identifier: MIT

// Package lp defines the linear-program data model shared by the simplex and
// duality packages:
//
//	optimize  c·x
//	s.t.      a_i·x  (≤ | = | ≥)  b_i   for every constraint i
//	          x ≥ 0
//
// A Problem is plain, caller-owned data. Nothing in this module mutates a
// Problem passed to it; Normalize and Pad return fresh copies.
//
// Boundary policy:
//
//   - Validate is the strict check: ragged coefficient rows, non-finite
//     numbers, unknown relations or objective kinds are rejected with the
//     sentinels in errors.go.
//   - Pad is the lenient path: short rows are zero-filled and long rows are
//     truncated to the number of decision variables.
//   - Normalize pads and then flips every constraint with a negative right-hand
//     side (multiplying it by −1 and swapping ≤/≥) so a slack or artificial
//     basis starts at a non-negative point.
//
// Problems can be decoded from YAML (see Decode) and rendered as text (see
// Format):
//
//	kind: maximize
//	objective: [3, 5]
//	constraints:
//	  - {coefficients: [1, 0], relation: "<=", rhs: 4}
//	  - {coefficients: [0, 2], relation: "<=", rhs: 12}
//	  - {coefficients: [3, 2], relation: "<=", rhs: 18}
package lp
