// SPDX-License-Identifier: MIT

// Package duality derives the dual of a linear program and maps a solved dual
// back to the primal.
//
// For a primal
//
//	max c·x  s.t.  A x (rel) b,  x ≥ 0
//
// ConvertToDual builds
//
//	min b·y  s.t.  Aᵀ y ≥ c,  y ≥ 0
//
// and symmetrically a minimization primal yields a maximization dual with ≤
// rows. The dual relation depends only on the primal objective kind, never on
// the primal rows' own relations.
//
// ConvertToPrimalSolution reads a terminal dual tableau:
//
//   - ConstraintValues[i] is the value of dual variable y_i (the shadow price
//     of primal constraint i): the RHS of the dual row where y_i is basic, 0
//     when y_i is non-basic.
//   - Values[j] is primal variable x_j, recovered by complementary slackness
//     as the reduced cost of the slack/surplus column of dual constraint j.
//
// SolveDual chains the two with simplex.Solve. By strong duality its
// objective equals the primal optimum for every feasible, bounded problem.
package duality
