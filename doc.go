// Package lvlp is a small, readable linear-programming toolkit built around
// the tabular Simplex method, with every tableau of a solve kept for
// inspection.
//
// 🚀 What is lvlp?
//
//	A pure-Go library (plus the lpsolve CLI) that brings together:
//		• Problem model: objective, ≤ / = / ≥ constraints, YAML and text forms
//		• Simplex: standard, Big-M and two-phase strategies, Dantzig or Bland pivoting
//		• Iteration trace: an immutable tableau snapshot after every pivot
//		• Duality: build the dual, solve it, map shadow prices back to the primal
//		• Verification: feasibility and complementary-slackness checks
//		• Metrics: Prometheus counters and histograms for solves
//
// ✨ Why choose lvlp?
//
//   - Teaching-friendly – every pivot is recorded with entering and leaving labels
//   - Deterministic – first-occurrence tie-breaking, Bland's rule when cycling matters
//   - Safe – inputs are never mutated; concurrent solves share no state
//
// Under the hood, everything is organized under these subpackages:
//
//	lp/       - Problem, Constraint, validation, normalization, YAML
//	matrix/   - dense row-major matrix with the row operations Simplex needs
//	simplex/  - tableau construction, pivoting, strategies, Solution
//	duality/  - primal ↔ dual conversion and SolveDual
//	verify/   - feasibility and complementarity checks on gonum/mat
//	metrics/  - Prometheus recorder for solves
//	cmd/lpsolve - solve, dual and convert from the command line
//
// Quick example:
//
//	max 3x1 + 5x2
//	s.t. x1 ≤ 4, 2x2 ≤ 12, 3x1 + 2x2 ≤ 18
//
//	sol, _ := simplex.Solve(p) // Z = 36 at (2, 6) in two pivots
//
//	go get github.com/katalvlaran/lvlp
package lvlp
