// SPDX-License-Identifier: MIT

// Package simplex solves linear programs (see package lp) with the tabular
// Simplex method.
//
// The tableau is a matrix.Dense with the objective row at index 0, one row per
// constraint, and the right-hand side in the last column. Columns are ordered
// decision, slack, surplus, artificial (see Layout).
//
// Strategies:
//
//   - StrategyStandard: start from the slack basis. Only all-≤ problems
//     (after negative right-hand sides are flipped) qualify; anything else
//     returns ErrArtificialRequired.
//   - StrategyBigM: artificials carry a penalty M in the objective row. M is
//     max(1e6, 1e3·max|coefficient|) unless fixed with WithBigM. An artificial
//     left basic at a positive level means the problem is infeasible; when
//     that happens on an unbounded stop, a phase-1 pass on a copy decides
//     between unbounded and infeasible. At the optimum row 0 is rebuilt from
//     the real costs, so Objective and the terminal tableau carry no M.
//   - StrategyTwoPhase: phase 1 maximizes -Σ artificials; a non-zero optimum
//     means infeasible. Zero-level artificials are pivoted out (or their rows
//     dropped as redundant), the artificial columns are removed, and phase 2
//     optimizes the real objective.
//   - StrategyAuto (default): two-phase when artificials are needed, standard
//     otherwise.
//
// Every strategy gives identical results on all-≤ problems.
//
// Sign convention: minimization is solved as maximization of the negated
// objective and the reported objective is negated back. It is never an
// absolute value: min -x s.t. x ≤ 3 reports -3.
//
// Pivoting uses Dantzig's rule by default (most negative reduced cost, first
// occurrence on ties; minimum ratio, first row on ties). WithPivotRule(Bland)
// switches to Bland's anti-cycling rule. The number of pivots is capped
// (WithMaxIterations, default 100); hitting the cap yields
// StatusIterationLimit instead of a partial answer.
//
// Every solve records Iteration snapshots: one at the start of each phase and
// one after each pivot. Snapshots own their tableau and basis copies.
//
// Concurrency: Solve keeps all state on the call; concurrent calls are safe.
//
// Logging: pivot traces at klog verbosity 4, phase transitions at 2.
//
// Complexity: each pivot is O(m·(n+m)) for m constraints and n variables.
package simplex
