// SPDX-License-Identifier: MIT

// Package metrics exports solve outcomes as Prometheus metrics.
//
// A Recorder owns a private registry, so several recorders (one per test, one
// per CLI run) never collide on the global default registry. The lpsolve CLI
// writes the registry to a node-exporter textfile with --metrics-textfile.
//
// Exported series:
//
//	lpsolve_solves_total{strategy, status}   counter
//	lpsolve_pivots{strategy}                  histogram
//	lpsolve_problem_size{dimension}           gauge (variables, constraints)
package metrics
