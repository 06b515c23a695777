// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "lpsolve"

	// StatusError labels a solve that returned an error instead of a Solution.
	StatusError = "error"
)

// Recorder collects solve metrics into its own registry.
type Recorder struct {
	reg    *prometheus.Registry
	solves *prometheus.CounterVec
	pivots *prometheus.HistogramVec
	size   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Counts solves by strategy and terminal status.",
		}, []string{"strategy", "status"}),
		pivots: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pivots",
			Help:      "Pivots performed per solve.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}, []string{"strategy"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "problem_size",
			Help:      "Dimensions of the last problem solved.",
		}, []string{"dimension"}),
	}
	r.reg.MustRegister(r.solves, r.pivots, r.size)

	return r
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveProblem records the dimensions of p.
func (r *Recorder) ObserveProblem(p lp.Problem) {
	r.size.WithLabelValues("variables").Set(float64(p.NumVars()))
	r.size.WithLabelValues("constraints").Set(float64(p.NumConstraints()))
}

// Observe records one finished solve.
func (r *Recorder) Observe(sol simplex.Solution) {
	st := sol.Strategy.String()
	r.solves.WithLabelValues(st, sol.Status.String()).Inc()
	r.pivots.WithLabelValues(st).Observe(float64(sol.Pivots))
}

// ObserveError records a solve that failed before producing a Solution.
func (r *Recorder) ObserveError(strategy simplex.Strategy) {
	r.solves.WithLabelValues(strategy.String(), StatusError).Inc()
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is written atomically (temp file plus rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
