// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/metrics"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/katalvlaran/lvlp/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// verifyTolerance bounds the constraint violation accepted by --verify.
const verifyTolerance = 1e-6

var (
	solveLong = heredoc.Doc(`
		Solve a linear program and print the optimal objective and variable values.

		The strategy defaults to auto: the standard method when every constraint is
		of the form "<=" with a non-negative right-hand side, two-phase otherwise.
		Infeasible, unbounded and iteration-limit outcomes are reported as a status,
		not as an error.`)

	solveExample = heredoc.Doc(`
		# Solve with the default strategy
		lpsolve solve -f problem.yaml

		# Print every tableau of a Big-M solve using Bland's rule
		lpsolve solve -f problem.yaml --strategy big-m --pivot-rule bland --trace

		# Read the problem from stdin and export metrics
		cat problem.yaml | lpsolve solve -f - --metrics-textfile /var/lib/node_exporter/lpsolve.prom`)
)

// SolveOptions holds the flag values of the solve command.
type SolveOptions struct {
	IOStreams
	solverFlags

	File            string
	Trace           bool
	Verify          bool
	MetricsTextfile string
	Output          string

	problem lp.Problem
	opts    []simplex.Option
}

// NewCmdSolve implements the solve command.
func NewCmdSolve(v *viper.Viper, streams IOStreams) *cobra.Command {
	o := &SolveOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:     "solve -f FILE",
		Short:   "Solve a linear program",
		Long:    solveLong,
		Example: solveExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(v); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagFile, "f", "", "Problem file in YAML, or - for stdin")
	addSolverFlags(flags)
	flags.Bool(flagTrace, false, "Print the tableau after every pivot")
	flags.Bool(flagVerify, false, "Check the optimal values against the original constraints")
	flags.String(flagMetricsTextfile, "", "Write Prometheus metrics of the solve to this file")
	flags.StringP(flagOutput, "o", outputText, "Output format: text or yaml")

	return cmd
}

// Complete reads flag values from v and loads the problem.
func (o *SolveOptions) Complete(v *viper.Viper) error {
	o.solverFlags.complete(v)
	o.File = v.GetString(flagFile)
	o.Trace = v.GetBool(flagTrace)
	o.Verify = v.GetBool(flagVerify)
	o.MetricsTextfile = v.GetString(flagMetricsTextfile)
	o.Output = v.GetString(flagOutput)

	p, err := readProblem(o.File, o.In)
	if err != nil {
		return err
	}
	o.problem = p

	return nil
}

// Validate checks the flags.
func (o *SolveOptions) Validate() error {
	if err := validateOutput(o.Output); err != nil {
		return err
	}
	opts, err := o.solverFlags.options()
	if err != nil {
		return err
	}
	o.opts = opts

	return nil
}

// Run solves the problem and prints the result.
func (o *SolveOptions) Run() error {
	var rec *metrics.Recorder
	if o.MetricsTextfile != "" {
		rec = metrics.NewRecorder()
		rec.ObserveProblem(o.problem)
	}

	sol, err := simplex.Solve(o.problem, o.opts...)
	if err != nil {
		if rec != nil {
			strategy, _ := simplex.ParseStrategy(o.Strategy)
			rec.ObserveError(strategy)
			if werr := rec.WriteTextfile(o.MetricsTextfile); werr != nil {
				klog.Errorf("unable to write metrics: %v", werr)
			}
		}
		return err
	}
	klog.V(1).Infof("solved %s: %s in %d pivots", o.File, sol.Status, sol.Pivots)

	if rec != nil {
		rec.Observe(sol)
		if err = rec.WriteTextfile(o.MetricsTextfile); err != nil {
			return fmt.Errorf("unable to write metrics: %w", err)
		}
	}

	if o.Trace {
		if err = printTrace(o.Out, sol); err != nil {
			return err
		}
		fmt.Fprintln(o.Out)
	}

	if o.Output == outputYAML {
		err = writeYAML(o.Out, newSolutionReport(sol))
	} else {
		err = printSummary(o.Out, sol.Status, sol.Strategy, sol.Objective, sol.Pivots,
			"VARIABLE", variableLabels(lp.DefaultVarPrefix, len(sol.Values)), sol.Values)
	}
	if err != nil {
		return err
	}

	if o.Verify && sol.Optimal {
		return o.verify(sol.Values)
	}

	return nil
}

func (o *SolveOptions) verify(x []float64) error {
	p := o.problem
	if o.Lenient {
		p = lp.Pad(p)
	}
	report, err := verify.Check(p, x, verifyTolerance)
	if err != nil {
		return err
	}
	if !report.Feasible {
		return fmt.Errorf("solution violates the constraints by %g", report.MaxViolation)
	}
	fmt.Fprintf(o.Out, "\nVerified: max violation %s\n", formatFloat(report.MaxViolation))

	return nil
}
