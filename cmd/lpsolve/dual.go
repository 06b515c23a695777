// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/katalvlaran/lvlp/duality"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/katalvlaran/lvlp/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var (
	dualLong = heredoc.Doc(`
		Solve a linear program through its dual.

		The dual is built, solved with the Simplex method and mapped back: the
		primal values come from the reduced costs of the dual's slack and surplus
		columns, the shadow price of every primal constraint from the dual
		variable values.`)

	dualExample = heredoc.Doc(`
		# Print the dual, the primal solution and the shadow prices
		lpsolve dual -f problem.yaml

		# Also print every tableau of the dual solve
		lpsolve dual -f problem.yaml --trace`)
)

// DualOptions holds the flag values of the dual command.
type DualOptions struct {
	IOStreams
	solverFlags

	File   string
	Trace  bool
	Verify bool
	Output string

	problem lp.Problem
	opts    []simplex.Option
}

// NewCmdDual implements the dual command.
func NewCmdDual(v *viper.Viper, streams IOStreams) *cobra.Command {
	o := &DualOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:     "dual -f FILE",
		Short:   "Solve a linear program through its dual",
		Long:    dualLong,
		Example: dualExample,
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
	flags.Bool(flagTrace, false, "Print the tableau of the dual after every pivot")
	flags.Bool(flagVerify, false, "Check feasibility and complementary slackness of the result")
	flags.StringP(flagOutput, "o", outputText, "Output format: text or yaml")

	return cmd
}

// Complete reads flag values from v and loads the problem.
func (o *DualOptions) Complete(v *viper.Viper) error {
	o.solverFlags.complete(v)
	o.File = v.GetString(flagFile)
	o.Trace = v.GetBool(flagTrace)
	o.Verify = v.GetBool(flagVerify)
	o.Output = v.GetString(flagOutput)

	p, err := readProblem(o.File, o.In)
	if err != nil {
		return err
	}
	o.problem = p

	return nil
}

// Validate checks the flags.
func (o *DualOptions) Validate() error {
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

// Run solves the dual and prints the primal result.
func (o *DualOptions) Run() error {
	res, err := duality.SolveDual(o.problem, o.opts...)
	if err != nil {
		return err
	}
	klog.V(1).Infof("solved dual of %s: %s in %d pivots", o.File, res.Primal.Status, res.DualSolution.Pivots)

	if o.Output == outputYAML {
		return writeYAML(o.Out, newPrimalReport(res))
	}

	fmt.Fprintln(o.Out, "Dual problem:")
	printProblem(o.Out, res.Dual, dualVarPrefix)
	fmt.Fprintln(o.Out)

	if o.Trace {
		if err = printTrace(o.Out, res.DualSolution); err != nil {
			return err
		}
		fmt.Fprintln(o.Out)
	}

	pr := res.Primal
	if err = printSummary(o.Out, pr.Status, res.DualSolution.Strategy, pr.Objective, res.DualSolution.Pivots,
		"VARIABLE", variableLabels(lp.DefaultVarPrefix, len(pr.Values)), pr.Values); err != nil {
		return err
	}
	if len(pr.ConstraintValues) > 0 {
		fmt.Fprintln(o.Out)
		if err = printValues(o.Out, "CONSTRAINT", "SHADOW PRICE",
			variableLabels(dualVarPrefix, len(pr.ConstraintValues)), pr.ConstraintValues); err != nil {
			return err
		}
	}

	if o.Verify && pr.Optimal {
		return o.verify(pr)
	}

	return nil
}

func (o *DualOptions) verify(pr duality.PrimalSolution) error {
	p := o.problem
	if o.Lenient {
		p = lp.Pad(p)
	}
	report, err := verify.Check(p, pr.Values, verifyTolerance)
	if err != nil {
		return err
	}
	if !report.Feasible {
		return fmt.Errorf("primal values violate the constraints by %g", report.MaxViolation)
	}
	gap, err := verify.Complementarity(p, pr.Values, pr.ConstraintValues)
	if err != nil {
		return err
	}
	fmt.Fprintf(o.Out, "\nVerified: max violation %s, complementarity %s\n",
		formatFloat(report.MaxViolation), formatFloat(gap))

	return nil
}
