// SPDX-License-Identifier: MIT

package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/katalvlaran/lvlp/duality"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertExample = heredoc.Doc(`
	# Print the dual of a problem
	lpsolve convert -f problem.yaml

	# Write the dual as a problem file that solve accepts
	lpsolve convert -f problem.yaml -o yaml > dual.yaml`)

// ConvertOptions holds the flag values of the convert command.
type ConvertOptions struct {
	IOStreams

	File    string
	Lenient bool
	Output  string

	problem lp.Problem
}

// NewCmdConvert implements the convert command.
func NewCmdConvert(v *viper.Viper, streams IOStreams) *cobra.Command {
	o := &ConvertOptions{IOStreams: streams}
	cmd := &cobra.Command{
		Use:     "convert -f FILE",
		Short:   "Print the dual of a linear program",
		Example: convertExample,
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
	flags.Bool(flagLenient, false, "Zero-fill or truncate constraint rows of the wrong length")
	flags.StringP(flagOutput, "o", outputText, "Output format: text or yaml")

	return cmd
}

// Complete reads flag values from v and loads the problem.
func (o *ConvertOptions) Complete(v *viper.Viper) error {
	o.File = v.GetString(flagFile)
	o.Lenient = v.GetBool(flagLenient)
	o.Output = v.GetString(flagOutput)

	p, err := readProblem(o.File, o.In)
	if err != nil {
		return err
	}
	if o.Lenient {
		p = lp.Pad(p)
	}
	o.problem = p

	return nil
}

// Validate checks the flags and the problem.
func (o *ConvertOptions) Validate() error {
	if err := validateOutput(o.Output); err != nil {
		return err
	}

	return lp.Validate(o.problem)
}

// Run prints the dual.
func (o *ConvertOptions) Run() error {
	dual := duality.ConvertToDual(o.problem)
	if o.Output == outputYAML {
		return lp.Encode(o.Out, dual)
	}
	printProblem(o.Out, dual, dualVarPrefix)

	return nil
}
