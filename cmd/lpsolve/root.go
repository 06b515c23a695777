// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const (
	envPrefix = "LPSOLVE"

	flagConfig          = "config"
	flagFile            = "file"
	flagStrategy        = "strategy"
	flagPivotRule       = "pivot-rule"
	flagMaxIterations   = "max-iterations"
	flagBigM            = "big-m"
	flagTolerance       = "tolerance"
	flagLenient         = "lenient"
	flagTrace           = "trace"
	flagVerify          = "verify"
	flagMetricsTextfile = "metrics-textfile"
	flagOutput          = "output"

	outputText = "text"
	outputYAML = "yaml"
)

// IOStreams holds the standard streams of one command invocation.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewRootCommand builds the lpsolve command tree. Every flag can also be set
// through a LPSOLVE_<FLAG> environment variable (dashes become underscores)
// or a YAML file passed with --config; flags win over the environment, which
// wins over the file.
func NewRootCommand(streams IOStreams) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve linear programs with the tabular Simplex method",
		Long: heredoc.Doc(`
			Solve linear programs with the tabular Simplex method.

			Problems are YAML documents:

			  kind: maximize
			  objective: [3, 5]
			  constraints:
			    - {coefficients: [1, 0], relation: "<=", rhs: 4}
			    - {coefficients: [0, 2], relation: "<=", rhs: 12}
			    - {coefficients: [3, 2], relation: "<=", rhs: 18}
		`),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)
	cmd.PersistentFlags().String(flagConfig, "", "Path to a YAML file with default flag values")

	cmd.AddCommand(
		NewCmdSolve(v, streams),
		NewCmdDual(v, streams),
		NewCmdConvert(v, streams),
	)

	return cmd
}

// loadConfig binds the running command's flags to v and reads --config.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	path := v.GetString(flagConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to load --config: %w", err)
	}
	klog.V(1).Infof("loaded configuration from %s", path)

	return nil
}

// solverFlags are the flags shared by solve and dual.
type solverFlags struct {
	Strategy      string
	PivotRule     string
	MaxIterations int
	BigM          float64
	Tolerance     float64
	Lenient       bool
}

func addSolverFlags(flags *pflag.FlagSet) {
	flags.String(flagStrategy, "auto", "Strategy: standard, big-m, two-phase or auto")
	flags.String(flagPivotRule, "dantzig", "Pivot rule: dantzig or bland")
	flags.Int(flagMaxIterations, simplex.DefaultMaxIterations, "Maximum number of pivots")
	flags.Float64(flagBigM, 0, "Big-M penalty (0 derives it from the problem)")
	flags.Float64(flagTolerance, simplex.DefaultTolerance, "Pivot tolerance")
	flags.Bool(flagLenient, false, "Zero-fill or truncate constraint rows of the wrong length")
}

func (f *solverFlags) complete(v *viper.Viper) {
	f.Strategy = v.GetString(flagStrategy)
	f.PivotRule = v.GetString(flagPivotRule)
	f.MaxIterations = v.GetInt(flagMaxIterations)
	f.BigM = v.GetFloat64(flagBigM)
	f.Tolerance = v.GetFloat64(flagTolerance)
	f.Lenient = v.GetBool(flagLenient)
}

// options validates the flags and converts them to simplex options.
func (f *solverFlags) options() ([]simplex.Option, error) {
	strategy, err := simplex.ParseStrategy(f.Strategy)
	if err != nil {
		return nil, err
	}
	rule, err := simplex.ParsePivotRule(f.PivotRule)
	if err != nil {
		return nil, err
	}
	if f.MaxIterations < 1 {
		return nil, fmt.Errorf("--%s must be positive, got %d", flagMaxIterations, f.MaxIterations)
	}
	if f.BigM < 0 {
		return nil, fmt.Errorf("--%s must not be negative, got %g", flagBigM, f.BigM)
	}
	if !(f.Tolerance > 0 && f.Tolerance < 1) {
		return nil, fmt.Errorf("--%s must be in (0, 1), got %g", flagTolerance, f.Tolerance)
	}

	opts := []simplex.Option{
		simplex.WithStrategy(strategy),
		simplex.WithPivotRule(rule),
		simplex.WithMaxIterations(f.MaxIterations),
		simplex.WithTolerance(f.Tolerance),
	}
	if f.BigM > 0 {
		opts = append(opts, simplex.WithBigM(f.BigM))
	}
	if f.Lenient {
		opts = append(opts, simplex.WithLenientInput())
	}

	return opts, nil
}

// readProblem decodes the problem from path, or from in when path is "-".
func readProblem(path string, in io.Reader) (lp.Problem, error) {
	switch path {
	case "":
		return lp.Problem{}, errors.New("a problem file is required (--file)")
	case "-":
		return lp.Decode(in)
	default:
		p, err := lp.LoadFile(path)
		if err != nil {
			return lp.Problem{}, fmt.Errorf("unable to read --%s: %w", flagFile, err)
		}
		return p, nil
	}
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("--%s must be %q or %q, got %q", flagOutput, outputText, outputYAML, format)
	}
}
