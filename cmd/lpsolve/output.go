// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvlp/duality"
	"github.com/katalvlaran/lvlp/lp"
	"github.com/katalvlaran/lvlp/simplex"
	"gopkg.in/yaml.v3"
)

// dualVarPrefix names the dual variables, one per primal constraint.
const dualVarPrefix = "y"

// solutionReport is the YAML form of a solve.
type solutionReport struct {
	Status    string    `yaml:"status"`
	Strategy  string    `yaml:"strategy"`
	Objective *float64  `yaml:"objective,omitempty"`
	Values    []float64 `yaml:"values,omitempty"`
	Pivots    int       `yaml:"pivots"`
	Shadow    []float64 `yaml:"shadowPrices,omitempty"`
}

func newSolutionReport(sol simplex.Solution) solutionReport {
	r := solutionReport{
		Status:   sol.Status.String(),
		Strategy: sol.Strategy.String(),
		Values:   sol.Values,
		Pivots:   sol.Pivots,
	}
	if sol.Optimal {
		z := sol.Objective
		r.Objective = &z
	}

	return r
}

func newPrimalReport(res duality.Result) solutionReport {
	r := solutionReport{
		Status:   res.Primal.Status.String(),
		Strategy: res.DualSolution.Strategy.String(),
		Values:   res.Primal.Values,
		Pivots:   res.DualSolution.Pivots,
		Shadow:   res.Primal.ConstraintValues,
	}
	if res.Primal.Optimal {
		z := res.Primal.Objective
		r.Objective = &z
	}

	return r
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// printSummary writes the status block and, when known, one row per
// variable. labels[i] names values[i].
func printSummary(out io.Writer, status simplex.Status, strategy simplex.Strategy, objective float64, pivots int, header string, labels []string, values []float64) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "Status:\t%s\n", status)
	fmt.Fprintf(w, "Strategy:\t%s\n", strategy)
	if status == simplex.StatusOptimal {
		fmt.Fprintf(w, "Objective:\t%s\n", formatFloat(objective))
	}
	fmt.Fprintf(w, "Pivots:\t%d\n", pivots)
	if err := w.Flush(); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	fmt.Fprintln(out)

	return printValues(out, header, "VALUE", labels, values)
}

// printValues writes a two-column table of labelled values.
func printValues(out io.Writer, nameHeader, valueHeader string, labels []string, values []float64) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", nameHeader, valueHeader)
	for i, v := range values {
		fmt.Fprintf(w, "%s\t%s\n", labels[i], formatFloat(v))
	}

	return w.Flush()
}

// printTrace writes every recorded iteration of sol as a labelled tableau.
func printTrace(out io.Writer, sol simplex.Solution) error {
	for k, it := range sol.Iterations {
		if k > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, iterationTitle(k, it))

		layout := sol.Layout
		_, cols := it.Tableau.Shape()
		if extra := cols - 1 - layout.Columns(); extra > 0 {
			layout.Artificial += extra
		}
		if err := printTableau(out, it.Tableau.ToRows(), it.Basis, layout); err != nil {
			return err
		}
	}

	return nil
}

func iterationTitle(k int, it simplex.Iteration) string {
	title := "Iteration " + strconv.Itoa(k)
	if it.Phase != simplex.PhaseNone {
		title += " (phase " + it.Phase.String() + ")"
	}
	if !it.IsPivot() {
		return title + ": initial tableau"
	}

	return fmt.Sprintf("%s: %s enters, %s leaves, pivot %s",
		title, it.Entering.Label(), it.Leaving.Label(), formatFloat(it.PivotElement))
}

// printTableau writes rows (objective row first) with the basic variable
// of every constraint row and the column labels of layout.
func printTableau(out io.Writer, rows [][]float64, basis []simplex.Variable, layout simplex.Layout) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "BASIS\t")
	for j := 0; j < layout.Columns(); j++ {
		fmt.Fprintf(w, "%s\t", layout.Variable(j).Label())
	}
	fmt.Fprint(w, "RHS\t\n")

	for i, row := range rows {
		name := "Z"
		if i > 0 && i-1 < len(basis) {
			name = basis[i-1].Label()
		}
		fmt.Fprintf(w, "%s\t", name)
		for _, x := range row {
			fmt.Fprintf(w, "%s\t", formatFloat(x))
		}
		fmt.Fprint(w, "\n")
	}

	return w.Flush()
}

func variableLabels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = prefix + strconv.Itoa(i+1)
	}

	return labels
}

// formatFloat prints x with up to 6 significant digits and without -0.
func formatFloat(x float64) string {
	if x == 0 {
		x = 0
	}

	return strconv.FormatFloat(x, 'g', 6, 64)
}

func printProblem(out io.Writer, p lp.Problem, prefix string) {
	fmt.Fprintln(out, lp.Format(p, prefix))
}
