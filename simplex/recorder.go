// SPDX-License-Identifier: MIT

package simplex

// recorder collects Iteration snapshots for one solve. Every snapshot owns a
// deep copy of the tableau and basis.
type recorder struct {
	iterations []Iteration
}

// start records the state at the beginning of a phase.
func (r *recorder) start(t *tableau, phase Phase) {
	r.iterations = append(r.iterations, Iteration{
		Phase:    phase,
		Tableau:  t.m.Clone(),
		Basis:    t.variables(),
		Entering: None,
		Leaving:  None,
		PivotRow: -1,
		PivotCol: -1,
	})
}

// pivot records the state right after a pivot on (row, col) whose previous
// basic variable was leaving.
func (r *recorder) pivot(t *tableau, phase Phase, row, col int, leaving Variable, element float64) {
	r.iterations = append(r.iterations, Iteration{
		Phase:        phase,
		Tableau:      t.m.Clone(),
		Basis:        t.variables(),
		Entering:     t.layout.Variable(col),
		Leaving:      leaving,
		PivotRow:     row,
		PivotCol:     col,
		PivotElement: element,
	})
}
