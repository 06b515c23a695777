// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"
	"strings"
)

// DefaultVarPrefix is the variable prefix used by String.
const DefaultVarPrefix = "x"

// Format renders p as human-readable text, naming variables prefix1..prefixN:
//
//	Maximize Z = 3x1 + 5x2
//
//	Subject to:
//	  1x1 + 0x2 ≤ 4
//	  ...
//
//	With x1, x2 ≥ 0
//
// Every coefficient is printed, zeros included, so the column structure of
// the problem stays visible (useful when reading a derived dual).
func Format(p Problem, prefix string) string {
	var b strings.Builder

	if p.Kind == Minimize {
		b.WriteString("Minimize Z = ")
	} else {
		b.WriteString("Maximize Z = ")
	}
	writeLinear(&b, p.Objective, prefix)

	b.WriteString("\n\nSubject to:\n")
	n := p.NumVars()
	row := make([]float64, n)
	for _, c := range p.Constraints {
		for j := range row {
			row[j] = c.Coefficient(j)
		}
		b.WriteString("  ")
		writeLinear(&b, row, prefix)
		fmt.Fprintf(&b, " %s %g\n", c.Relation.Symbol(), c.RHS)
	}

	b.WriteString("\nWith ")
	for j := 0; j < n; j++ {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s%d", prefix, j+1)
	}
	b.WriteString(" ≥ 0")

	return b.String()
}

// String renders p with the default "x" prefix.
func (p Problem) String() string { return Format(p, DefaultVarPrefix) }

// writeLinear writes c1v1 ± c2v2 ± ... with the sign folded into the operator.
func writeLinear(b *strings.Builder, coeffs []float64, prefix string) {
	for j, c := range coeffs {
		if c == 0 {
			c = 0 // drop negative zero
		}
		switch {
		case j == 0:
			fmt.Fprintf(b, "%g%s%d", c, prefix, j+1)
		case c >= 0:
			fmt.Fprintf(b, " + %g%s%d", c, prefix, j+1)
		default:
			fmt.Fprintf(b, " - %g%s%d", math.Abs(c), prefix, j+1)
		}
	}
}
