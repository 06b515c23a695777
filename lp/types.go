// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"strings"
)

// Kind is the optimization direction of a Problem.
type Kind int

const (
	// Maximize the objective. It is the zero value.
	Maximize Kind = iota

	// Minimize the objective.
	Minimize
)

// String returns "maximize" or "minimize".
func (k Kind) String() string {
	switch k {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Opposite returns the other direction. Unknown kinds are returned unchanged.
func (k Kind) Opposite() Kind {
	switch k {
	case Maximize:
		return Minimize
	case Minimize:
		return Maximize
	default:
		return k
	}
}

// Valid reports whether k is Maximize or Minimize.
func (k Kind) Valid() bool { return k == Maximize || k == Minimize }

// ParseKind accepts "max", "maximize", "min", "minimize" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
}

// Relation is the comparison operator of a Constraint.
type Relation int

const (
	// LessEqual is a ≤ constraint. It is the zero value.
	LessEqual Relation = iota

	// Equal is an = constraint.
	Equal

	// GreaterEqual is a ≥ constraint.
	GreaterEqual
)

// String returns the ASCII operator ("<=", "=", ">=").
func (r Relation) String() string {
	switch r {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Symbol returns the typographic operator ("≤", "=", "≥").
func (r Relation) Symbol() string {
	switch r {
	case LessEqual:
		return "≤"
	case GreaterEqual:
		return "≥"
	default:
		return r.String()
	}
}

// Flip returns the relation obtained by multiplying both sides by −1.
func (r Relation) Flip() Relation {
	switch r {
	case LessEqual:
		return GreaterEqual
	case GreaterEqual:
		return LessEqual
	default:
		return r
	}
}

// Valid reports whether r is one of the three known relations.
func (r Relation) Valid() bool { return r >= LessEqual && r <= GreaterEqual }

// ParseRelation accepts "<=", "≤", "le", "=", "==", "eq", ">=", "≥", "ge".
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<=", "≤", "le":
		return LessEqual, nil
	case "=", "==", "eq":
		return Equal, nil
	case ">=", "≥", "ge":
		return GreaterEqual, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRelation)
	}
}

// Constraint is one row a·x (relation) rhs.
// Coefficients are aligned to the decision variables of the owning Problem.
type Constraint struct {
	Coefficients []float64 `yaml:"coefficients" json:"coefficients"`
	Relation     Relation  `yaml:"relation" json:"relation"`
	RHS          float64   `yaml:"rhs" json:"rhs"`
}

// Coefficient returns coefficient i, or 0 when the row is shorter than i+1.
func (c Constraint) Coefficient(i int) float64 {
	if i < 0 || i >= len(c.Coefficients) {
		return 0
	}

	return c.Coefficients[i]
}

// Problem is a linear program over non-negative decision variables.
type Problem struct {
	Kind        Kind         `yaml:"kind" json:"kind"`
	Objective   []float64    `yaml:"objective" json:"objective"`
	Constraints []Constraint `yaml:"constraints" json:"constraints"`
}

// NumVars returns the number of decision variables (len(Objective)).
func (p Problem) NumVars() int { return len(p.Objective) }

// NumConstraints returns the number of constraints.
func (p Problem) NumConstraints() int { return len(p.Constraints) }

// Clone returns a deep copy of p.
func (p Problem) Clone() Problem {
	out := Problem{
		Kind:        p.Kind,
		Objective:   append([]float64(nil), p.Objective...),
		Constraints: make([]Constraint, len(p.Constraints)),
	}
	for i, c := range p.Constraints {
		out.Constraints[i] = Constraint{
			Coefficients: append([]float64(nil), c.Coefficients...),
			Relation:     c.Relation,
			RHS:          c.RHS,
		}
	}

	return out
}

// Evaluate returns c·x for the objective of p. Missing entries count as 0.
func (p Problem) Evaluate(x []float64) float64 {
	var sum float64
	for i, c := range p.Objective {
		if i < len(x) {
			sum += c * x[i]
		}
	}

	return sum
}
