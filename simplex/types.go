// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlp/matrix"
)

// Strategy selects how the solver obtains an initial feasible basis.
type Strategy int

const (
	// StrategyStandard starts from the slack basis. It only accepts problems
	// whose normalized constraints are all ≤ (no artificial variables).
	StrategyStandard Strategy = iota

	// StrategyBigM penalizes artificial variables with a large constant M in
	// the objective row and solves in a single phase.
	StrategyBigM

	// StrategyTwoPhase minimizes the sum of artificials first (phase 1), then
	// optimizes the real objective from the resulting basis (phase 2).
	StrategyTwoPhase

	// StrategyAuto runs StrategyTwoPhase when artificials are needed and
	// StrategyStandard otherwise.
	StrategyAuto
)

// String returns "standard", "big-m", "two-phase" or "auto".
func (s Strategy) String() string {
	switch s {
	case StrategyStandard:
		return "standard"
	case StrategyBigM:
		return "big-m"
	case StrategyTwoPhase:
		return "two-phase"
	case StrategyAuto:
		return "auto"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool { return s >= StrategyStandard && s <= StrategyAuto }

// ParseStrategy accepts the String forms plus "bigm", "big_m", "twophase",
// "two_phase" (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return StrategyStandard, nil
	case "big-m", "bigm", "big_m":
		return StrategyBigM, nil
	case "two-phase", "twophase", "two_phase":
		return StrategyTwoPhase, nil
	case "auto", "":
		return StrategyAuto, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// PivotRule selects the entering/leaving variable rule.
type PivotRule int

const (
	// Dantzig picks the most negative reduced cost; ratio-test ties go to the
	// first row.
	Dantzig PivotRule = iota

	// Bland picks the lowest-index improving column; ratio-test ties go to the
	// row whose basic variable has the lowest column. Never cycles.
	Bland
)

// String returns "dantzig" or "bland".
func (r PivotRule) String() string {
	switch r {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	default:
		return fmt.Sprintf("PivotRule(%d)", int(r))
	}
}

// Valid reports whether r is a known rule.
func (r PivotRule) Valid() bool { return r == Dantzig || r == Bland }

// ParsePivotRule accepts "dantzig" or "bland" (case-insensitive).
func ParsePivotRule(s string) (PivotRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dantzig", "":
		return Dantzig, nil
	case "bland":
		return Bland, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownPivotRule)
	}
}

// VarKind classifies a tableau column.
type VarKind int

const (
	// Decision is an original problem variable (label x).
	Decision VarKind = iota

	// Slack is added to a ≤ row with coefficient +1 (label s).
	Slack

	// Surplus is added to a ≥ row with coefficient −1 (label e).
	Surplus

	// Artificial is added to ≥ and = rows to form the starting basis (label a).
	Artificial
)

// String returns the kind name.
func (k VarKind) String() string {
	switch k {
	case Decision:
		return "decision"
	case Slack:
		return "slack"
	case Surplus:
		return "surplus"
	case Artificial:
		return "artificial"
	default:
		return fmt.Sprintf("VarKind(%d)", int(k))
	}
}

func (k VarKind) prefix() string {
	switch k {
	case Slack:
		return "s"
	case Surplus:
		return "e"
	case Artificial:
		return "a"
	default:
		return "x"
	}
}

// Variable identifies one tableau column.
// Column is -1 for "no variable" (see None).
type Variable struct {
	Column  int     // tableau column index
	Kind    VarKind // column partition
	Ordinal int     // 1-based index within Kind
}

// None is the placeholder used where no variable applies, e.g. the entering
// variable of an initial snapshot.
var None = Variable{Column: -1}

// IsNone reports whether v is the None placeholder.
func (v Variable) IsNone() bool { return v.Column < 0 }

// Label returns the display name (x1, s2, e1, a3), or "" for None.
func (v Variable) Label() string {
	if v.IsNone() {
		return ""
	}

	return fmt.Sprintf("%s%d", v.Kind.prefix(), v.Ordinal)
}

// String is Label.
func (v Variable) String() string { return v.Label() }

// Layout is the column partition of a tableau. Columns are ordered
// decision, slack, surplus, artificial; the RHS column follows them.
type Layout struct {
	Decision   int
	Slack      int
	Surplus    int
	Artificial int
}

// Columns returns the number of variable columns (RHS excluded).
func (l Layout) Columns() int { return l.Decision + l.Slack + l.Surplus + l.Artificial }

// ArtificialStart returns the first artificial column.
func (l Layout) ArtificialStart() int { return l.Decision + l.Slack + l.Surplus }

// Variable classifies column col. Out-of-range columns yield None.
func (l Layout) Variable(col int) Variable {
	switch {
	case col < 0 || col >= l.Columns():
		return None
	case col < l.Decision:
		return Variable{Column: col, Kind: Decision, Ordinal: col + 1}
	case col < l.Decision+l.Slack:
		return Variable{Column: col, Kind: Slack, Ordinal: col - l.Decision + 1}
	case col < l.ArtificialStart():
		return Variable{Column: col, Kind: Surplus, Ordinal: col - l.Decision - l.Slack + 1}
	default:
		return Variable{Column: col, Kind: Artificial, Ordinal: col - l.ArtificialStart() + 1}
	}
}

// Phase tags an Iteration with the phase that produced it.
type Phase int

const (
	// PhaseNone is used by the single-phase strategies (standard, Big-M).
	PhaseNone Phase = iota

	// PhaseOne is the artificial-elimination phase of two-phase.
	PhaseOne

	// PhaseTwo is the real-objective phase of two-phase.
	PhaseTwo
)

// String returns "", "1" or "2".
func (p Phase) String() string {
	switch p {
	case PhaseOne:
		return "1"
	case PhaseTwo:
		return "2"
	default:
		return ""
	}
}

// Status is the terminal outcome of a solve.
type Status int

const (
	// StatusOptimal means an optimal basic feasible solution was found.
	StatusOptimal Status = iota

	// StatusUnbounded means the objective can grow without limit.
	StatusUnbounded

	// StatusInfeasible means no point satisfies every constraint.
	StatusInfeasible

	// StatusIterationLimit means the pivot cap was hit before a terminal
	// state. The result is indeterminate.
	StatusIterationLimit
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusInfeasible:
		return "infeasible"
	case StatusIterationLimit:
		return "iteration-limit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Iteration is an immutable snapshot of the tableau and basis taken once at
// the start of each phase and once after every pivot. It owns deep copies;
// later pivots never alter it.
type Iteration struct {
	Phase        Phase
	Tableau      *matrix.Dense
	Basis        []Variable // basic variable per constraint row (row i+1)
	Entering     Variable   // None on a phase-start snapshot
	Leaving      Variable   // None on a phase-start snapshot
	PivotRow     int        // tableau row, -1 on a phase-start snapshot
	PivotCol     int        // tableau column, -1 on a phase-start snapshot
	PivotElement float64    // value at (PivotRow, PivotCol) before the pivot
}

// IsPivot reports whether the snapshot was taken after a pivot.
func (it Iteration) IsPivot() bool { return it.PivotRow >= 0 }

// Solution is the result of one solve.
//
// Objective is NaN and Values is nil unless Status is StatusOptimal.
// Feasible is true for optimal and unbounded outcomes.
type Solution struct {
	Status    Status
	Feasible  bool
	Optimal   bool
	Unbounded bool
	Objective float64
	Values    []float64

	// Iterations holds every snapshot in order.
	Iterations []Iteration
	// Pivots counts the pivots performed across all phases.
	Pivots int
	// Strategy is the strategy actually run (StrategyAuto is resolved).
	Strategy Strategy

	// Basis, Layout and Tableau describe the terminal tableau.
	Basis   []Variable
	Layout  Layout
	Tableau *matrix.Dense
	// Auxiliary holds, per normalized constraint, its slack or surplus
	// variable (None for = rows). Its objective-row entry in Tableau is the
	// constraint's shadow price.
	Auxiliary []Variable
}

// ReducedCost returns the objective-row entry of column v in the terminal
// tableau, or 0 when v is None or out of range.
func (s Solution) ReducedCost(v Variable) float64 {
	if v.IsNone() || s.Tableau == nil {
		return 0
	}
	x, err := s.Tableau.At(0, v.Column)
	if err != nil {
		return 0
	}

	return x
}
