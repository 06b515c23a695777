// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// solver is the per-call state of Solve. Nothing in it is shared between
// calls.
type solver struct {
	opts   Options
	t      *tableau
	rec    recorder
	pivots int
}

// iterate pivots until the tableau is optimal, unbounded, or the pivot cap is
// reached. The cap is checked after both selections succeed, so a tableau that
// is already optimal on the cap-th step still reports StatusOptimal.
func (s *solver) iterate(phase Phase) (Status, error) {
	for {
		col, err := s.t.enteringColumn(s.opts.PivotRule, s.opts.Tolerance)
		if err != nil {
			return 0, err
		}
		if col < 0 {
			return StatusOptimal, nil
		}
		row, err := s.t.leavingRow(col, s.opts.PivotRule, s.opts.Tolerance)
		if err != nil {
			return 0, err
		}
		if row < 0 {
			klog.V(4).Infof("simplex: column %s unbounded", s.t.layout.Variable(col).Label())
			return StatusUnbounded, nil
		}
		if s.pivots >= s.opts.MaxIterations {
			klog.V(2).Infof("simplex: iteration cap %d reached", s.opts.MaxIterations)
			return StatusIterationLimit, nil
		}
		if err = s.step(phase, row, col); err != nil {
			return 0, err
		}
	}
}

// step pivots on (row, col) and records the snapshot.
func (s *solver) step(phase Phase, row, col int) error {
	leaving := s.t.layout.Variable(s.t.basis[row-1])
	element, err := s.t.pivot(row, col)
	if err != nil {
		return err
	}
	s.pivots++
	s.rec.pivot(s.t, phase, row, col, leaving, element)
	klog.V(4).Infof("simplex: phase=%q pivot %d: %s enters, %s leaves, row=%d col=%d element=%g",
		phase, s.pivots, s.t.layout.Variable(col).Label(), leaving.Label(), row, col, element)

	return nil
}

// runStandard solves from the slack basis. The caller guarantees that the
// tableau has no artificial columns.
func (s *solver) runStandard() (Status, error) {
	s.rec.start(s.t, PhaseNone)

	return s.iterate(PhaseNone)
}

// runBigM solves the penalized tableau in one phase.
//
// Implementation:
//   - Stage 1: iterate on the M-penalized row 0.
//   - Stage 2 (unbounded): an artificial still basic at a positive level
//     means the ray may only exist because the constraints were never
//     satisfied; a phase-1 pass on a copy decides feasibility.
//   - Stage 3 (optimal): an artificial basic at a positive level proves
//     infeasibility. Otherwise row 0 is rebuilt from the real costs so the
//     objective and reduced costs carry no M-scaled rounding error.
func (s *solver) runBigM() (Status, error) {
	// Stage 1
	s.rec.start(s.t, PhaseNone)
	status, err := s.iterate(PhaseNone)
	if err != nil || status == StatusIterationLimit {
		return status, err
	}

	positive, err := s.positiveArtificial()
	if err != nil {
		return 0, err
	}

	// Stage 2
	if status == StatusUnbounded {
		if positive.IsNone() {
			return StatusUnbounded, nil
		}
		return s.checkFeasible()
	}

	// Stage 3
	if !positive.IsNone() {
		klog.V(2).Infof("simplex: artificial %s basic at a positive level, problem infeasible", positive.Label())
		return StatusInfeasible, nil
	}
	if err = s.installObjective(); err != nil {
		return 0, err
	}

	return StatusOptimal, nil
}

// positiveArtificial returns the first artificial variable basic above the
// tolerance, or None.
func (s *solver) positiveArtificial() (Variable, error) {
	rhs, err := s.t.m.Col(s.t.rhs())
	if err != nil {
		return None, err
	}
	for i, b := range s.t.basis {
		if b >= s.t.layout.ArtificialStart() && rhs[i+1] > s.opts.Tolerance {
			return s.t.layout.Variable(b), nil
		}
	}

	return None, nil
}

// checkFeasible runs phase 1 on a copy of the current tableau and reports
// StatusUnbounded when the artificials can reach zero, StatusInfeasible
// otherwise. The solver's own tableau, trace and pivot count are untouched.
func (s *solver) checkFeasible() (Status, error) {
	check := &solver{opts: s.opts, t: s.t.clone()}
	if err := check.installPhaseOne(); err != nil {
		return 0, err
	}
	status, err := check.iterate(PhaseOne)
	if err != nil || status == StatusIterationLimit {
		return status, err
	}
	w, err := check.t.m.At(0, check.t.rhs())
	if err != nil {
		return 0, err
	}
	klog.V(2).Infof("simplex: Big-M stopped unbounded, feasibility check gives artificial sum %g after %d pivots",
		-w, check.pivots)
	if status == StatusUnbounded || math.Abs(w) > PhaseOneTolerance {
		return StatusInfeasible, nil
	}

	return StatusUnbounded, nil
}

// runTwoPhase solves phase 1 (maximize -Σ artificials), removes the
// artificials and solves phase 2 on the original objective.
//
// Implementation:
//   - Stage 1: install the phase-1 objective row and iterate.
//   - Stage 2: a phase-1 value beyond PhaseOneTolerance means infeasible.
//   - Stage 3: pivot zero-level artificials out of the basis; rows where
//     that is impossible are redundant and dropped.
//   - Stage 4: drop artificial columns, reinstall the objective, iterate.
func (s *solver) runTwoPhase() (Status, error) {
	if s.t.layout.Artificial == 0 {
		return s.runStandard()
	}

	// Stage 1
	if err := s.installPhaseOne(); err != nil {
		return 0, err
	}
	s.rec.start(s.t, PhaseOne)
	status, err := s.iterate(PhaseOne)
	if err != nil || status == StatusIterationLimit {
		return status, err
	}

	// Stage 2
	w, err := s.t.m.At(0, s.t.rhs())
	if err != nil {
		return 0, err
	}
	klog.V(2).Infof("simplex: phase 1 finished after %d pivots, artificial sum %g", s.pivots, -w)
	if status == StatusUnbounded || math.Abs(w) > PhaseOneTolerance {
		return StatusInfeasible, nil
	}

	// Stage 3
	redundant, err := s.driveOutArtificials()
	if err != nil {
		return 0, err
	}

	// Stage 4
	if err = s.dropArtificials(redundant); err != nil {
		return 0, err
	}
	if err = s.installObjective(); err != nil {
		return 0, err
	}
	s.rec.start(s.t, PhaseTwo)

	return s.iterate(PhaseTwo)
}

// installPhaseOne writes the row 0 of "maximize -Σ artificials": 1 on every
// artificial column, then every artificial row subtracted.
func (s *solver) installPhaseOne() error {
	obj := make([]float64, s.t.m.Cols())
	for j := s.t.layout.ArtificialStart(); j < s.t.layout.Columns(); j++ {
		obj[j] = 1
	}
	if err := s.t.m.SetRow(0, obj); err != nil {
		return err
	}
	for i, b := range s.t.basis {
		if b < s.t.layout.ArtificialStart() {
			continue
		}
		if err := s.t.m.AddScaledRow(0, i+1, -1); err != nil {
			return err
		}
	}

	return nil
}

// driveOutArtificials pivots every artificial still basic (at level zero)
// onto the first non-artificial column with a non-zero entry in its row.
// Rows without such an entry are linear combinations of the others; their
// tableau indices are returned for removal.
func (s *solver) driveOutArtificials() (map[int]bool, error) {
	redundant := make(map[int]bool)
	start := s.t.layout.ArtificialStart()
	for i, b := range s.t.basis {
		if b < start {
			continue
		}
		row, err := s.t.m.Row(i + 1)
		if err != nil {
			return nil, err
		}
		col := -1
		for j := 0; j < start; j++ {
			if math.Abs(row[j]) > s.opts.Tolerance {
				col = j
				break
			}
		}
		if col < 0 {
			klog.V(2).Infof("simplex: constraint row %d is redundant", i+1)
			redundant[i+1] = true
			continue
		}
		if err = s.step(PhaseOne, i+1, col); err != nil {
			return nil, err
		}
	}

	return redundant, nil
}

// dropArtificials replaces the tableau by the sub-tableau without artificial
// columns and redundant rows, and shrinks basis and layout to match.
func (s *solver) dropArtificials(redundant map[int]bool) error {
	start := s.t.layout.ArtificialStart()
	rows := []int{0}
	basis := make([]int, 0, len(s.t.basis))
	for i, b := range s.t.basis {
		if redundant[i+1] {
			continue
		}
		rows = append(rows, i+1)
		basis = append(basis, b)
	}
	cols := make([]int, 0, start+1)
	for j := 0; j < start; j++ {
		cols = append(cols, j)
	}
	cols = append(cols, s.t.rhs())

	// If every row was redundant only the objective row survives.
	dense, err := s.t.m.Induced(rows, cols)
	if err != nil {
		return fmt.Errorf("dropArtificials: %w", err)
	}
	s.t.m = dense
	s.t.basis = basis
	s.t.layout.Artificial = 0

	return nil
}

// installObjective writes the negated maximization costs into row 0 and
// eliminates the cost of every basic column so row 0 is canonical again.
func (s *solver) installObjective() error {
	obj := make([]float64, s.t.m.Cols())
	for j, c := range s.t.cost {
		obj[j] = -c
	}
	if err := s.t.m.SetRow(0, obj); err != nil {
		return err
	}
	for i, b := range s.t.basis {
		f, err := s.t.m.At(0, b)
		if err != nil {
			return err
		}
		if f == 0 {
			continue
		}
		if err = s.t.m.AddScaledRow(0, i+1, -f); err != nil {
			return err
		}
		if err = s.t.m.Set(0, b, 0); err != nil {
			return err
		}
	}

	return nil
}
