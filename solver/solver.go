// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/borderband/matrix"
)

// lvec is a 1-based view over a vector's backing slice.
type lvec []float64

func (v lvec) at(i int) float64       { return v[i-1] }
func (v lvec) set(i int, x float64)   { v[i-1] = x }
func (v lvec) add(i int, d float64)   { v[i-1] += d }
func (v lvec) scale(i int, r float64) { v[i-1] *= r }

// tie writes val into two roles of one aliased cell.
func tie(x, y lvec, i int, val float64) {
	x.set(i, val)
	y.set(i, val)
}

// Solver holds a private copy of A and f and transforms them in place.
type Solver struct {
	m   *matrix.BorderedBand
	rhs *matrix.Vector

	n, k          int
	a, b, c, p, q lvec
	f             lvec

	eps      float64
	log      *slog.Logger
	observer func(PhaseReport)

	// set by the first Solve or Trace; the system is consumed either way.
	used bool
}

// New prepares a solver for m·x = f. Both inputs are cloned.
//
// Errors: ErrNilInput, ErrDimensionMismatch, ErrUnsetPivot.
func New(m *matrix.BorderedBand, f *matrix.Vector, opts ...Option) (*Solver, error) {
	if m == nil || f == nil {
		return nil, solverErrorf("New", ErrNilInput)
	}
	if m.Size() != f.Len() {
		return nil, solverErrorf("New", ErrDimensionMismatch)
	}
	if m.K() == matrix.KUnset {
		return nil, solverErrorf("New", ErrUnsetPivot)
	}
	o := gatherOptions(opts...)

	mc := m.Clone()
	fc := f.Clone()
	s := &Solver{
		m:        mc,
		rhs:      fc,
		n:        mc.Size(),
		k:        mc.K(),
		a:        lvec(mc.A().RawData()),
		b:        lvec(mc.B().RawData()),
		c:        lvec(mc.C().RawData()),
		p:        lvec(mc.P().RawData()),
		q:        lvec(mc.Q().RawData()),
		f:        lvec(fc.RawData()),
		eps:      o.eps,
		log:      o.logger.With(slog.Int("n", mc.Size()), slog.Int("k", mc.K())),
		observer: o.observer,
	}

	return s, nil
}

// K returns the border pivot.
func (s *Solver) K() int { return s.k }

// Size returns n.
func (s *Solver) Size() int { return s.n }

// Matrix returns a clone of the current (possibly transformed) matrix.
func (s *Solver) Matrix() *matrix.BorderedBand { return s.m.Clone() }

// RHS returns a clone of the current (possibly transformed) right-hand side.
func (s *Solver) RHS() *matrix.Vector { return s.rhs.Clone() }

// Solve runs the elimination and returns x.
//
// Errors: ErrAlreadySolved on a second call; a *PivotError (matching
// ErrSingularPivot) when a pivot is below eps.
//
// Complexity: O(n).
func (s *Solver) Solve() (*matrix.Vector, error) {
	x, _, err := s.run(nil)
	if err != nil {
		return nil, solverErrorf("Solve", err)
	}

	return x, nil
}

// Trace runs the elimination like Solve and, after the initial state and each
// phase, records ‖M·xAccurate − f‖₁ with snapshots of M and f. The reports
// gathered before a failure are returned together with the error.
//
// Complexity: O(n) per phase plus the snapshots.
func (s *Solver) Trace(xAccurate *matrix.Vector) (*matrix.Vector, []PhaseReport, error) {
	if xAccurate == nil {
		return nil, nil, solverErrorf("Trace", ErrNilInput)
	}
	if xAccurate.Len() != s.n {
		return nil, nil, solverErrorf("Trace", ErrDimensionMismatch)
	}
	x, reports, err := s.run(xAccurate)
	if err != nil {
		return nil, reports, solverErrorf("Trace", err)
	}

	return x, reports, nil
}

// run drives the phases. xAccurate != nil switches on residual reporting.
func (s *Solver) run(xAccurate *matrix.Vector) (*matrix.Vector, []PhaseReport, error) {
	if s.used {
		return nil, nil, ErrAlreadySolved
	}
	s.used = true

	var reports []PhaseReport
	if xAccurate != nil {
		reports = make([]PhaseReport, 0, 5)
		reports = append(reports, s.report(PhaseInitial, xAccurate))
	}

	steps := []struct {
		phase Phase
		run   func() error
	}{
		{PhaseLeftSweep, s.leftSweep},
		{PhaseRightSweep, s.rightSweep},
		{PhaseBorderBlock, s.borderBlock},
		{PhaseBorderColumns, s.borderColumns},
	}
	for _, st := range steps {
		if err := st.run(); err != nil {
			s.log.Debug("elimination stopped", slog.String("phase", st.phase.String()), slog.Any("err", err))
			return nil, reports, err
		}
		s.log.Debug("phase done", slog.String("phase", st.phase.String()))
		if xAccurate != nil {
			r := s.report(st.phase, xAccurate)
			reports = append(reports, r)
			s.log.Debug("phase residual", slog.String("phase", st.phase.String()), slog.Float64("residual", r.Residual))
		} else if s.observer != nil {
			s.observer(s.snapshot(st.phase, math.NaN()))
		}
	}

	x, err := s.backSubstitute()
	if err != nil {
		return nil, reports, err
	}
	s.log.Debug("phase done", slog.String("phase", PhaseBackSubstitution.String()))

	return x, reports, nil
}

// report builds a PhaseReport with the current residual and notifies the observer.
func (s *Solver) report(ph Phase, xAccurate *matrix.Vector) PhaseReport {
	r := s.snapshot(ph, s.residual(xAccurate))
	if s.observer != nil {
		s.observer(r)
	}

	return r
}

func (s *Solver) snapshot(ph Phase, residual float64) PhaseReport {
	return PhaseReport{Phase: ph, Residual: residual, Matrix: s.m.Clone(), RHS: s.rhs.Clone()}
}

// residual returns ‖M·x − f‖₁ for the current state. The ties stay
// consistent at phase boundaries, so the sparse product is exact here.
func (s *Solver) residual(x *matrix.Vector) float64 {
	y, err := s.m.Multiply(x)
	if err != nil {
		return math.NaN()
	}
	d, err := y.Sub(s.rhs)
	if err != nil {
		return math.NaN()
	}

	return d.Norm()
}

// reciprocal returns 1/v or a *PivotError when |v| < eps.
func (s *Solver) reciprocal(ph Phase, row int, v float64) (float64, error) {
	if math.Abs(v) < s.eps {
		return 0, &PivotError{Phase: ph, Row: row, Value: v}
	}

	return 1 / v, nil
}
