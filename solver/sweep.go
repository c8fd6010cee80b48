// SPDX-License-Identifier: MIT

// Package solver - Phases 1 and 2: sweeps towards the border block.
//
// After both sweeps every row outside k..k+2 has a unit diagonal and only one
// band neighbour (c above the block, a below it), plus the border entries.
package solver

// normalizeUp divides row i by b[i] for a row above the block.
func (s *Solver) normalizeUp(ph Phase, i int) error {
	r, err := s.reciprocal(ph, i, s.b.at(i))
	if err != nil {
		return err
	}
	s.b.set(i, 1)
	s.c.scale(i, r)
	s.p.scale(i, r)
	s.q.scale(i, r)
	s.f.scale(i, r)

	return nil
}

// eliminateDown subtracts a[i]·row(i-1) from row i, clearing a[i].
func (s *Solver) eliminateDown(i int) {
	ai := s.a.at(i)
	s.b.add(i, -ai*s.c.at(i-1))
	s.p.add(i, -ai*s.p.at(i-1))
	s.q.add(i, -ai*s.q.at(i-1))
	s.f.add(i, -ai*s.f.at(i-1))
	s.a.set(i, 0)
}

// leftSweep is Phase 1. Skipped when k == 1.
//
// Rows 1..k-3 carry no aliased cells. Row k-1 holds c[k-1] == p[k-1] and
// row k holds b[k] == p[k]; those writes go through tie.
func (s *Solver) leftSweep() error {
	k := s.k
	if k == 1 {
		return nil
	}

	i := 1
	for ; i <= k-3; i++ {
		if err := s.normalizeUp(PhaseLeftSweep, i); err != nil {
			return err
		}
		s.eliminateDown(i + 1)
	}

	i = k - 2
	if k > 2 {
		if err := s.normalizeUp(PhaseLeftSweep, i); err != nil {
			return err
		}
		i++ // k-1
		ai := s.a.at(i)
		s.b.add(i, -ai*s.c.at(i-1))
		tie(s.c, s.p, i, s.p.at(i)-ai*s.p.at(i-1))
		s.q.add(i, -ai*s.q.at(i-1))
		s.f.add(i, -ai*s.f.at(i-1))
		s.a.set(i, 0)
	} else {
		i++
	}

	// Row k-1.
	r, err := s.reciprocal(PhaseLeftSweep, i, s.b.at(i))
	if err != nil {
		return err
	}
	s.b.set(i, 1)
	tie(s.c, s.p, i, s.p.at(i)*r)
	s.q.scale(i, r)
	s.f.scale(i, r)
	i++

	// Row k.
	ai := s.a.at(i)
	tie(s.b, s.p, i, s.p.at(i)-ai*s.c.at(i-1))
	s.q.add(i, -ai*s.q.at(i-1))
	s.f.add(i, -ai*s.f.at(i-1))
	s.a.set(i, 0)

	return nil
}

// normalizeDown divides row i by b[i] for a row below the block.
func (s *Solver) normalizeDown(ph Phase, i int) error {
	r, err := s.reciprocal(ph, i, s.b.at(i))
	if err != nil {
		return err
	}
	s.b.set(i, 1)
	s.a.scale(i, r)
	s.p.scale(i, r)
	s.q.scale(i, r)
	s.f.scale(i, r)

	return nil
}

// eliminateUp subtracts c[i]·row(i+1) from row i, clearing c[i].
func (s *Solver) eliminateUp(i int) {
	ci := s.c.at(i)
	s.b.add(i, -ci*s.a.at(i+1))
	s.p.add(i, -ci*s.p.at(i+1))
	s.q.add(i, -ci*s.q.at(i+1))
	s.f.add(i, -ci*s.f.at(i+1))
	s.c.set(i, 0)
}

// rightSweep is Phase 2, the mirror of leftSweep. Skipped when k+2 == n.
//
// Row k+3 holds a[k+3] == q[k+3] and row k+2 holds b[k+2] == q[k+2].
func (s *Solver) rightSweep() error {
	n, k := s.n, s.k
	if k+2 == n {
		return nil
	}

	i := n
	for ; i >= k+5; i-- {
		if err := s.normalizeDown(PhaseRightSweep, i); err != nil {
			return err
		}
		s.eliminateUp(i - 1)
	}

	i = k + 4
	if k < n-3 {
		if err := s.normalizeDown(PhaseRightSweep, i); err != nil {
			return err
		}
		i-- // k+3
		ci := s.c.at(i)
		s.b.add(i, -ci*s.a.at(i+1))
		tie(s.a, s.q, i, s.q.at(i)-ci*s.q.at(i+1))
		s.p.add(i, -ci*s.p.at(i+1))
		s.f.add(i, -ci*s.f.at(i+1))
		s.c.set(i, 0)
	} else {
		i--
	}

	// Row k+3.
	r, err := s.reciprocal(PhaseRightSweep, i, s.b.at(i))
	if err != nil {
		return err
	}
	s.b.set(i, 1)
	tie(s.a, s.q, i, s.q.at(i)*r)
	s.p.scale(i, r)
	s.f.scale(i, r)
	i--

	// Row k+2.
	ci := s.c.at(i)
	tie(s.b, s.q, i, s.q.at(i)-ci*s.a.at(i+1))
	s.p.add(i, -ci*s.p.at(i+1))
	s.f.add(i, -ci*s.f.at(i+1))
	s.c.set(i, 0)

	return nil
}
