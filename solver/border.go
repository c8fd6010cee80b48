// SPDX-License-Identifier: MIT

// Package solver - Phases 3 and 4: the border block and the border columns.
package solver

import "github.com/katalvlaran/borderband/matrix"

// borderBlock is Phase 3: Gauss-Jordan on the 3x3 block (k..k+2, k..k+2).
//
// Entering state (after the sweeps):
//
//	row k    [ b=p   c     q   ]
//	row k+1  [ a=p   b     c=q ]
//	row k+2  [ p     a     b=q ]
//
// Leaving state: identity, with x[k..k+2] in f[k..k+2].
func (s *Solver) borderBlock() error {
	k := s.k
	i0, i1, i2 := k, k+1, k+2

	// Row k: unit pivot in column k.
	r, err := s.reciprocal(PhaseBorderBlock, i0, s.p.at(i0))
	if err != nil {
		return err
	}
	tie(s.b, s.p, i0, 1)
	s.c.scale(i0, r)
	s.q.scale(i0, r)
	s.f.scale(i0, r)

	// Column k below the pivot.
	m1 := s.p.at(i1)
	s.b.add(i1, -m1*s.c.at(i0))
	tie(s.c, s.q, i1, s.q.at(i1)-m1*s.q.at(i0))
	s.f.add(i1, -m1*s.f.at(i0))
	tie(s.p, s.a, i1, 0)

	m2 := s.p.at(i2)
	s.a.add(i2, -m2*s.c.at(i0))
	tie(s.b, s.q, i2, s.q.at(i2)-m2*s.q.at(i0))
	s.f.add(i2, -m2*s.f.at(i0))
	s.p.set(i2, 0)

	// Row k+1: unit pivot in column k+1.
	if r, err = s.reciprocal(PhaseBorderBlock, i1, s.b.at(i1)); err != nil {
		return err
	}
	s.b.set(i1, 1)
	tie(s.c, s.q, i1, s.q.at(i1)*r)
	s.f.scale(i1, r)

	// Column k+1 below the pivot.
	a2 := s.a.at(i2)
	tie(s.b, s.q, i2, s.q.at(i2)-a2*s.c.at(i1))
	s.f.add(i2, -a2*s.f.at(i1))
	s.a.set(i2, 0)

	// Row k+2: unit pivot in column k+2.
	if r, err = s.reciprocal(PhaseBorderBlock, i2, s.q.at(i2)); err != nil {
		return err
	}
	s.f.scale(i2, r)
	tie(s.b, s.q, i2, 1)

	// Back out column k+2, then column k+1.
	s.f.add(i1, -s.c.at(i1)*s.f.at(i2))
	tie(s.c, s.q, i1, 0)

	s.f.add(i0, -s.q.at(i0)*s.f.at(i2))
	s.q.set(i0, 0)
	s.f.add(i0, -s.c.at(i0)*s.f.at(i1))
	s.c.set(i0, 0)

	return nil
}

// borderColumns is Phase 4: with x[k] and x[k+2] known, clear columns k and
// k+2 in every row outside the block, rows k-1 and k+3 included.
func (s *Solver) borderColumns() error {
	n, k := s.n, s.k
	fk, fk2 := s.f.at(k), s.f.at(k+2)

	for i := k - 1; i >= 1; i-- {
		s.f.add(i, -s.p.at(i)*fk-s.q.at(i)*fk2)
		s.p.set(i, 0)
		s.q.set(i, 0)
	}
	for i := k + 3; i <= n; i++ {
		s.f.add(i, -s.p.at(i)*fk-s.q.at(i)*fk2)
		s.p.set(i, 0)
		s.q.set(i, 0)
	}

	// The band twins of p[k-1] and q[k+3].
	if k != 1 {
		s.c.set(k-1, 0)
	}
	if k != n-2 {
		s.a.set(k+3, 0)
	}

	return nil
}

// backSubstitute reads x off the reduced system: rows k-1..k+3 are unit rows,
// rows above keep c[i], rows below keep a[i].
func (s *Solver) backSubstitute() (*matrix.Vector, error) {
	n, k := s.n, s.k
	x, err := matrix.NewVector(n)
	if err != nil {
		return nil, err
	}
	xv := lvec(x.RawData())

	if k > 1 {
		xv.set(k-1, s.f.at(k-1))
	}
	for i := k; i <= k+2; i++ {
		xv.set(i, s.f.at(i))
	}
	if k+2 < n {
		xv.set(k+3, s.f.at(k+3))
	}

	for i := k - 2; i >= 1; i-- {
		xv.set(i, s.f.at(i)-xv.at(i+1)*s.c.at(i))
	}
	for i := k + 4; i <= n; i++ {
		xv.set(i, s.f.at(i)-xv.at(i-1)*s.a.at(i))
	}

	return x, nil
}
