// SPDX-License-Identifier: MIT

// Package matrix - alias ties inside the border block.
//
// Within rows k-1..k+3 six logical cells are stored under two roles:
//
//	(k-1, k)   c[k-1] == p[k-1]   only when k > 1
//	(k,   k)   b[k]   == p[k]
//	(k+1, k)   a[k+1] == p[k+1]
//	(k+1, k+2) c[k+1] == q[k+1]
//	(k+2, k+2) b[k+2] == q[k+2]
//	(k+3, k+2) a[k+3] == q[k+3]   only when k+2 < n
//
// Every write to such a cell goes through SetTied so both copies change together.
package matrix

import "fmt"

// Tie names one of the dual-role cells of the border block.
type Tie int

const (
	TieCP Tie = iota // c[k-1] / p[k-1]
	TieBP            // b[k]   / p[k]
	TieAP            // a[k+1] / p[k+1]
	TieCQ            // c[k+1] / q[k+1]
	TieBQ            // b[k+2] / q[k+2]
	TieAQ            // a[k+3] / q[k+3]
)

var tieNames = [...]string{"c/p", "b/p", "a/p", "c/q", "b/q", "a/q"}

// String returns the role pair, e.g. "b/p".
func (t Tie) String() string {
	if t < TieCP || t > TieAQ {
		return fmt.Sprintf("Tie(%d)", int(t))
	}

	return tieNames[t]
}

// tieSlot resolves a Tie to its row and its band/border vectors.
type tieSlot struct {
	row          int
	band, border *Vector
}

// slot maps t onto the storage of m. ok is false when the tie does not
// exist for this k (edge cases k == 1 and k+2 == n) or k is unset.
func (m *BorderedBand) slot(t Tie) (tieSlot, bool) {
	k := m.k
	if k == KUnset {
		return tieSlot{}, false
	}
	switch t {
	case TieCP:
		if k == 1 {
			return tieSlot{}, false
		}
		return tieSlot{row: k - 1, band: m.c, border: m.p}, true
	case TieBP:
		return tieSlot{row: k, band: m.b, border: m.p}, true
	case TieAP:
		return tieSlot{row: k + 1, band: m.a, border: m.p}, true
	case TieCQ:
		return tieSlot{row: k + 1, band: m.c, border: m.q}, true
	case TieBQ:
		return tieSlot{row: k + 2, band: m.b, border: m.q}, true
	case TieAQ:
		if k+2 == m.n {
			return tieSlot{}, false
		}
		return tieSlot{row: k + 3, band: m.a, border: m.q}, true
	}

	return tieSlot{}, false
}

// ActiveTies lists the ties that exist for the current n and k, in row order.
func (m *BorderedBand) ActiveTies() []Tie {
	out := make([]Tie, 0, 6)
	for t := TieCP; t <= TieAQ; t++ {
		if _, ok := m.slot(t); ok {
			out = append(out, t)
		}
	}

	return out
}

// SetTied writes v into both roles of t.
// Returns ErrOutOfRange when t does not exist for this matrix.
func (m *BorderedBand) SetTied(t Tie, v float64) error {
	s, ok := m.slot(t)
	if !ok {
		return fmt.Errorf("BorderedBand.SetTied(%s): %w", t, ErrOutOfRange)
	}
	s.band.set(s.row, v)
	s.border.set(s.row, v)

	return nil
}

// syncTies copies every band value into its border twin. The band is the
// source of truth while building.
func (m *BorderedBand) syncTies() {
	for t := TieCP; t <= TieAQ; t++ {
		if s, ok := m.slot(t); ok {
			s.border.set(s.row, s.band.at(s.row))
		}
	}
}

// ValidateTies checks that every active tie holds the same value under both
// roles within eps. Returns ErrBadPivot for an unset k and ErrAliasBroken on
// the first mismatch.
func (m *BorderedBand) ValidateTies(eps float64) error {
	if m.k == KUnset {
		return bandErrorf("ValidateTies", ErrBadPivot)
	}
	for t := TieCP; t <= TieAQ; t++ {
		s, ok := m.slot(t)
		if !ok {
			continue
		}
		if !withinTol(s.band.at(s.row), s.border.at(s.row), eps) {
			return fmt.Errorf("BorderedBand.ValidateTies(%s, row %d): %w", t, s.row, ErrAliasBroken)
		}
	}

	return nil
}
