// SPDX-License-Identifier: MIT

// Package matrix - conversions between BorderedBand and Dense.
//
// ToDense expands the compact storage into an n×n Dense (0-based).
// FromDense recognizes the bordered band pattern in a Dense and rebuilds the
// five vectors. Tied cells are read once and written under both roles.
package matrix

import "fmt"

// ToDense returns the logical n×n matrix as Dense.
// An unset k yields the tridiagonal band only.
//
// Complexity: O(n^2).
func (m *BorderedBand) ToDense() *Dense {
	d := &Dense{r: m.n, c: m.n, data: make([]float64, m.n*m.n)}
	for i := 1; i <= m.n; i++ {
		row := d.RawRow(i - 1)
		for j := 1; j <= m.n; j++ {
			row[j-1] = m.element(i, j)
		}
	}

	return d
}

// FromDense extracts a BorderedBand with pivot k from a square Dense.
//
// Behavior highlights:
//   - d must be square with n >= 3, otherwise ErrBadShape.
//   - k must lie in [1, n-2] (k = 1 when n == 3), otherwise ErrBadPivot.
//     KUnset is rejected too: a dense matrix does not reveal its pivot.
//   - Any |entry| > eps outside the band and columns k, k+2 => ErrStructure.
//   - a[1] and c[n] are stored as zero.
//
// The tolerance comes from WithEpsilon (DefaultEpsilon otherwise).
//
// Complexity: O(n^2).
func FromDense(d *Dense, k int, opts ...Option) (*BorderedBand, error) {
	if d == nil {
		return nil, matrixErrorf("FromDense", ErrNilMatrix)
	}
	if d.r != d.c {
		return nil, matrixErrorf("FromDense", ErrBadShape)
	}
	if err := ValidateBandSize(d.r); err != nil {
		return nil, matrixErrorf("FromDense", err)
	}
	if err := ValidatePivot(d.r, k); err != nil {
		return nil, matrixErrorf("FromDense", err)
	}
	m, err := NewBorderedBand(d.r, k)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	n := m.n
	for i := 1; i <= n; i++ {
		row := d.RawRow(i - 1)
		for j := 1; j <= n; j++ {
			v := row[j-1]
			switch {
			case i-j == 1:
				m.a.set(i, v)
			case i == j:
				m.b.set(i, v)
			case j-i == 1:
				m.c.set(i, v)
			}
			switch {
			case j == m.k:
				m.p.set(i, v)
			case j == m.k+2:
				m.q.set(i, v)
			default:
				if absT(i-j) > 1 && !isZero(v, o.eps) {
					return nil, fmt.Errorf("FromDense(%d,%d): %w", i, j, ErrStructure)
				}
			}
		}
	}

	return m, nil
}
