// SPDX-License-Identifier: MIT

// Package matrix - matrix-vector products for BorderedBand.
//
// Multiply is the production O(n) kernel. Rows whose formula depends on where
// k sits (k-1, k, k+1, k+2, k+3, 1 and n) are computed by closed forms; all
// other rows share one formula per side of the border block.
// MultiplyDense is the O(n^2) oracle built on Element; it exists for tests.
package matrix

// Multiply returns y = M·v.
//
// Errors: ErrBadPivot if k is unset, ErrDimensionMismatch if sizes differ.
//
// Complexity: O(n).
func (m *BorderedBand) Multiply(v *Vector) (*Vector, error) {
	if err := ValidateNotNilVector(v); err != nil {
		return nil, bandErrorf(ctxMultiply, err)
	}
	if m.n != v.Len() {
		return nil, bandErrorf(ctxMultiply, ErrDimensionMismatch)
	}
	if m.k == KUnset {
		return nil, bandErrorf(ctxMultiply, ErrBadPivot)
	}

	y := newVectorUnchecked(m.n)
	m.multiplyBlock(v, y)
	m.multiplyAbove(v, y)
	m.multiplyBelow(v, y)

	return y, nil
}

// multiplyBlock fills rows k-1..k+3.
func (m *BorderedBand) multiplyBlock(v, y *Vector) {
	a, b, c, p, q := m.a, m.b, m.c, m.p, m.q
	n, k := m.n, m.k

	// Rows k-1 and k. Column k of row k-1 is c[k-1] (== p[k-1]).
	if k == 1 {
		y.set(k, b.at(k)*v.at(k)+c.at(k)*v.at(k+1)+q.at(k)*v.at(k+2))
	} else {
		y.set(k, a.at(k)*v.at(k-1)+b.at(k)*v.at(k)+c.at(k)*v.at(k+1)+q.at(k)*v.at(k+2))
		if k == 2 {
			y.set(k-1, b.at(k-1)*v.at(k-1)+c.at(k-1)*v.at(k)+q.at(k-1)*v.at(k+2))
		} else {
			y.set(k-1, a.at(k-1)*v.at(k-2)+b.at(k-1)*v.at(k-1)+c.at(k-1)*v.at(k)+q.at(k-1)*v.at(k+2))
		}
	}

	// Row k+1 is pure band: a[k+1] == p[k+1], c[k+1] == q[k+1].
	y.set(k+1, a.at(k+1)*v.at(k)+b.at(k+1)*v.at(k+1)+c.at(k+1)*v.at(k+2))

	// Rows k+2 and k+3. Column k+2 of row k+3 is a[k+3] (== q[k+3]).
	if k+2 == n {
		y.set(k+2, p.at(k+2)*v.at(k)+a.at(k+2)*v.at(k+1)+b.at(k+2)*v.at(k+2))
		return
	}
	y.set(k+2, p.at(k+2)*v.at(k)+a.at(k+2)*v.at(k+1)+b.at(k+2)*v.at(k+2)+c.at(k+2)*v.at(k+3))
	if k+3 == n {
		y.set(k+3, p.at(k+3)*v.at(k)+a.at(k+3)*v.at(k+2)+b.at(k+3)*v.at(k+3))
	} else {
		y.set(k+3, p.at(k+3)*v.at(k)+a.at(k+3)*v.at(k+2)+b.at(k+3)*v.at(k+3)+c.at(k+3)*v.at(k+4))
	}
}

// multiplyAbove fills rows 1..k-2 (present when k > 2).
func (m *BorderedBand) multiplyAbove(v, y *Vector) {
	a, b, c, p, q := m.a, m.b, m.c, m.p, m.q
	k := m.k
	if k <= 2 {
		return
	}
	xk, xk2 := v.at(k), v.at(k+2)

	y.set(1, b.at(1)*v.at(1)+c.at(1)*v.at(2)+p.at(1)*xk+q.at(1)*xk2)
	for i := 2; i <= k-2; i++ {
		y.set(i, a.at(i)*v.at(i-1)+b.at(i)*v.at(i)+c.at(i)*v.at(i+1)+p.at(i)*xk+q.at(i)*xk2)
	}
}

// multiplyBelow fills rows k+4..n (present when k+3 < n).
func (m *BorderedBand) multiplyBelow(v, y *Vector) {
	a, b, c, p, q := m.a, m.b, m.c, m.p, m.q
	n, k := m.n, m.k
	if k+3 >= n {
		return
	}
	xk, xk2 := v.at(k), v.at(k+2)

	y.set(n, p.at(n)*xk+q.at(n)*xk2+a.at(n)*v.at(n-1)+b.at(n)*v.at(n))
	for i := n - 1; i >= k+4; i-- {
		y.set(i, p.at(i)*xk+q.at(i)*xk2+a.at(i)*v.at(i-1)+b.at(i)*v.at(i)+c.at(i)*v.at(i+1))
	}
}

// MultiplyDense returns y = M·v by summing Element(i,j)·v[j] over all cells.
// Reference oracle; not for production use.
//
// Complexity: O(n^2).
func (m *BorderedBand) MultiplyDense(v *Vector) (*Vector, error) {
	if err := ValidateNotNilVector(v); err != nil {
		return nil, bandErrorf(ctxMultiplyDens, err)
	}
	if m.n != v.Len() {
		return nil, bandErrorf(ctxMultiplyDens, ErrDimensionMismatch)
	}

	y := newVectorUnchecked(m.n)
	for i := 1; i <= m.n; i++ {
		var s float64
		for j := 1; j <= m.n; j++ {
			s += m.element(i, j) * v.at(j)
		}
		y.set(i, s)
	}

	return y, nil
}
