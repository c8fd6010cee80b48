// SPDX-License-Identifier: MIT

// Package matrix - BorderedBand: tridiagonal band plus two dense border columns.
//
// Shape (n=10, k=4):
//
//	        k   k+2
//	| * *   *   *         |
//	| * * * *   *         |
//	|   * * *   *         |
//	|     * * * *         |
//	|       * * *         |
//	|       * * * *       |
//	|       *   * * *     |
//	|       *   * * * *   |
//	|       *   *   * * * |
//	|       *   *     * * |
//
// Storage: five length-n vectors a (sub), b (main), c (super), p (column k),
// q (column k+2). a[1] and c[n] are unused. Inside the border block
// (rows k-1..k+3) some logical cells are both band and border entries; they
// are stored twice and kept equal through the tie helpers in band_ties.go.
//
// Complexity quicksheet:
//   - NewBorderedBand: O(n); Element: O(1); Multiply: O(n); MultiplyDense: O(n^2); Clone: O(n).
package matrix

import "fmt"

// KUnset marks a matrix whose border pivot has not been chosen yet.
// FillRandom assigns a pivot when it sees KUnset.
const KUnset = -1

// minBandSize is the smallest n that fits the 3x3 inner border block.
const minBandSize = 3

const (
	ctxElement      = "Element"
	ctxMultiply     = "Multiply"
	ctxMultiplyDens = "MultiplyDense"
)

// bandErrorf wraps err with the BorderedBand method context.
func bandErrorf(method string, err error) error {
	return fmt.Errorf("BorderedBand.%s: %w", method, err)
}

// BorderedBand is an n×n matrix whose non-zeros lie on the three central
// diagonals and in columns k and k+2.
type BorderedBand struct {
	n, k          int
	a, b, c, p, q *Vector
}

// NewBorderedBand allocates a zero n×n bordered band matrix with pivot k.
//
// Behavior highlights:
//   - n < 3 => ErrBadShape.
//   - k == KUnset is accepted; FillRandom picks the pivot later.
//   - any other k outside [1, n-2] => ErrBadPivot.
//   - n == 3 with k == KUnset yields k = 1 (the only valid pivot).
//
// Complexity: O(n).
func NewBorderedBand(n, k int) (*BorderedBand, error) {
	if err := ValidateBandSize(n); err != nil {
		return nil, matrixErrorf("NewBorderedBand", err)
	}
	if n == minBandSize && k == KUnset {
		k = 1
	}
	if k != KUnset {
		if err := ValidatePivot(n, k); err != nil {
			return nil, matrixErrorf("NewBorderedBand", err)
		}
	}

	return &BorderedBand{
		n: n,
		k: k,
		a: newVectorUnchecked(n),
		b: newVectorUnchecked(n),
		c: newVectorUnchecked(n),
		p: newVectorUnchecked(n),
		q: newVectorUnchecked(n),
	}, nil
}

// NewBorderedBandFromBand builds a matrix around an explicit band. The band
// vectors are cloned; the border columns are filled at random from [min,max)
// honoring the alias ties. k == KUnset (or any invalid k) selects a random pivot.
func NewBorderedBandFromBand(a, b, c *Vector, k, min, max int, opts ...Option) (*BorderedBand, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf("NewBorderedBandFromBand", err)
	}
	if err := ValidateSameSize(b, c); err != nil {
		return nil, matrixErrorf("NewBorderedBandFromBand", err)
	}
	m, err := NewBorderedBand(a.Len(), KUnset)
	if err != nil {
		return nil, err
	}
	m.a, m.b, m.c = a.Clone(), b.Clone(), c.Clone()

	o := gatherOptions(opts...)
	if err = m.FillRandom(NewRNG(o.seed), min, max, k, false); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns n.
func (m *BorderedBand) Size() int { return m.n }

// K returns the border pivot (KUnset before FillRandom).
func (m *BorderedBand) K() int { return m.k }

// A returns the sub-diagonal vector (a[i] sits at (i, i-1)).
func (m *BorderedBand) A() *Vector { return m.a }

// B returns the main diagonal vector.
func (m *BorderedBand) B() *Vector { return m.b }

// C returns the super-diagonal vector (c[i] sits at (i, i+1)).
func (m *BorderedBand) C() *Vector { return m.c }

// P returns the border column at position k.
func (m *BorderedBand) P() *Vector { return m.p }

// Q returns the border column at position k+2.
func (m *BorderedBand) Q() *Vector { return m.q }

// Element returns the logical entry (i, j), 1-based.
//
//	a[i] if i-j == 1, b[i] if i == j, c[i] if j-i == 1,
//	else p[i] if j == k, q[i] if j == k+2, else 0.
//
// Returns ErrOutOfRange outside [1,n]x[1,n].
func (m *BorderedBand) Element(i, j int) (float64, error) {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return 0, fmt.Errorf("BorderedBand.%s(%d,%d): %w", ctxElement, i, j, ErrOutOfRange)
	}

	return m.element(i, j), nil
}

// element is Element without the bounds check.
func (m *BorderedBand) element(i, j int) float64 {
	switch i - j {
	case 1:
		return m.a.at(i)
	case 0:
		return m.b.at(i)
	case -1:
		return m.c.at(i)
	}
	if m.k == KUnset {
		return 0
	}
	switch j - m.k {
	case 0:
		return m.p.at(i)
	case 2:
		return m.q.at(i)
	}

	return 0
}

// Clone returns a deep copy of all five vectors plus n and k.
func (m *BorderedBand) Clone() *BorderedBand {
	return &BorderedBand{
		n: m.n,
		k: m.k,
		a: m.a.Clone(),
		b: m.b.Clone(),
		c: m.c.Clone(),
		p: m.p.Clone(),
		q: m.q.Clone(),
	}
}

// String renders the full dense form; intended for small matrices.
func (m *BorderedBand) String() string {
	return m.ToDense().String()
}
