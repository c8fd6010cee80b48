// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/stretchr/testify/require"
)

// dominantSystem builds a row diagonally dominant n×n matrix with pivot k,
// an exact solution x in [1,100) and f = M·x. Every pivot of the elimination
// is a diagonal entry of a symmetric reordering, so none can vanish.
func dominantSystem(tb testing.TB, n, k int, seed int64) (m *matrix.BorderedBand, x, f *matrix.Vector) {
	tb.Helper()
	rng := matrix.NewRNG(seed)

	a, err := matrix.NewVector(n)
	require.NoError(tb, err)
	b, _ := matrix.NewVector(n)
	c, _ := matrix.NewVector(n)
	require.NoError(tb, a.FillRandom(rng, 1, 10))
	require.NoError(tb, b.FillRandom(rng, 100, 200))
	require.NoError(tb, c.FillRandom(rng, 1, 10))
	require.NoError(tb, a.Set(1, 0))
	require.NoError(tb, c.Set(n, 0))

	m, err = matrix.NewBorderedBandFromBand(a, b, c, k, 1, 10, matrix.WithSeed(seed))
	require.NoError(tb, err)

	x, _ = matrix.NewVector(n)
	require.NoError(tb, x.FillRandom(rng, 1, 100))
	f, err = m.Multiply(x)
	require.NoError(tb, err)

	return m, x, f
}

// fromRows builds a matrix with pivot k from dense rows.
func fromRows(tb testing.TB, k int, rows [][]float64) *matrix.BorderedBand {
	tb.Helper()
	d, err := matrix.NewDense(len(rows), len(rows))
	require.NoError(tb, err)
	for i, row := range rows {
		copy(d.RawRow(i), row)
	}
	m, err := matrix.FromDense(d, k)
	require.NoError(tb, err)

	return m
}

// threeByThree is [[2,1,0],[1,3,1],[0,1,2]] with k = 1.
func threeByThree(tb testing.TB) *matrix.BorderedBand {
	tb.Helper()
	d, err := matrix.NewDense(3, 3)
	require.NoError(tb, err)
	rows := [][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 2}}
	for i, row := range rows {
		for j, v := range row {
			require.NoError(tb, d.Set(i, j, v))
		}
	}
	m, err := matrix.FromDense(d, 1)
	require.NoError(tb, err)

	return m
}

// l1Diff returns ‖x − y‖₁.
func l1Diff(tb testing.TB, x, y *matrix.Vector) float64 {
	tb.Helper()
	d, err := x.Sub(y)
	require.NoError(tb, err)

	return d.Norm()
}

func vec(tb testing.TB, values ...float64) *matrix.Vector {
	tb.Helper()
	v, err := matrix.VectorFrom(values)
	require.NoError(tb, err)

	return v
}
