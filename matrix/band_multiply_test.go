// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/stretchr/testify/require"
)

// TestMultiply_MatchesDense compares the O(n) kernel with the O(n^2) oracle
// for every pivot. Integer data keeps both sums exact.
func TestMultiply_MatchesDense(t *testing.T) {
	for n := 3; n <= 12; n++ {
		x := sequence(t, n)
		for _, k := range allPivots(n) {
			m := mustBand(t, n, k, int64(n*31+k))

			fast, err := m.Multiply(x)
			require.NoError(t, err)
			slow, err := m.MultiplyDense(x)
			require.NoError(t, err)
			require.Equal(t, slow.RawData(), fast.RawData(), "n=%d k=%d", n, k)

			ref, err := m.ToDense().MatVec(x.RawData())
			require.NoError(t, err)
			require.Equal(t, ref, fast.RawData(), "n=%d k=%d", n, k)
		}
	}
}

// TestMultiply_ThreeByThree uses the fully dense n=3 case.
func TestMultiply_ThreeByThree(t *testing.T) {
	m := threeByThree(t)
	y, err := m.Multiply(mustVector(t, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 10, 8}, y.RawData())
}

func TestMultiply_Errors(t *testing.T) {
	m := mustBand(t, 5, 2, 1)
	_, err := m.Multiply(mustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Multiply(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.MultiplyDense(mustVector(t, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	unset, err := matrix.NewBorderedBand(5, matrix.KUnset)
	require.NoError(t, err)
	_, err = unset.Multiply(sequence(t, 5))
	require.ErrorIs(t, err, matrix.ErrBadPivot)
}

// threeByThree returns [[2,1,0],[1,3,1],[0,1,2]] as a bordered band with k=1.
func threeByThree(t *testing.T) *matrix.BorderedBand {
	t.Helper()
	d := mustDense(t, [][]float64{
		{2, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	m, err := matrix.FromDense(d, 1)
	require.NoError(t, err)

	return m
}
