// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector_Shape(t *testing.T) {
	_, err := matrix.NewVector(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.VectorFrom(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	v, err := matrix.NewVector(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 0.0, v.Norm())
}

// TestVector_OneBased checks the index shift and both bounds.
func TestVector_OneBased(t *testing.T) {
	v := mustVector(t, 10, 20, 30)

	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, x)
	x, err = v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 30.0, x)

	_, err = v.At(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.At(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, v.Set(2, -5))
	assert.Equal(t, []float64{10, -5, 30}, v.RawData())
	require.ErrorIs(t, v.Set(4, 1), matrix.ErrOutOfRange)
}

func TestVector_Kernels(t *testing.T) {
	v := mustVector(t, 1, -2, 3)
	w := mustVector(t, 4, 5, -6)

	assert.Equal(t, 6.0, v.Norm())

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, -3}, sum.RawData())

	diff, err := v.Sub(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -7, 9}, diff.RawData())

	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 4.0-10.0-18.0, dot)

	_, err = v.Add(mustVector(t, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = v.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestVector_CloneIsDeep ensures writes to a clone never reach the source.
func TestVector_CloneIsDeep(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	c := v.Clone()
	require.NoError(t, c.Set(1, 99))
	x, _ := v.At(1)
	assert.Equal(t, 1.0, x)
}

func TestVector_FillRandom(t *testing.T) {
	v, err := matrix.NewVector(64)
	require.NoError(t, err)
	require.NoError(t, v.FillRandom(matrix.NewRNG(3), -2, 2))
	for _, x := range v.RawData() {
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 2.0)
		assert.Equal(t, float64(int(x)), x)
	}

	// same seed, same values
	u, _ := matrix.NewVector(64)
	require.NoError(t, u.FillRandom(matrix.NewRNG(3), -2, 2))
	assert.Equal(t, v.RawData(), u.RawData())

	require.ErrorIs(t, v.FillRandom(matrix.NewRNG(3), 2, 2), matrix.ErrBadRange)
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "[ 1 2.5 -3 ]", mustVector(t, 1, 2.5, -3).String())
}
