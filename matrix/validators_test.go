// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameSize covers nil inputs, matching and mismatched lengths.
func TestValidateSameSize(t *testing.T) {
	t.Parallel()

	v3 := mustVector(t, 1, 2, 3)
	w3 := mustVector(t, 4, 5, 6)
	v2 := mustVector(t, 1, 2)

	tests := []struct {
		name    string
		x, y    *matrix.Vector
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, v3, matrix.ErrNilMatrix},
		{"second nil", v3, nil, matrix.ErrNilMatrix},
		{"equal", v3, w3, nil},
		{"mismatch", v3, v2, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameSize(tc.x, tc.y)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidatePivot covers both ends of [1, n-2].
func TestValidatePivot(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidatePivot(6, 0), matrix.ErrBadPivot)  // below
	require.NoError(t, matrix.ValidatePivot(6, 1))                      // first
	require.NoError(t, matrix.ValidatePivot(6, 4))                      // last
	require.ErrorIs(t, matrix.ValidatePivot(6, 5), matrix.ErrBadPivot)  // above
	require.ErrorIs(t, matrix.ValidatePivot(6, -1), matrix.ErrBadPivot) // KUnset
}

// TestValidateBandSize_And_Range covers the remaining scalar validators.
func TestValidateBandSize_And_Range(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateBandSize(2), matrix.ErrBadShape)
	require.NoError(t, matrix.ValidateBandSize(3))
	require.ErrorIs(t, matrix.ValidateRange(5, 5), matrix.ErrBadRange)
	require.ErrorIs(t, matrix.ValidateRange(6, 5), matrix.ErrBadRange)
	require.NoError(t, matrix.ValidateRange(-1, 1))
	require.ErrorIs(t, matrix.ValidateNotNilVector(nil), matrix.ErrNilMatrix)
}
