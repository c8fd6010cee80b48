// SPDX-License-Identifier: MIT

// Package matrix - general dense reference solver backed by gonum LU.
//
// SolveDense ignores the bordered band structure entirely and runs a partial
// pivoting LU factorization. It is the correctness oracle for the structured
// solver and for the CLI --check flag.
package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveDense solves d·x = f with gonum's LU decomposition.
//
// Errors:
//   - ErrNilMatrix for nil inputs.
//   - ErrBadShape for a non-square d.
//   - ErrDimensionMismatch when f.Len() != d.Rows().
//   - ErrSingular when the factorization is exactly singular.
//
// An ill-conditioned but non-singular system still returns its solution.
//
// Complexity: O(n^3).
func SolveDense(d *Dense, f *Vector) (*Vector, error) {
	if d == nil || f == nil {
		return nil, matrixErrorf("SolveDense", ErrNilMatrix)
	}
	if d.r != d.c {
		return nil, matrixErrorf("SolveDense", ErrBadShape)
	}
	if f.Len() != d.r {
		return nil, matrixErrorf("SolveDense", ErrDimensionMismatch)
	}

	a := mat.NewDense(d.r, d.c, append([]float64(nil), d.data...))
	b := mat.NewVecDense(f.Len(), append([]float64(nil), f.data...))

	var lu mat.LU
	lu.Factorize(a)
	if lu.Det() == 0 {
		return nil, matrixErrorf("SolveDense", ErrSingular)
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, matrixErrorf("SolveDense", ErrSingular)
		}
	}

	out := newVectorUnchecked(d.r)
	for i := 0; i < d.r; i++ {
		out.data[i] = x.AtVec(i)
	}

	return out, nil
}
