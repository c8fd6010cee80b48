// SPDX-License-Identifier: MIT

// Package matrix - Vector: fixed-length real vector with 1-based logical indexing.
//
// Purpose:
//   - Contiguous zero-based storage behind a thin index-shifting accessor layer.
//   - Safety at the public surface: At/Set return ErrOutOfRange instead of panicking.
//   - Element-wise kernels delegate to gonum/floats.
//
// Complexity quicksheet:
//   - NewVector: O(n) zero-init; At/Set: O(1); Add/Sub/Dot/Norm/Clone: O(n).
package matrix

import (
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxVecAt   = "At"
	ctxVecSet  = "Set"
	ctxVecAdd  = "Add"
	ctxVecSub  = "Sub"
	ctxVecDot  = "Dot"
	ctxVecFill = "FillRandom"
)

// vectorErrorf wraps err with the Vector method and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense real vector of logical length n, indexed 1..n.
// data holds n elements; logical index i lives at data[i-1].
type Vector struct {
	data []float64
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero vector of length n.
// Returns ErrBadShape when n <= 0.
//
// Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, matrixErrorf("NewVector", ErrBadShape)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// VectorFrom returns a vector holding a copy of values.
// Returns ErrBadShape when values is empty.
func VectorFrom(values []float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, matrixErrorf("VectorFrom", ErrBadShape)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Vector{data: buf}, nil
}

// newVectorUnchecked allocates a zero vector for sizes already validated.
func newVectorUnchecked(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

// Len returns the logical length n.
func (v *Vector) Len() int { return len(v.data) }

// RawData returns the zero-based backing slice. Writes are visible in v.
// Intended for kernels that shift indices themselves.
func (v *Vector) RawData() []float64 { return v.data }

// At returns v[i] for 1 <= i <= n, or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 1 || i > len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i-1], nil
}

// Set assigns v[i] = x for 1 <= i <= n, or returns ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	if i < 1 || i > len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	v.data[i-1] = x

	return nil
}

// at/set are the unchecked 1-based accessors used by in-package kernels
// after the shape has been validated once.
func (v *Vector) at(i int) float64     { return v.data[i-1] }
func (v *Vector) set(i int, x float64) { v.data[i-1] = x }

// FillRandom overwrites every element with an integer drawn from [min,max).
// Returns ErrBadRange when min >= max.
//
// Complexity: O(n).
func (v *Vector) FillRandom(rng *rand.Rand, min, max int) error {
	if err := ValidateRange(min, max); err != nil {
		return vectorErrorf(ctxVecFill, 0, err)
	}
	for i := range v.data {
		v.data[i] = randIn(rng, min, max)
	}

	return nil
}

// Norm returns the L1 norm sum_i |v_i|.
func (v *Vector) Norm() float64 {
	return floats.Norm(v.data, 1)
}

// Add returns v + w as a new vector.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	if err := ValidateSameSize(v, w); err != nil {
		return nil, vectorErrorf(ctxVecAdd, 0, err)
	}
	out := newVectorUnchecked(v.Len())
	floats.AddTo(out.data, v.data, w.data)

	return out, nil
}

// Sub returns v - w as a new vector.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	if err := ValidateSameSize(v, w); err != nil {
		return nil, vectorErrorf(ctxVecSub, 0, err)
	}
	out := newVectorUnchecked(v.Len())
	floats.SubTo(out.data, v.data, w.data)

	return out, nil
}

// Dot returns the inner product v·w.
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := ValidateSameSize(v, w); err != nil {
		return 0, vectorErrorf(ctxVecDot, 0, err)
	}

	return floats.Dot(v.data, w.data), nil
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)

	return &Vector{data: buf}
}

// String renders the vector as "[ v1 v2 ... ]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, x := range v.data {
		fmt.Fprintf(&sb, "%g ", x)
	}
	sb.WriteString("]")

	return sb.String()
}
