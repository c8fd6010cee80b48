// SPDX-License-Identifier: MIT

// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for bordered band kernels.
//   • Keep all data integer-valued so products compare exactly.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/borderband/matrix"
)

// Value range used by random fixtures.
const (
	fixtureMin = -10
	fixtureMax = 10
)

// mustBand builds a seeded random n×n bordered band matrix with pivot k
// or fails the test.
func mustBand(tb testing.TB, n, k int, seed int64) *matrix.BorderedBand {
	tb.Helper()
	m, err := matrix.NewRandomBorderedBand(n, k, fixtureMin, fixtureMax, matrix.WithSeed(seed))
	if err != nil {
		tb.Fatalf("NewRandomBorderedBand(%d,%d): %v", n, k, err)
	}

	return m
}

// mustVector wraps matrix.VectorFrom or fails the test.
func mustVector(tb testing.TB, values ...float64) *matrix.Vector {
	tb.Helper()
	v, err := matrix.VectorFrom(values)
	if err != nil {
		tb.Fatalf("VectorFrom(%v): %v", values, err)
	}

	return v
}

// mustDense ALLOCATES an r×c *Dense and copies rows into it or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	if err != nil {
		tb.Fatalf("NewDense: %v", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// sequence returns the vector [1, 2, ..., n].
func sequence(tb testing.TB, n int) *matrix.Vector {
	tb.Helper()
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i + 1)
	}

	return mustVector(tb, vals...)
}

// allPivots enumerates every valid k for size n.
func allPivots(n int) []int {
	if n == 3 {
		return []int{1}
	}
	ks := make([]int, 0, n-2)
	for k := 1; k <= n-2; k++ {
		ks = append(ks, k)
	}

	return ks
}
