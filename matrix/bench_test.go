// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the bordered band kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/borderband/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 1024, 8192}

// sinks to defeat dead-code elimination
var (
	sinkV *matrix.Vector
	sinkB *matrix.BorderedBand
)

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustBand(b, n, n/2, 1337)
			x := sequence(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := m.Multiply(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkMultiplyDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustBand(b, n, n/2, 1337)
			x := sequence(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := m.MultiplyDense(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkNewRandomBorderedBand(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkB = mustBand(b, n, matrix.KUnset, int64(i+1))
			}
		})
	}
}
