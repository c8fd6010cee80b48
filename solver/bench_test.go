// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

var sinkX *matrix.Vector

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, _, f := dominantSystem(b, n, n/2, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := solver.New(m, f)
				if err != nil {
					b.Fatal(err)
				}
				x, err := s.Solve()
				if err != nil {
					b.Fatal(err)
				}
				sinkX = x
			}
		})
	}
}

// BenchmarkSolveDense is the O(n^3) baseline for small sizes.
func BenchmarkSolveDense(b *testing.B) {
	for _, n := range []int{64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m, _, f := dominantSystem(b, n, n/2, 1)
			d := m.ToDense()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.SolveDense(d, f)
				if err != nil {
					b.Fatal(err)
				}
				sinkX = x
			}
		})
	}
}
