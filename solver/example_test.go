// SPDX-License-Identifier: MIT

package solver_test

import (
	"fmt"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

// ExampleSolver_Solve solves a fully dense 3x3 system (n = 3 forces k = 1).
func ExampleSolver_Solve() {
	d, _ := matrix.NewDense(3, 3)
	for i, row := range [][]float64{{2, 1, 0}, {1, 3, 1}, {0, 1, 2}} {
		for j, v := range row {
			_ = d.Set(i, j, v)
		}
	}
	m, _ := matrix.FromDense(d, 1)
	f, _ := matrix.VectorFrom([]float64{4, 10, 8})

	s, err := solver.New(m, f)
	if err != nil {
		fmt.Println(err)
		return
	}
	x, err := s.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 1; i <= x.Len(); i++ {
		v, _ := x.At(i)
		fmt.Printf("x%d = %.6f\n", i, v)
	}
	// Output:
	// x1 = 1.000000
	// x2 = 2.000000
	// x3 = 3.000000
}

// ExampleSolver_Trace prints the residual after every phase.
func ExampleSolver_Trace() {
	m, _ := matrix.NewRandomBorderedBand(8, 3, 1, 10, matrix.WithSeed(4))
	// lift the diagonal so every pivot stays far from zero
	for i := 1; i <= m.Size(); i++ {
		if i == m.K() {
			_ = m.SetTied(matrix.TieBP, 100)
			continue
		}
		if i == m.K()+2 {
			_ = m.SetTied(matrix.TieBQ, 100)
			continue
		}
		_ = m.B().Set(i, 100)
	}
	x, _ := matrix.VectorFrom([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	f, _ := m.Multiply(x)

	s, _ := solver.New(m, f)
	_, reports, err := s.Trace(x)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range reports {
		fmt.Printf("%-15s residual < 1e-9: %v\n", r.Phase, r.Residual < 1e-9)
	}
	// Output:
	// initial         residual < 1e-9: true
	// left-sweep      residual < 1e-9: true
	// right-sweep     residual < 1e-9: true
	// border-block    residual < 1e-9: true
	// border-columns  residual < 1e-9: true
}
