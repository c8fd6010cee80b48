// SPDX-License-Identifier: MIT

// Package solver solves A·x = f for a bordered band matrix A in O(n) time and
// O(1) extra memory beyond the solution vector.
//
// The elimination runs in four phases followed by back substitution:
//
//  1. Left sweep: rows 1..k-1 are normalized top-down and the sub-diagonal
//     a[2..k] is eliminated (skipped when k == 1).
//  2. Right sweep: rows k+3..n are normalized bottom-up and the
//     super-diagonal c[k+2..n-1] is eliminated (skipped when k+2 == n).
//  3. Border block: the 3x3 block at (k..k+2, k..k+2) is reduced to the
//     identity, which fixes x[k], x[k+1] and x[k+2].
//  4. Border columns: columns k and k+2 are cleared outside the block.
//
// Back substitution then walks outwards from the block: upwards through the
// remaining super-diagonal and downwards through the remaining sub-diagonal.
//
// No row interchanges are performed. A pivot with |v| < eps fails the solve
// with an error wrapping ErrSingularPivot; there is no partial result.
//
// A Solver owns clones of its inputs and is single use.
//
// Basic usage:
//
//	s, err := solver.New(m, f)
//	if err != nil { ... }
//	x, err := s.Solve()
//
// Trace runs the same elimination and reports ‖M·x_accurate − f‖₁ after each
// phase, which must stay near zero when every phase is an equivalence
// transform of the system.
package solver
