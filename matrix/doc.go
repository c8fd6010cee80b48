// SPDX-License-Identifier: MIT

// Package matrix provides the storage types for bordered band linear systems.
//
// A bordered band matrix of order n with pivot k (1 <= k <= n-2) has non-zero
// entries only on the three central diagonals and in the two border columns k
// and k+2. It is stored in five length-n vectors instead of n^2 cells:
//
//	a  sub-diagonal    (i, i-1)
//	b  main diagonal   (i, i)
//	c  super-diagonal  (i, i+1)
//	p  border column   (i, k)
//	q  border column   (i, k+2)
//
// Six cells inside rows k-1..k+3 belong to both the band and a border column.
// They are kept identical under both roles (see Tie and SetTied).
//
// The package provides:
//
//   - Vector: 1-based real vector with L1 norm and element-wise kernels.
//   - BorderedBand: compact storage, Element, O(n) Multiply, random builder.
//   - Dense: small 0-based reference matrix used by loaders, printers and tests.
//   - SolveDense: general LU solve through gonum, used as an oracle.
//   - Options (WithEpsilon, WithSeed) and deterministic RNG helpers.
//
// Every fallible operation returns a sentinel error from errors.go wrapped
// with a call-site tag; match with errors.Is.
//
// The elimination solver itself lives in package solver.
package matrix
