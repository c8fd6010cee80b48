// SPDX-License-Identifier: MIT

// Package fileio reads, writes and pretty-prints bordered band systems.
//
// Matrix file:
//
//	<n> <k>
//	<row 1: n whitespace-separated numbers>
//	...
//	<row n>
//
// Vector file:
//
//	<n>
//	<n whitespace-separated numbers>
//
// Blank lines are ignored. A matrix is accepted only if every entry outside
// the band and the border columns k, k+2 is zero (within the tolerance from
// matrix.WithEpsilon). Parse failures wrap ErrParse and name the line.
package fileio
