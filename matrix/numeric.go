// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/exp/constraints"

// absT returns |x| for any signed integer or float type.
func absT[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// withinTol reports |x-y| <= eps.
func withinTol[T constraints.Float](x, y, eps T) bool {
	return absT(x-y) <= eps
}

// isZero reports |x| <= eps.
func isZero[T constraints.Float](x, eps T) bool {
	return absT(x) <= eps
}
