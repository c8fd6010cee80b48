// SPDX-License-Identifier: MIT

// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating size/pivot/range checks here.
//  - Return tagged sentinel errors so callers match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

// validatorErrorf is kept separate from matrixErrorf so validator failures
// are labeled by the validator name, not by the calling kernel.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNilVector ensures v is non-nil.
func ValidateNotNilVector(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateNotNilVector", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures x and y are non-nil and have equal length.
// Complexity: O(1).
func ValidateSameSize(x, y *Vector) error {
	if x == nil || y == nil {
		return validatorErrorf("ValidateSameSize", ErrNilMatrix)
	}
	if x.Len() != y.Len() {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBandSize ensures n is large enough to host a 3x3 border block.
func ValidateBandSize(n int) error {
	if n < minBandSize {
		return validatorErrorf("ValidateBandSize", ErrBadShape)
	}

	return nil
}

// ValidatePivot ensures 1 <= k <= n-2.
func ValidatePivot(n, k int) error {
	if k < 1 || k > n-2 {
		return validatorErrorf("ValidatePivot", ErrBadPivot)
	}

	return nil
}

// ValidateRange ensures the half-open integer range [min,max) is non-empty.
func ValidateRange(min, max int) error {
	if min >= max {
		return validatorErrorf("ValidateRange", ErrBadRange)
	}

	return nil
}
