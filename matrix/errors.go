// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public operation
// returns one of these (optionally wrapped with a call-site tag) and tests
// match them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for nonsensical Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so logs stay greppable.
// Call sites wrap with fmt.Errorf("<Type>.<Method>(...): %w", ErrX) and
// callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested size is too small for the
	// structure (vectors need n >= 1, bordered band matrices need n >= 3).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrBadPivot signals a border pivot k outside [1, n-2].
	ErrBadPivot = errors.New("matrix: border pivot k out of range")

	// ErrOutOfRange indicates a logical index outside [1,n] (or [1,n]x[1,n]).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of unequal size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadRange signals an empty random range (min >= max).
	ErrBadRange = errors.New("matrix: empty value range")

	// ErrAliasBroken signals that a cell stored under both a band role and a
	// border role holds two different values.
	ErrAliasBroken = errors.New("matrix: band/border alias mismatch")

	// ErrStructure signals a dense matrix with non-zero entries outside the
	// bordered band pattern.
	ErrStructure = errors.New("matrix: entry outside bordered band pattern")

	// ErrSingular is returned by the dense reference solver for a singular input.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil matrix or vector was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with a call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
