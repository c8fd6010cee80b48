// SPDX-License-Identifier: MIT

// Package solver: sentinel error set.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil matrix or right-hand side.
	ErrNilInput = errors.New("solver: nil input")

	// ErrDimensionMismatch indicates that the right-hand side length differs
	// from the matrix order.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrUnsetPivot indicates a matrix whose border pivot k was never chosen.
	ErrUnsetPivot = errors.New("solver: border pivot not set")

	// ErrSingularPivot is returned when an elimination pivot falls below eps.
	ErrSingularPivot = errors.New("solver: singular pivot")

	// ErrAlreadySolved is returned by a second Solve or Trace on one Solver.
	ErrAlreadySolved = errors.New("solver: system already solved")
)

// PivotError describes the pivot that stopped the elimination.
// It matches ErrSingularPivot through errors.Is.
type PivotError struct {
	Phase Phase
	Row   int
	Value float64
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("%s: phase %s, row %d, pivot %g", ErrSingularPivot, e.Phase, e.Row, e.Value)
}

// Unwrap exposes ErrSingularPivot.
func (e *PivotError) Unwrap() error { return ErrSingularPivot }

// solverErrorf wraps err with the Solver method context.
func solverErrorf(method string, err error) error {
	return fmt.Errorf("Solver.%s: %w", method, err)
}
