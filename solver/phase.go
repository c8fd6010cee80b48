// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/borderband/matrix"
)

// Phase names one stage of the elimination.
type Phase int

const (
	PhaseInitial Phase = iota // untouched system, reported by Trace only
	PhaseLeftSweep
	PhaseRightSweep
	PhaseBorderBlock
	PhaseBorderColumns
	PhaseBackSubstitution
)

var phaseNames = [...]string{
	"initial",
	"left-sweep",
	"right-sweep",
	"border-block",
	"border-columns",
	"back-substitution",
}

func (p Phase) String() string {
	if p < PhaseInitial || p > PhaseBackSubstitution {
		return fmt.Sprintf("Phase(%d)", int(p))
	}

	return phaseNames[p]
}

// PhaseReport is a snapshot of the system after one phase.
type PhaseReport struct {
	Phase Phase
	// Residual is ‖M·x_accurate − f‖₁ for the current system; NaN outside Trace.
	Residual float64
	// Matrix and RHS are clones; later phases do not modify them.
	Matrix *matrix.BorderedBand
	RHS    *matrix.Vector
}
