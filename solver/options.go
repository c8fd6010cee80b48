// SPDX-License-Identifier: MIT

// Package solver: functional configuration.
package solver

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/borderband/matrix"
)

const panicEpsilonInvalid = "solver: WithEpsilon: eps must be finite, non-negative"

// Option configures a Solver.
type Option func(*options)

type options struct {
	eps      float64
	logger   *slog.Logger
	observer func(PhaseReport)
}

// WithEpsilon sets the absolute singular-pivot bound (default matrix.DefaultEpsilon).
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithLogger routes per-phase debug records to l. nil discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver registers fn to receive a PhaseReport after every phase.
// Reports from Solve carry a NaN residual; Trace fills it in.
func WithObserver(fn func(PhaseReport)) Option {
	return func(o *options) { o.observer = fn }
}

func gatherOptions(user ...Option) options {
	o := options{eps: matrix.DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
