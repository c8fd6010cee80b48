// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and random
// construction. This file defines:
//   - Option and the internal options snapshot,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based seeds.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used for structural checks
	// (alias ties, zero pattern) and by the solver as the singular-pivot bound.
	// It is NOT scaled by coefficient magnitude.
	DefaultEpsilon = 1e-8

	// DefaultSeed is the seed used when callers pass seed == 0.
	DefaultSeed int64 = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Public entry points accept ...Option.
type options struct {
	eps  float64 // >= 0; DefaultEpsilon
	seed int64   // DefaultSeed when 0
}

// WithEpsilon sets the absolute tolerance.
// Panics when eps is negative, NaN or ±Inf.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithSeed fixes the seed of the random stream used by builders.
// seed == 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins)
// and normalizes the seed.
func gatherOptions(user ...Option) options {
	o := options{
		eps:  DefaultEpsilon,
		seed: DefaultSeed,
	}
	for _, set := range user {
		set(&o)
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}

	return o
}
