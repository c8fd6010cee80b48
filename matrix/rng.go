// SPDX-License-Identifier: MIT

// Package matrix - RNG utilities shared by random builders.
//
// Goals:
//   - Determinism: same seed => identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRNG to create independent streams for parallel trials.
package matrix

import "math/rand"

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 => DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic stream from a parent seed
// and a stream identifier. Unlike a base *rand.Rand, the parent seed is not
// consumed, so stream i is the same regardless of scheduling order.
//
// Complexity: O(1).
func DeriveRNG(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// randIn returns an integer-valued float in [min,max). Caller validates min < max.
func randIn(rng *rand.Rand, min, max int) float64 {
	return float64(min + rng.Intn(max-min))
}
