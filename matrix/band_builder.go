// SPDX-License-Identifier: MIT

// Package matrix - constructive random builder for BorderedBand.
//
// Order matters: later stages read values written by earlier ones.
//   - Stage 1: choose k.
//   - Stage 2: band a, b, c (optional).
//   - Stage 3: border cells aliased to the band (copied, never drawn).
//   - Stage 4: independent border cells (drawn).
package matrix

import "math/rand"

// FillRandom fills m with integers from [min,max).
//
// Behavior highlights:
//   - k outside [1, n-2] (including KUnset) => k drawn uniformly from [1, n-2].
//   - generateBand=false keeps the current a, b, c and only builds p, q.
//   - Row 1 has no a term and row n has no c term.
//   - n == 3 yields a fully dense 3x3 matrix with k = 1.
//
// Errors: ErrBadRange when min >= max.
//
// Complexity: O(n).
func (m *BorderedBand) FillRandom(rng *rand.Rand, min, max, k int, generateBand bool) error {
	if err := ValidateRange(min, max); err != nil {
		return bandErrorf("FillRandom", err)
	}

	// Stage 1: pivot.
	m.k = m.choosePivot(rng, k)

	// Stage 2: band.
	if generateBand {
		m.fillBand(rng, min, max)
	}

	// Stage 3: aliased border cells follow the band.
	m.syncTies()

	// Stage 4: free border cells.
	m.fillFreeBorder(rng, min, max)

	return nil
}

// choosePivot returns k when valid, otherwise a uniform draw from [1, n-2].
func (m *BorderedBand) choosePivot(rng *rand.Rand, k int) int {
	if m.n == minBandSize {
		return 1
	}
	if k >= 1 && k <= m.n-2 {
		return k
	}

	return 1 + rng.Intn(m.n-2)
}

// fillBand draws a[2..n], b[1..n], c[1..n-1] and clears the unused a[1], c[n].
func (m *BorderedBand) fillBand(rng *rand.Rand, min, max int) {
	n := m.n
	m.a.set(1, 0)
	m.b.set(1, randIn(rng, min, max))
	m.c.set(1, randIn(rng, min, max))
	for i := 2; i <= n-1; i++ {
		m.a.set(i, randIn(rng, min, max))
		m.b.set(i, randIn(rng, min, max))
		m.c.set(i, randIn(rng, min, max))
	}
	m.a.set(n, randIn(rng, min, max))
	m.b.set(n, randIn(rng, min, max))
	m.c.set(n, 0)
}

// fillFreeBorder draws every border cell that is not tied to the band and
// clears the rows of p, q that the border block leaves unused.
func (m *BorderedBand) fillFreeBorder(rng *rand.Rand, min, max int) {
	n, k := m.n, m.k

	// Inner 3x3 block: p[k+2] and q[k] are off-band.
	m.p.set(k+2, randIn(rng, min, max))
	m.q.set(k, randIn(rng, min, max))

	if n == minBandSize {
		return
	}

	// Rows strictly above and below the border block.
	for i := 1; i <= k-2; i++ {
		m.p.set(i, randIn(rng, min, max))
		m.q.set(i, randIn(rng, min, max))
	}
	for i := k + 4; i <= n; i++ {
		m.p.set(i, randIn(rng, min, max))
		m.q.set(i, randIn(rng, min, max))
	}

	// Edge rows of the block: q[k-1] exists when k > 1, p[k+3] when k+2 < n.
	if k > 1 {
		m.q.set(k-1, randIn(rng, min, max))
	}
	if k+2 < n {
		m.p.set(k+3, randIn(rng, min, max))
	}
}

// NewRandomBorderedBand allocates an n×n matrix and fills it at random from
// [min,max). k == KUnset draws the pivot. The stream is seeded from opts.
func NewRandomBorderedBand(n, k, min, max int, opts ...Option) (*BorderedBand, error) {
	m, err := NewBorderedBand(n, KUnset)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if err = m.FillRandom(NewRNG(o.seed), min, max, k, true); err != nil {
		return nil, err
	}

	return m, nil
}
