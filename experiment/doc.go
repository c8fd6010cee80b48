// SPDX-License-Identifier: MIT

// Package experiment measures the accuracy of the bordered band solver over
// many random systems.
//
// A trial draws an exact solution x, a random matrix M, computes f = M·x,
// solves, and records ‖x − x̂‖₁. Trials are grouped into cells (one size and
// one pivot, or a random pivot per trial) and summarized as mean and maximum
// error.
//
// Three scenarios are built in:
//
//   - mean-error: sizes 10..100000, every entry drawn from one range.
//   - every-k: sizes 3..10, every valid pivot k.
//   - dominant-band: sizes 10..100, separate ranges for a, b and c.
//
// A trial that hits a singular pivot is redrawn (new matrix, and a new pivot
// when the cell's pivot is random) up to MaxResamples times. The solver itself
// never retries.
//
// Trials of one cell run concurrently. Each trial owns a random stream derived
// from the run seed and its position, so reports do not depend on scheduling.
package experiment
