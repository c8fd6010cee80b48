// SPDX-License-Identifier: MIT

package experiment

import "errors"

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrResamplesExhausted is returned when a trial keeps drawing matrices
	// with a singular pivot.
	ErrResamplesExhausted = errors.New("experiment: resample limit reached")
)
