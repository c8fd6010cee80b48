// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the resolved options snapshot to matrix_test only.

// ResolvedOptions returns the tolerance and seed gatherOptions settles on.
func ResolvedOptions(opts ...Option) (eps float64, seed int64) {
	o := gatherOptions(opts...)

	return o.eps, o.seed
}
