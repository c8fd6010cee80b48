// SPDX-License-Identifier: MIT

// Command borderband generates, solves and benchmarks bordered band systems.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
