// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderband/fileio"
	"github.com/katalvlaran/borderband/matrix"
)

// Stream of the exact solution; the matrix uses the seed itself.
const solutionStream = 1

func runGenerate(cmd *cobra.Command, _ []string) error {
	m, err := matrix.NewRandomBorderedBand(genN, genK, genMin, genMax, matrix.WithSeed(seed))
	if err != nil {
		return err
	}
	x, err := matrix.NewVector(genN)
	if err != nil {
		return err
	}
	if err = x.FillRandom(matrix.DeriveRNG(seed, solutionStream), genXMin, genXMax); err != nil {
		return err
	}
	f, err := m.Multiply(x)
	if err != nil {
		return err
	}

	if err = fileio.SaveBand(genMatrix, m); err != nil {
		return err
	}
	if err = fileio.SaveVector(genRHS, f); err != nil {
		return err
	}
	if genX != "" {
		if err = fileio.SaveVector(genX, x); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s n=%d k=%d -> %s, %s\n", paint(out, goodStyle, "generated"), m.Size(), m.K(), genMatrix, genRHS)

	return nil
}
