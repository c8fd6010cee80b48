// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderband/fileio"
	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

func runSolve(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}

	m, err := fileio.LoadBand(solveMatrix, matrix.WithEpsilon(eps))
	if err != nil {
		return err
	}
	f, err := fileio.LoadVector(solveRHS)
	if err != nil {
		return err
	}
	logger.Info("system loaded", slog.Int("n", m.Size()), slog.Int("k", m.K()))

	s, err := solver.New(m, f, solver.WithEpsilon(eps), solver.WithLogger(logger))
	if err != nil {
		return err
	}
	x, err := s.Solve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solveOut == "" {
		if err = fileio.WriteVector(out, x); err != nil {
			return err
		}
	} else if err = fileio.SaveVector(solveOut, x); err != nil {
		return err
	}

	if solveCheck {
		ref, err := matrix.SolveDense(m.ToDense(), f)
		if err != nil {
			return fmt.Errorf("dense check: %w", err)
		}
		d, err := x.Sub(ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s ‖x − x_lu‖₁ = %.3e\n", paint(out, dimStyle, "check:"), d.Norm())
	}

	return nil
}
