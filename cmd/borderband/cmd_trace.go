// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderband/fileio"
	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

var phaseTitles = map[solver.Phase]string{
	solver.PhaseInitial:       "Initial system",
	solver.PhaseLeftSweep:     "Left sweep: rows above the block reduced",
	solver.PhaseRightSweep:    "Right sweep: rows below the block reduced",
	solver.PhaseBorderBlock:   "Border block reduced to the identity",
	solver.PhaseBorderColumns: "Columns k and k+2 cleared",
}

func runTrace(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}

	m, err := matrix.NewRandomBorderedBand(traceN, traceK, traceMin, traceMax, matrix.WithSeed(seed))
	if err != nil {
		return err
	}
	x, err := matrix.NewVector(traceN)
	if err != nil {
		return err
	}
	if err = x.FillRandom(matrix.DeriveRNG(seed, solutionStream), traceMin, traceMax); err != nil {
		return err
	}
	f, err := m.Multiply(x)
	if err != nil {
		return err
	}

	s, err := solver.New(m, f, solver.WithEpsilon(eps), solver.WithLogger(logger))
	if err != nil {
		return err
	}
	got, reports, err := s.Trace(x)

	out := cmd.OutOrStdout()
	for _, r := range reports {
		printPhase(out, r)
		if tracePause {
			if err := waitKey(out); err != nil {
				return err
			}
		}
	}
	if err != nil {
		fmt.Fprintln(out, paint(out, badStyle, err.Error()))
		return err
	}

	d, err := got.Sub(x)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, paint(out, headingStyle, "Solution"))
	fmt.Fprintf(out, "computed: %s\nexact:    %s\n", got, x)
	fmt.Fprintf(out, "‖x − x̂‖₁ = %.3e\n", d.Norm())

	return nil
}

func printPhase(out io.Writer, r solver.PhaseReport) {
	fmt.Fprintln(out, paint(out, headingStyle, phaseTitles[r.Phase]))
	fmt.Fprintln(out)
	fmt.Fprint(out, fileio.FormatSystem(r.Matrix, r.RHS, traceDigits))
	fmt.Fprintf(out, "\n%s %.3e\n\n", paint(out, dimStyle, "‖M·x − f‖₁ ="), r.Residual)
}

// waitKey blocks until a key is pressed. Without a terminal it returns at once.
func waitKey(out io.Writer) error {
	if !isTerminal(out) {
		return nil
	}
	fmt.Fprint(out, paint(out, dimStyle, "press any key..."))
	if _, _, err := keyboard.GetSingleKey(); err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	fmt.Fprint(out, "\r\033[K")

	return nil
}
