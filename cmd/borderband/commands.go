// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderband/matrix"
)

// --- Global Command Variables ---
var (
	logLevel string
	seed     int64
	eps      float64

	// generate
	genN, genK        int
	genMin, genMax    int
	genXMin, genXMax  int
	genMatrix, genRHS string
	genX              string

	// solve
	solveMatrix, solveRHS string
	solveOut              string
	solveCheck            bool

	// trace
	traceN, traceK     int
	traceMin, traceMax int
	traceDigits        int
	tracePause         bool

	// bench
	benchConfig      string
	benchScenario    string
	benchSizes       []int
	benchTrials      int
	benchWorkers     int
	benchMetricsAddr string

	rootCmd = &cobra.Command{
		Use:           "borderband",
		Short:         "Solve linear systems with a bordered tridiagonal matrix in O(n)",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
				return fmt.Errorf("--eps must be finite and non-negative, got %g", eps)
			}
			return nil
		},
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write a random matrix, an exact solution and its right-hand side",
		RunE:  runGenerate, // Defined in cmd_generate.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve the system stored in a matrix file and a vector file",
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	traceCmd = &cobra.Command{
		Use:   "trace",
		Short: "Solve a small random system step by step, printing every phase",
		RunE:  runTrace, // Defined in cmd_trace.go
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Measure mean and maximum solution error over many random systems",
		RunE:  runBench, // Defined in cmd_bench.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", matrix.DefaultSeed, "Seed of every random draw")
	rootCmd.PersistentFlags().Float64Var(&eps, "eps", matrix.DefaultEpsilon, "Absolute singular-pivot and structure tolerance")

	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genN, "n", 10, "Matrix order (>= 3)")
	generateCmd.Flags().IntVar(&genK, "k", matrix.KUnset, "Border pivot in [1, n-2]; -1 draws one")
	generateCmd.Flags().IntVar(&genMin, "min", 1, "Smallest matrix entry (inclusive)")
	generateCmd.Flags().IntVar(&genMax, "max", 10, "Largest matrix entry (exclusive)")
	generateCmd.Flags().IntVar(&genXMin, "xmin", 1, "Smallest solution entry (inclusive)")
	generateCmd.Flags().IntVar(&genXMax, "xmax", 10, "Largest solution entry (exclusive)")
	generateCmd.Flags().StringVar(&genMatrix, "matrix", "", "Output matrix file")
	generateCmd.Flags().StringVar(&genRHS, "rhs", "", "Output right-hand side file")
	generateCmd.Flags().StringVar(&genX, "x", "", "Optional output file for the exact solution")
	_ = generateCmd.MarkFlagRequired("matrix")
	_ = generateCmd.MarkFlagRequired("rhs")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveMatrix, "matrix", "", "Input matrix file")
	solveCmd.Flags().StringVar(&solveRHS, "rhs", "", "Input right-hand side file")
	solveCmd.Flags().StringVar(&solveOut, "out", "", "Output file for x (stdout when empty)")
	solveCmd.Flags().BoolVar(&solveCheck, "check", false, "Compare with a dense LU solve")
	_ = solveCmd.MarkFlagRequired("matrix")
	_ = solveCmd.MarkFlagRequired("rhs")

	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().IntVar(&traceN, "n", 6, "Matrix order (>= 3)")
	traceCmd.Flags().IntVar(&traceK, "k", matrix.KUnset, "Border pivot in [1, n-2]; -1 draws one")
	traceCmd.Flags().IntVar(&traceMin, "min", 1, "Smallest entry (inclusive)")
	traceCmd.Flags().IntVar(&traceMax, "max", 9, "Largest entry (exclusive)")
	traceCmd.Flags().IntVar(&traceDigits, "digits", 2, "Fraction digits in printed systems")
	traceCmd.Flags().BoolVar(&tracePause, "pause", false, "Wait for a key press after every phase")

	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchConfig, "config", "", "YAML run configuration")
	benchCmd.Flags().StringVar(&benchScenario, "scenario", "mean-error", "Scenario: mean-error, every-k or dominant-band")
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "Override the scenario sizes")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 0, "Trials per cell (0 keeps the default)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "Concurrent trials (0 means GOMAXPROCS)")
	benchCmd.Flags().StringVar(&benchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	benchCmd.MarkFlagsMutuallyExclusive("config", "scenario")
}
