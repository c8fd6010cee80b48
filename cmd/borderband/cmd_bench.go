// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/borderband/experiment"
)

// benchConfigFromFlags resolves --config or --scenario plus overrides.
func benchConfigFromFlags(cmd *cobra.Command) (experiment.Config, error) {
	var cfg experiment.Config
	if benchConfig != "" {
		c, err := experiment.LoadConfig(benchConfig)
		if err != nil {
			return cfg, err
		}
		cfg = c
	} else {
		cfg = experiment.DefaultConfig(experiment.Scenario(benchScenario))
	}

	if cmd.Flags().Changed("sizes") {
		cfg.Sizes = benchSizes
	}
	if benchTrials > 0 {
		cfg.Trials = benchTrials
	}
	if benchWorkers > 0 {
		cfg.Workers = benchWorkers
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("eps") {
		cfg.Epsilon = eps
	}

	return cfg, cfg.Validate()
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}
	cfg, err := benchConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := experiment.NewMetrics(reg)

	var srv *http.Server
	if benchMetricsAddr != "" {
		srv = &http.Server{
			Addr:              benchMetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", slog.Any("err", err))
			}
		}()
		logger.Info("serving metrics", slog.String("addr", benchMetricsAddr))
	}

	rep, err := experiment.Run(ctx, cfg, experiment.WithLogger(logger), experiment.WithMetrics(metrics))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s (seed %d, run %s, %s)\n\n",
		paint(out, headingStyle, "scenario"), rep.Scenario, rep.Seed, rep.RunID, rep.Elapsed.Round(time.Millisecond))
	table := rep.Table()
	if header, rest, ok := strings.Cut(table, "\n"); ok {
		fmt.Fprintln(out, paint(out, headingStyle, header))
		fmt.Fprint(out, rest)
	}

	if srv != nil {
		logger.Warn("run finished, metrics stay available until interrupted", slog.String("addr", benchMetricsAddr))
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}

	return nil
}
