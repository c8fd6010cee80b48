// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/borderband/matrix"
	"github.com/katalvlaran/borderband/solver"
)

// randomK marks a cell whose trials draw their own pivot.
const randomK = 0

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger (nil discards).
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithMetrics sets the collectors fed by every trial.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// Runner executes a validated Config.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
}

// NewRunner validates cfg and applies opts.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg}
	for _, o := range opts {
		o(r)
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	if r.cfg.Workers == 0 {
		r.cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return r, nil
}

// Run is NewRunner(cfg, opts...).Run(ctx).
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	r, err := NewRunner(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return r.Run(ctx)
}

// cell is one (size, pivot) row of the report.
type cell struct {
	n, k int
}

func (r *Runner) cells() []cell {
	var out []cell
	for _, n := range r.cfg.Sizes {
		if r.cfg.Scenario != ScenarioEveryK {
			out = append(out, cell{n: n, k: randomK})
			continue
		}
		if n == 3 {
			out = append(out, cell{n: n, k: 1})
			continue
		}
		for k := 1; k <= n-2; k++ {
			out = append(out, cell{n: n, k: k})
		}
	}

	return out
}

// Run measures every cell in order. The first failing trial cancels the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{
		RunID:    uuid.New(),
		Scenario: r.cfg.Scenario,
		Seed:     r.cfg.Seed,
		Started:  time.Now(),
	}
	log := r.log.With(slog.String("run_id", rep.RunID.String()), slog.String("scenario", string(r.cfg.Scenario)))
	log.Info("run started", slog.Int("trials", r.cfg.Trials), slog.Int("workers", r.cfg.Workers))

	for idx, c := range r.cells() {
		row, err := r.runCell(ctx, idx, c)
		if err != nil {
			log.Error("run failed", slog.Int("n", c.n), slog.Int("k", c.k), slog.Any("err", err))
			return nil, err
		}
		log.Info("cell done",
			slog.Int("n", row.Size),
			slog.Int("k", row.K),
			slog.Float64("mean", row.Mean),
			slog.Float64("max", row.Max),
			slog.Int("resamples", row.Resamples),
		)
		rep.Rows = append(rep.Rows, row)
	}
	rep.Elapsed = time.Since(rep.Started)

	return rep, nil
}

// trialResult is what one trial contributes to its row.
type trialResult struct {
	err       float64
	resamples int
}

func (r *Runner) runCell(ctx context.Context, idx int, c cell) (Row, error) {
	results := make([]trialResult, r.cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for t := 0; t < r.cfg.Trials; t++ {
		t := t
		g.Go(func() error {
			stream := uint64(idx)<<32 | uint64(t)
			res, err := r.trial(gctx, c, matrix.DeriveRNG(r.cfg.Seed, stream))
			if err != nil {
				return fmt.Errorf("n=%d k=%d trial %d: %w", c.n, c.k, t, err)
			}
			results[t] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Row{}, err
	}

	row := Row{Size: c.n, K: c.k, Trials: r.cfg.Trials}
	var sum float64
	for _, res := range results {
		sum += res.err
		if res.err > row.Max {
			row.Max = res.err
		}
		row.Resamples += res.resamples
	}
	row.Mean = sum / float64(len(results))

	return row, nil
}

// trial draws systems until one solves or the resample budget runs out.
func (r *Runner) trial(ctx context.Context, c cell, rng *rand.Rand) (trialResult, error) {
	var res trialResult
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		m, x, f, err := r.draw(c, rng)
		if err != nil {
			return res, err
		}

		start := time.Now()
		got, err := solve(m, f, r.cfg.Epsilon)
		elapsed := time.Since(start)

		switch {
		case err == nil:
			r.metrics.observeSolve(resultOK, elapsed)
			d, err := got.Sub(x)
			if err != nil {
				return res, err
			}
			res.err = d.Norm()
			return res, nil

		case errors.Is(err, solver.ErrSingularPivot):
			r.metrics.observeSolve(resultSingular, elapsed)
			if res.resamples == r.cfg.MaxResamples {
				return res, fmt.Errorf("%w after %d redraws: %w", ErrResamplesExhausted, res.resamples, err)
			}
			res.resamples++
			r.metrics.observeResample()
			r.log.Debug("singular pivot, redrawing", slog.Int("n", c.n), slog.Int("k", m.K()), slog.Any("err", err))

		default:
			r.metrics.observeSolve(resultError, elapsed)
			return res, err
		}
	}
}

func solve(m *matrix.BorderedBand, f *matrix.Vector, eps float64) (*matrix.Vector, error) {
	s, err := solver.New(m, f, solver.WithEpsilon(eps))
	if err != nil {
		return nil, err
	}

	return s.Solve()
}

// draw builds one random system for cell c. A random-pivot cell gets a new
// pivot on every draw.
func (r *Runner) draw(c cell, rng *rand.Rand) (m *matrix.BorderedBand, x, f *matrix.Vector, err error) {
	k := c.k
	if k == randomK {
		k = matrix.KUnset
	}

	switch r.cfg.Scenario {
	case ScenarioDominantBand:
		m, err = r.drawDominant(c.n, k, rng)
	default:
		m, err = matrix.NewBorderedBand(c.n, matrix.KUnset)
		if err == nil {
			err = m.FillRandom(rng, r.cfg.Values.Min, r.cfg.Values.Max, k, true)
		}
	}
	if err != nil {
		return nil, nil, nil, err
	}

	if x, err = matrix.NewVector(c.n); err != nil {
		return nil, nil, nil, err
	}
	if err = x.FillRandom(rng, r.cfg.X.Min, r.cfg.X.Max); err != nil {
		return nil, nil, nil, err
	}
	if f, err = m.Multiply(x); err != nil {
		return nil, nil, nil, err
	}

	return m, x, f, nil
}

func (r *Runner) drawDominant(n, k int, rng *rand.Rand) (*matrix.BorderedBand, error) {
	band := r.cfg.Band
	vecs := make([]*matrix.Vector, 3)
	for i, rg := range []Range{band.A, band.B, band.C} {
		v, err := matrix.NewVector(n)
		if err != nil {
			return nil, err
		}
		if err = v.FillRandom(rng, rg.Min, rg.Max); err != nil {
			return nil, err
		}
		vecs[i] = v
	}
	// a[1] and c[n] lie outside the matrix.
	_ = vecs[0].Set(1, 0)
	_ = vecs[2].Set(n, 0)

	return matrix.NewBorderedBandFromBand(vecs[0], vecs[1], vecs[2], k, r.cfg.Values.Min, r.cfg.Values.Max,
		matrix.WithSeed(rng.Int63()))
}
