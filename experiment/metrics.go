// SPDX-License-Identifier: MIT

package experiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels of borderband_solve_total.
const (
	resultOK       = "ok"
	resultSingular = "singular"
	resultError    = "error"
)

// Metrics holds the harness collectors. A nil *Metrics records nothing.
type Metrics struct {
	solves    *prometheus.CounterVec
	duration  prometheus.Histogram
	resamples prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		// solves counts solver runs.
		// Labels: result (ok, singular, error)
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "borderband",
			Name:      "solve_total",
			Help:      "Total solver runs by result",
		}, []string{"result"}),

		// duration measures one elimination, excluding matrix generation.
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "borderband",
			Name:      "solve_duration_seconds",
			Help:      "Duration of one elimination in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),

		// resamples counts matrices redrawn after a singular pivot.
		resamples: f.NewCounter(prometheus.CounterOpts{
			Namespace: "borderband",
			Name:      "pivot_resamples_total",
			Help:      "Total matrices redrawn after a singular pivot",
		}),
	}
}

func (m *Metrics) observeSolve(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(result).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) observeResample() {
	if m == nil {
		return
	}
	m.resamples.Inc()
}
