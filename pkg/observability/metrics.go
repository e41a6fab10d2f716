package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for run counters.
const (
	OutcomeOK          = "ok"
	OutcomeClientError = "client_error"
	OutcomeError       = "error"
)

// Metrics groups the collectors of the step engine.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Steps       *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
	CacheLookup *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_runs_total",
				Help: "Total number of algorithm runs by outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepwise_run_steps",
				Help:    "Number of steps recorded per run",
				Buckets: prometheus.ExponentialBuckets(2, 2, 12),
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "stepwise_run_duration_seconds",
				Help: "Duration of algorithm runs, cache hits included",
			},
			[]string{"algorithm"},
		),
		CacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepwise_cache_lookups_total",
				Help: "Run cache lookups by result",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.Duration, m.CacheLookup)
	}
	return m
}

// ObserveRun records one finished run. Safe on a nil receiver.
func (m *Metrics) ObserveRun(algorithm, outcome string, steps int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(algorithm, outcome).Inc()
	if outcome == OutcomeOK {
		m.Steps.WithLabelValues(algorithm).Observe(float64(steps))
	}
	m.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveCache records a cache lookup result: "hit", "miss" or "error".
// Safe on a nil receiver.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookup.WithLabelValues(result).Inc()
}
