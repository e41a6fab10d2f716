package stepwise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/aretw0/stepwise/internal/algorithms"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/observability"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/schema"
)

// Engine is the high-level entry point of the library.
// It implements ports.Engine and is safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	limits   schema.Limits
	cache    ports.RunCache
	locker   ports.DistributedLocker
	lockTTL  time.Duration
	metrics  *observability.Metrics
	tracer   trace.Tracer
	tp       trace.TracerProvider
	logger   *slog.Logger
}

var _ ports.Engine = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in algorithm registry.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithLimits bounds the graphs Execute accepts. The default is
// schema.DefaultLimits; a zero field lifts that limit.
func WithLimits(l schema.Limits) Option {
	return func(e *Engine) {
		e.limits = l
	}
}

// WithCache enables memoization of runs in c.
func WithCache(c ports.RunCache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithRunLock serializes cache fills for the same run across replicas.
// A caller that finds the run locked waits up to ttl for the holder's cached
// result and computes the run itself if the wait fails. It has no effect
// without a cache.
func WithRunLock(l ports.DistributedLocker, ttl time.Duration) Option {
	return func(e *Engine) {
		e.locker = l
		e.lockTTL = ttl
	}
}

// WithMetrics registers the engine collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metrics = observability.NewMetrics(reg)
	}
}

// WithTracerProvider sets the OpenTelemetry provider used for run spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.tp = tp
	}
}

// New initializes an Engine with the built-in algorithms.
func New(opts ...Option) *Engine {
	eng := &Engine{limits: schema.DefaultLimits()}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		eng.registry = algorithms.NewRegistry()
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.tracer = observability.Tracer(eng.tp)
	return eng
}

// Algorithms lists the registered algorithms sorted by name.
func (e *Engine) Algorithms() []registry.Algorithm {
	return e.registry.List()
}

// Limits returns the graph size limits enforced by Execute.
func (e *Engine) Limits() schema.Limits {
	return e.limits
}

// Execute validates req, runs the requested algorithm and returns the encoded steps.
func (e *Engine) Execute(ctx context.Context, req schema.RunRequest) (res *schema.RunResult, err error) {
	runID := uuid.NewString()
	started := time.Now()
	logger := e.logger.With("run_id", runID, "algorithm", req.Algorithm)

	metricName := req.Algorithm
	defer func() {
		outcome := observability.OutcomeOK
		steps := 0
		switch {
		case err != nil && domain.IsClientError(err):
			outcome = observability.OutcomeClientError
			logger.Warn("run rejected", "error", err)
		case err != nil:
			outcome = observability.OutcomeError
			logger.Error("run failed", "error", err)
		default:
			steps = len(res.Steps)
			logger.Info("run completed", "steps", steps, "cached", res.Cached, "duration", time.Since(started))
		}
		e.metrics.ObserveRun(metricName, outcome, steps, time.Since(started))
	}()

	// 1. Resolve the algorithm.
	alg, err := e.registry.Lookup(req.Algorithm)
	if err != nil {
		metricName = "unknown"
		return nil, err
	}

	// 2. Build and validate the graph.
	g, err := req.BuildGraph(e.limits)
	if err != nil {
		return nil, err
	}
	start := 0
	if alg.NeedsStart {
		start = req.Start()
		if err := g.CheckNode(start); err != nil {
			return nil, err
		}
	}
	logger.Debug("run started", "nodes", g.NodeCount(), "edges", len(g.Edges()), "start", start)

	ctx, span := observability.StartRun(ctx, e.tracer, runID, alg.Name, g.NodeCount(), len(g.Edges()))
	res = &schema.RunResult{RunID: runID, Algorithm: alg.Name}
	defer func() {
		if res != nil {
			observability.EndRun(span, len(res.Steps), res.Cached, err)
		} else {
			observability.EndRun(span, 0, false, err)
		}
	}()

	// 3. Serve from cache when possible.
	key := CacheKey(alg.Name, g, start)
	if steps, ok := e.lookup(ctx, logger, key); ok {
		res.Steps, res.Cached = steps, true
		return res, nil
	}

	if e.locker != nil && e.cache != nil {
		unlock, ok := e.acquire(ctx, logger, key)
		if ok {
			defer func() {
				if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
					logger.Warn("run lock release failed", "error", uerr)
				}
			}()
			// Another replica may have filled the cache while we waited.
			if steps, ok := e.lookup(ctx, logger, key); ok {
				res.Steps, res.Cached = steps, true
				return res, nil
			}
		}
	}

	// 4. Run and encode.
	seq, err := runSafely(alg.Run, g, start)
	if err != nil {
		return nil, err
	}
	res.Steps = schema.EncodeSequence(seq)

	if e.cache != nil {
		if perr := e.cache.Put(ctx, key, res.Steps); perr != nil {
			logger.Warn("run cache write failed", "error", perr)
		}
	}
	return res, nil
}

// lookup consults the cache. Cache failures are logged and treated as misses.
func (e *Engine) lookup(ctx context.Context, logger *slog.Logger, key string) ([]schema.Step, bool) {
	if e.cache == nil {
		return nil, false
	}
	steps, err := e.cache.Get(ctx, key)
	switch {
	case err == nil:
		e.metrics.ObserveCache("hit")
		return steps, true
	case errors.Is(err, domain.ErrCacheMiss):
		e.metrics.ObserveCache("miss")
	default:
		e.metrics.ObserveCache("error")
		logger.Warn("run cache read failed", "error", err)
	}
	return nil, false
}

// acquire takes the run lock for key, waiting at most lockTTL.
func (e *Engine) acquire(ctx context.Context, logger *slog.Logger, key string) (ports.UnlockFunc, bool) {
	lockCtx, cancel := context.WithTimeout(ctx, e.lockTTL)
	defer cancel()
	unlock, err := e.locker.Lock(lockCtx, key, e.lockTTL)
	if err != nil {
		logger.Warn("run lock not acquired, computing anyway", "error", err)
		return nil, false
	}
	return unlock, true
}

// runSafely converts an engine panic into an error so a single bad run
// cannot take the process down.
func runSafely(run registry.Func, g *domain.Graph, start int) (seq *domain.Sequence, err error) {
	defer func() {
		if r := recover(); r != nil {
			seq, err = nil, fmt.Errorf("algorithm panicked: %v", r)
		}
	}()
	seq, err = run(g, start)
	if err == nil && (seq == nil || seq.Len() == 0) {
		return nil, domain.ErrEmptySequence
	}
	return seq, err
}
