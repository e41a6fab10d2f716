package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/internal/config"
	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/pkg/adapters/memory"
	"github.com/aretw0/stepwise/pkg/adapters/redis"
	"github.com/aretw0/stepwise/pkg/schema"
)

// Runtime bundles an engine with the resources created for it.
type Runtime struct {
	Engine *stepwise.Engine
	// Metrics is nil when metrics are disabled.
	Metrics *prometheus.Registry
	Logger  *slog.Logger

	closers []func() error
}

// Close releases the cache connections.
func (r *Runtime) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// CreateLogger configures the application logger from cfg.
// levelOverride, when set, wins over the configured level.
func CreateLogger(cfg config.LogConfig, levelOverride string) (*slog.Logger, error) {
	lvl := cfg.Level
	if levelOverride != "" {
		lvl = levelOverride
	}
	level, err := logging.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	return logging.New(level, logging.Format(cfg.Format)), nil
}

// NewRuntime initializes an engine with the configured cache and metrics.
func NewRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{Logger: logger}
	opts := []stepwise.Option{
		stepwise.WithLogger(logger),
		stepwise.WithLimits(schema.Limits{MaxNodes: cfg.Limits.MaxNodes, MaxEdges: cfg.Limits.MaxEdges}),
	}

	// 1. Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rt.Metrics = reg
		opts = append(opts, stepwise.WithMetrics(reg))
	}

	// 2. Cache
	switch cfg.Cache.Backend {
	case config.CacheNone:
	case config.CacheMemory:
		opts = append(opts, stepwise.WithCache(memory.NewCache(
			memory.WithTTL(cfg.Cache.TTL),
			memory.WithMaxEntries(cfg.Cache.MaxEntries),
		)))
	case config.CacheRedis:
		rc := cfg.Cache.Redis
		cache := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithTTL(cfg.Cache.TTL),
			redis.WithPrefix(rc.Prefix),
			redis.WithLogger(logger),
		)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			logger.Warn("redis cache unreachable at startup", "addr", rc.Addr, "error", err)
		}
		rt.closers = append(rt.closers, cache.Close)
		opts = append(opts, stepwise.WithCache(cache))
		if rc.LockTimeout > 0 {
			opts = append(opts, stepwise.WithRunLock(cache.Locker(), rc.LockTimeout))
		}
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	rt.Engine = stepwise.New(opts...)
	logger.Debug("engine ready", "cache", cfg.Cache.Backend, "metrics", cfg.Metrics.Enabled)
	return rt, nil
}
