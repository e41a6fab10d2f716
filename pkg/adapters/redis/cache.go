// Package redis provides a Redis-backed run cache.
//
// Entries are JSON-encoded step arrays stored under a prefixed key with an
// optional TTL. All Redis calls go through a circuit breaker so a slow or
// unreachable Redis degrades to cache misses instead of stalling runs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/schema"
)

// DefaultPrefix namespaces cache keys.
const DefaultPrefix = "stepwise:run:"

// ErrUnavailable is returned while the circuit breaker rejects calls.
var ErrUnavailable = errors.New("redis cache unavailable")

// Cache implements ports.RunCache using Redis.
type Cache struct {
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker
	bs      gobreaker.Settings
}

type Option func(*Cache)

// WithTTL sets the expiration for cached runs.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used for breaker state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithBreaker overrides the circuit breaker thresholds.
// consecutiveFailures trips the breaker; openFor is how long it stays open.
func WithBreaker(consecutiveFailures uint32, openFor time.Duration) Option {
	return func(c *Cache) {
		c.bs.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		}
		c.bs.Timeout = openFor
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
		logger: slog.New(slog.DiscardHandler),
		bs: gobreaker.Settings{
			Name:        "redis-run-cache",
			MaxRequests: 1,
			Interval:    30 * time.Second,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	c.bs.OnStateChange = func(name string, from, to gobreaker.State) {
		c.logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
	}
	// Misses are normal answers, not failures.
	c.bs.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, domain.ErrCacheMiss)
	}
	c.breaker = gobreaker.NewCircuitBreaker(c.bs)

	return c
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// do runs fn through the circuit breaker, mapping rejections to ErrUnavailable.
func (c *Cache) do(fn func() (any, error)) (any, error) {
	out, err := c.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, err
}

// Get retrieves the steps from Redis.
func (c *Cache) Get(ctx context.Context, key string) ([]schema.Step, error) {
	out, err := c.do(func() (any, error) {
		val, err := c.client.Get(ctx, c.key(key)).Bytes()
		if err != nil {
			if errors.Is(err, backend.Nil) {
				return nil, domain.ErrCacheMiss
			}
			return nil, fmt.Errorf("failed to get from redis: %w", err)
		}
		return val, nil
	})
	if err != nil {
		return nil, err
	}

	var steps []schema.Step
	if err := json.Unmarshal(out.([]byte), &steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal steps: %w", err)
	}
	return steps, nil
}

// Put stores the steps in Redis.
func (c *Cache) Put(ctx context.Context, key string, steps []schema.Step) error {
	data, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}

	_, err = c.do(func() (any, error) {
		// Use 0 for no expiration if ttl is not set.
		if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
			return nil, fmt.Errorf("failed to save to redis: %w", err)
		}
		return nil, nil
	})
	return err
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	_, err := c.do(func() (any, error) {
		return nil, c.client.Del(ctx, c.key(key)).Err()
	})
	return err
}

// Ping checks connectivity. Used by health reporting.
func (c *Cache) Ping(ctx context.Context) error {
	_, err := c.do(func() (any, error) {
		return nil, c.client.Ping(ctx).Err()
	})
	return err
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
