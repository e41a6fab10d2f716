package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/schema"
)

// DefaultMaxEntries bounds the cache when no explicit limit is given.
const DefaultMaxEntries = 256

// Cache implements ports.RunCache in memory.
// Safe for concurrent use. When full, the oldest inserted entry is evicted.
type Cache struct {
	mu      sync.RWMutex
	data    map[string]entry
	order   []string
	max     int
	ttl     time.Duration
	nowFunc func() time.Time
}

type entry struct {
	steps   []schema.Step
	expires time.Time // zero means no expiration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long entries stay valid. Zero disables expiration.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithMaxEntries bounds the number of entries. Values below 1 are ignored.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.max = n
		}
	}
}

// NewCache creates a new in-memory run cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data:    make(map[string]entry),
		max:     DefaultMaxEntries,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the steps stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]schema.Step, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok || (!e.expires.IsZero() && c.nowFunc().After(e.expires)) {
		return nil, domain.ErrCacheMiss
	}
	return copySteps(e.steps), nil
}

// Put stores a copy of steps under key.
func (c *Cache) Put(ctx context.Context, key string, steps []schema.Step) error {
	e := entry{steps: copySteps(steps)}
	if c.ttl > 0 {
		e.expires = c.nowFunc().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = e

	for len(c.data) > c.max && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.data, oldest)
	}
	return nil
}

// Delete removes the entry for key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; !ok {
		return nil
	}
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// copySteps deep-copies steps so neither the caller nor the cache can
// mutate the other's maps.
func copySteps(in []schema.Step) []schema.Step {
	out := make([]schema.Step, len(in))
	for i, s := range in {
		cp := schema.Step{
			Nodes:   make(map[string]schema.NodeView, len(s.Nodes)),
			Edges:   make(map[string]schema.EdgeView, len(s.Edges)),
			Message: s.Message,
		}
		for k, v := range s.Nodes {
			cp.Nodes[k] = v
		}
		for k, v := range s.Edges {
			cp.Edges[k] = v
		}
		out[i] = cp
	}
	return out
}
