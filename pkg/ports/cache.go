package ports

import (
	"context"

	"github.com/aretw0/stepwise/pkg/schema"
)

// RunCache memoizes finished runs. Runs are deterministic, so an entry is
// only a shortcut: every entry can be recomputed from its request, and a
// cache may drop entries at any time.
type RunCache interface {
	// Get returns the steps stored under key.
	// Returns domain.ErrCacheMiss if there is no entry.
	Get(ctx context.Context, key string) ([]schema.Step, error)

	// Put stores steps under key, replacing any previous entry.
	Put(ctx context.Context, key string, steps []schema.Step) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
