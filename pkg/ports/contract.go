package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRunCacheContract runs a suite of tests to verify that a RunCache implementation
// adheres to the defined interface contract.
func RunRunCacheContract(t *testing.T, cache RunCache) {
	ctx := context.Background()
	key := "contract-test-run-" + time.Now().Format("20060102150405")

	steps := []schema.Step{
		{
			Nodes:   map[string]schema.NodeView{"0": {Color: "#f59e0b", Text: "0"}, "1": {Color: "#60a5fa", Text: "∞"}},
			Edges:   map[string]schema.EdgeView{"0-1": {Color: "#94a3b8", Width: 3}},
			Message: "Starting Dijkstra's Algorithm from node A.",
		},
		{
			Nodes:   map[string]schema.NodeView{"0": {Color: "#4f46e5", Text: "0"}, "1": {Color: "#60a5fa", Text: "∞"}},
			Edges:   map[string]schema.EdgeView{"0-1": {Color: "#facc15", Width: 3}},
			Message: "Visiting node A. Current distance: 0.",
		},
	}

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, steps), "Put should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, steps, got)
	})

	t.Run("Get Returns Independent Copy", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, steps))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		got[0].Nodes["0"] = schema.NodeView{Color: "#000000"}
		got[1].Message = "mutated"

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, steps, again)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Put Replaces", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, steps))
		require.NoError(t, cache.Put(ctx, key, steps[:1]))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, steps))
		require.NoError(t, cache.Delete(ctx, key), "Delete should not return error")

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should return ErrCacheMiss")

		assert.NoError(t, cache.Delete(ctx, key), "Deleting twice is not an error")
	})
}
