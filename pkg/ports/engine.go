package ports

import (
	"context"

	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/schema"
)

// Engine is the primary interface used by adapters (HTTP, MCP, CLI).
// Implementations must be safe for concurrent use.
type Engine interface {
	// Execute validates req, runs the named algorithm and returns the encoded steps.
	// Client mistakes wrap domain.ErrUnknownAlgorithm, domain.ErrInvalidGraph or
	// domain.ErrNegativeWeight; any other error is an engine failure.
	Execute(ctx context.Context, req schema.RunRequest) (*schema.RunResult, error)

	// Algorithms lists the available algorithms.
	Algorithms() []registry.Algorithm

	// Limits returns the graph size limits Execute enforces.
	Limits() schema.Limits
}
