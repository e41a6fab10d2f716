package domain

import "errors"

// ErrUnknownAlgorithm is returned when a run names an algorithm that is not registered.
var ErrUnknownAlgorithm = errors.New("algorithm not found")

// ErrInvalidGraph is returned when a graph or run request is malformed:
// no nodes, edge endpoints out of range, non-finite weights or a bad start node.
var ErrInvalidGraph = errors.New("invalid graph")

// ErrNegativeWeight is returned by algorithms that require non-negative edge weights.
var ErrNegativeWeight = errors.New("negative edge weight")

// ErrEmptySequence is returned when the last snapshot of an empty sequence is requested.
// Engines always seed the sequence first, so seeing this is a programming defect.
var ErrEmptySequence = errors.New("empty step sequence")

// ErrCacheMiss is returned by run caches when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// IsClientError reports whether err was caused by the caller's input rather than the engine.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownAlgorithm) ||
		errors.Is(err, ErrInvalidGraph) ||
		errors.Is(err, ErrNegativeWeight)
}
