// Package registry maps algorithm names to their step-recording engines.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Func runs an algorithm over g and returns the recorded steps.
// start is the source node for algorithms that take one; others ignore it.
type Func func(g *domain.Graph, start int) (*domain.Sequence, error)

// Algorithm describes a registered engine.
type Algorithm struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Complexity  string `json:"complexity"`
	// NeedsStart is true when the algorithm reads the start node.
	NeedsStart bool `json:"needsStart"`
	Run        Func `json:"-"`
}

// Registry manages the available algorithms. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[string]Algorithm
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		algorithms: make(map[string]Algorithm),
	}
}

// Register adds an algorithm to the registry.
// If an algorithm with the same name exists, it is overwritten.
func (r *Registry) Register(a Algorithm) error {
	if a.Name == "" {
		return errors.New("registry: algorithm name is empty")
	}
	if a.Run == nil {
		return fmt.Errorf("registry: algorithm %q has no run function", a.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms[a.Name] = a
	return nil
}

// Lookup returns the algorithm registered under name.
// Returns an error wrapping domain.ErrUnknownAlgorithm if it is not found.
func (r *Registry) Lookup(name string) (Algorithm, error) {
	r.mu.RLock()
	a, ok := r.algorithms[name]
	r.mu.RUnlock()

	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// List returns every registered algorithm sorted by name.
func (r *Registry) List() []Algorithm {
	r.mu.RLock()
	out := make([]Algorithm, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
