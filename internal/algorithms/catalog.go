package algorithms

import "github.com/aretw0/stepwise/pkg/registry"

// Catalog returns the descriptors of every built-in algorithm.
func Catalog() []registry.Algorithm {
	return []registry.Algorithm{
		{
			Name:        "dijkstra",
			Title:       "Dijkstra's Algorithm",
			Description: "Finds the shortest path from a starting node to all other nodes in a weighted graph. Works with non-negative edge weights only.",
			Complexity:  "Time: O(E log V) | Space: O(V)",
			NeedsStart:  true,
			Run:         Dijkstra,
		},
		{
			Name:        "bellman-ford",
			Title:       "Bellman-Ford Algorithm",
			Description: "Finds the shortest paths from a single source. Slower than Dijkstra's but can handle negative edge weights and detect negative cycles.",
			Complexity:  "Time: O(V × E) | Space: O(V)",
			NeedsStart:  true,
			Run:         BellmanFord,
		},
		{
			Name:        "kruskal",
			Title:       "Kruskal's Algorithm",
			Description: "Finds a Minimum Spanning Tree (MST) for a weighted, undirected graph. Sorts all edges and adds them to the MST if they don't form a cycle.",
			Complexity:  "Time: O(E log E) | Space: O(V + E)",
			Run:         Kruskal,
		},
		{
			Name:        "prim",
			Title:       "Prim's Algorithm",
			Description: "Finds a Minimum Spanning Tree (MST). Starts from an arbitrary node and grows the MST by adding the cheapest connection from a known to an unknown vertex.",
			Complexity:  "Time: O(E log V) | Space: O(V + E)",
			Run:         Prim,
		},
	}
}

// Register adds every built-in algorithm to r.
func Register(r *registry.Registry) error {
	for _, a := range Catalog() {
		if err := r.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry preloaded with the built-in algorithms.
func NewRegistry() *registry.Registry {
	r := registry.NewRegistry()
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}
