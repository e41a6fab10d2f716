// Package algorithms implements the step-recording graph algorithm engines:
// Dijkstra, Bellman-Ford, Kruskal and Prim.
//
// Every engine has the same shape. It seeds a domain.Sequence with the
// initial snapshot of the graph, then records one step per observable event
// by copying the last snapshot, mutating the copy and appending it
// (domain.Sequence.Step). Engines are pure: the graph is never modified, no
// state is shared between runs and the same input always yields the same
// sequence.
//
// Complexity, with V nodes, E edges and S recorded steps (each step copies
// O(V + E) state):
//
//   - Dijkstra:     O(E log E) work, S = O(V + E)
//   - Bellman-Ford: O(V · E) work, S = O(V · E)
//   - Kruskal:      O(E log E) work, S = O(E)
//   - Prim:         O(E log E) work, S = O(V)
package algorithms
