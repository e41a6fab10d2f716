package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Edge is an undirected weighted edge between two node indices.
type Edge struct {
	U, V   int
	Weight float64
}

// Key returns the canonical key of the edge.
func (e Edge) Key() EdgeKey {
	return NewEdgeKey(e.U, e.V)
}

// EdgeKey identifies an undirected edge by its ordered endpoints (Lo <= Hi).
type EdgeKey struct {
	Lo, Hi int
}

// NewEdgeKey builds the canonical key for the pair (u, v) in either order.
func NewEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{Lo: u, Hi: v}
}

// String renders the key as "lo-hi".
func (k EdgeKey) String() string {
	return strconv.Itoa(k.Lo) + "-" + strconv.Itoa(k.Hi)
}

// Neighbor is one entry of an adjacency list.
type Neighbor struct {
	Node   int
	Weight float64
}

// Graph is an immutable undirected weighted graph over nodes 0..N-1.
type Graph struct {
	labels []string
	edges  []Edge
}

// NewGraph validates and copies labels and edges into a Graph.
// The number of nodes is len(labels).
func NewGraph(labels []string, edges []Edge) (*Graph, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrInvalidGraph)
	}
	n := len(labels)
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d-%d) references a node outside [0,%d)", ErrInvalidGraph, i, e.U, e.V, n)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %d has a non-finite weight", ErrInvalidGraph, i)
		}
	}

	g := &Graph{
		labels: make([]string, n),
		edges:  make([]Edge, len(edges)),
	}
	copy(g.labels, labels)
	copy(g.edges, edges)
	return g, nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int { return len(g.labels) }

// Label returns the display label of node i.
func (g *Graph) Label(i int) string { return g.labels[i] }

// Labels returns a copy of all node labels.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Edges returns a copy of the edges in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Adjacency returns, for each node, its neighbors in edge input order.
// Every edge (u, v, w) contributes v to u's list and u to v's list.
func (g *Graph) Adjacency() [][]Neighbor {
	adj := make([][]Neighbor, len(g.labels))
	for _, e := range g.edges {
		adj[e.U] = append(adj[e.U], Neighbor{Node: e.V, Weight: e.Weight})
		adj[e.V] = append(adj[e.V], Neighbor{Node: e.U, Weight: e.Weight})
	}
	return adj
}

// CheckNode returns ErrInvalidGraph when i is not a node of g.
func (g *Graph) CheckNode(i int) error {
	if i < 0 || i >= len(g.labels) {
		return fmt.Errorf("%w: start node %d outside [0,%d)", ErrInvalidGraph, i, len(g.labels))
	}
	return nil
}

// Label converts a raw node identifier into its display label:
// 0 -> "A", 25 -> "Z", 26 -> "AA", 27 -> "AB" and so on.
// Negative identifiers render as their decimal form.
func Label(id int) string {
	if id < 0 {
		return strconv.Itoa(id)
	}
	var buf []byte
	for n := id + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
