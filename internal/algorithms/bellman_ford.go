package algorithms

import (
	"fmt"
	"math"

	"github.com/aretw0/stepwise/pkg/domain"
)

// BellmanFord records single-source shortest paths from start by relaxing
// every edge N-1 times, then reports whether a negative cycle is reachable.
//
// Edges are undirected, so each edge is tried in both orientations (u→v,
// then v→u). Each pass announces itself with an iteration step; every edge
// gets a highlight step, one step per successful relaxation (label only)
// and a de-highlight step. A final pass detects, but does not resolve,
// negative cycles. Because edges are undirected, any negative edge reachable
// from start forms a negative cycle.
func BellmanFord(g *domain.Graph, start int) (*domain.Sequence, error) {
	if err := g.CheckNode(start); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	edges := g.Edges()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	seq := newRun(g, func(s *domain.Snapshot) {
		for i := range s.Nodes {
			s.SetNodeText(i, domain.Infinity)
		}
		s.SetNodeText(start, "0")
		s.Message = fmt.Sprintf("Starting Bellman-Ford from node %s.", g.Label(start))
	})

	// relax tries the orientation from→to and records it when it improves.
	relax := func(from, to int, w float64) error {
		if math.IsInf(dist[from], 1) || dist[from]+w >= dist[to] {
			return nil
		}
		dist[to] = dist[from] + w
		d := dist[to]
		return seq.Step(func(s *domain.Snapshot) {
			s.SetNodeText(to, num(d))
			s.Message = fmt.Sprintf("Relaxed edge %s-%s. New distance for %s is %s.",
				g.Label(from), g.Label(to), g.Label(to), num(d))
		})
	}

	for i := 0; i < n-1; i++ {
		if err := seq.Step(func(s *domain.Snapshot) {
			s.Message = fmt.Sprintf("Iteration %d: Relaxing all edges.", i+1)
		}); err != nil {
			return nil, err
		}

		for _, e := range edges {
			if err := seq.Step(func(s *domain.Snapshot) {
				s.SetEdgeColor(e.U, e.V, domain.EdgeHighlight)
			}); err != nil {
				return nil, err
			}
			if err := relax(e.U, e.V, e.Weight); err != nil {
				return nil, err
			}
			if err := relax(e.V, e.U, e.Weight); err != nil {
				return nil, err
			}
			if err := seq.Step(func(s *domain.Snapshot) {
				s.SetEdgeColor(e.U, e.V, domain.EdgeIdle)
			}); err != nil {
				return nil, err
			}
		}
	}

	msg := "Bellman-Ford finished."
	if hasNegativeCycle(dist, edges) {
		msg = "Negative weight cycle detected!"
	}
	if err := seq.Step(func(s *domain.Snapshot) { s.Message = msg }); err != nil {
		return nil, err
	}
	return seq, nil
}

// hasNegativeCycle reports whether any orientation of any edge can still be relaxed.
func hasNegativeCycle(dist []float64, edges []domain.Edge) bool {
	improves := func(from, to int, w float64) bool {
		return !math.IsInf(dist[from], 1) && dist[from]+w < dist[to]
	}
	for _, e := range edges {
		if improves(e.U, e.V, e.Weight) || improves(e.V, e.U, e.Weight) {
			return true
		}
	}
	return false
}
