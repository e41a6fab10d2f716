package algorithms

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Dijkstra records single-source shortest paths from start over the
// undirected graph g.
//
// Steps recorded:
//  1. Intro: every node labelled ∞, start labelled 0 and colored tentative.
//  2. For each non-stale pop from the queue: a visit step (node active).
//  3. For each adjacency entry of the visited node, in edge input order:
//     a highlight step, an update step when the distance improves, and a
//     step restoring the edge color.
//  4. A final summary step.
//
// The queue is lazy: improved distances push duplicates and stale entries
// are skipped on pop. Ties pop by lower node index. Nodes never reached keep
// the ∞ label. Negative weights are rejected with domain.ErrNegativeWeight
// before anything is recorded.
func Dijkstra(g *domain.Graph, start int) (*domain.Sequence, error) {
	// 1) Validate start and weights.
	if err := g.CheckNode(start); err != nil {
		return nil, err
	}
	for i, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: dijkstra edge %d (%s-%s) weight=%s",
				domain.ErrNegativeWeight, i, g.Label(e.U), g.Label(e.V), num(e.Weight))
		}
	}

	// 2) Seed the run and drain the queue.
	r := &dijkstraRunner{
		g:    g,
		adj:  g.Adjacency(),
		dist: make([]float64, g.NodeCount()),
	}
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 3) Summary.
	if err := r.seq.Step(func(s *domain.Snapshot) {
		s.Message = "Dijkstra's Algorithm finished."
	}); err != nil {
		return nil, err
	}
	return r.seq, nil
}

// dijkstraRunner holds the mutable state for a single Dijkstra run.
type dijkstraRunner struct {
	g    *domain.Graph
	adj  [][]domain.Neighbor
	dist []float64
	pq   distPQ
	seq  *domain.Sequence
}

func (r *dijkstraRunner) init(start int) {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[start] = 0
	heap.Push(&r.pq, distItem{dist: 0, node: start})

	r.seq = newRun(r.g, func(s *domain.Snapshot) {
		for i := range s.Nodes {
			s.SetNodeText(i, domain.Infinity)
		}
		s.SetNode(start, domain.NodeTentative, "0")
		s.Message = fmt.Sprintf("Starting Dijkstra's Algorithm from node %s.", r.g.Label(start))
	})
}

func (r *dijkstraRunner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(distItem)
		u := item.node
		if item.dist > r.dist[u] {
			continue // stale entry
		}

		if err := r.seq.Step(func(s *domain.Snapshot) {
			s.SetNodeColor(u, domain.NodeActive)
			s.Message = fmt.Sprintf("Visiting node %s. Current distance: %s.", r.g.Label(u), num(item.dist))
		}); err != nil {
			return err
		}

		for _, nb := range r.adj[u] {
			if err := r.relax(u, nb); err != nil {
				return err
			}
		}
	}
	return nil
}

// relax records the consideration of the edge u-nb.Node and, when it
// shortens the path to nb.Node, the improved distance.
func (r *dijkstraRunner) relax(u int, nb domain.Neighbor) error {
	v, w := nb.Node, nb.Weight

	if err := r.seq.Step(func(s *domain.Snapshot) {
		s.SetEdgeColor(u, v, domain.EdgeHighlight)
		s.Message = fmt.Sprintf("Considering edge from %s to %s with weight %s.", r.g.Label(u), r.g.Label(v), num(w))
	}); err != nil {
		return err
	}

	if d := r.dist[u] + w; d < r.dist[v] {
		r.dist[v] = d
		heap.Push(&r.pq, distItem{dist: d, node: v})
		if err := r.seq.Step(func(s *domain.Snapshot) {
			s.SetNode(v, domain.NodeTentative, num(d))
			s.Message = fmt.Sprintf("Updated distance of node %s to %s.", r.g.Label(v), num(d))
		}); err != nil {
			return err
		}
	}

	return r.seq.Step(func(s *domain.Snapshot) {
		s.SetEdgeColor(u, v, domain.EdgeIdle)
	})
}
