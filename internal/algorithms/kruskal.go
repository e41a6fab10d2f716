package algorithms

import (
	"fmt"
	"sort"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/dsu"
)

// Kruskal records the construction of a minimum spanning forest.
//
// Steps:
//  1. Sort edges by ascending weight. The sort is stable, so equal weights
//     keep their input order.
//  2. For each edge: a highlight step, then either an accept step (edge
//     accepted and widened, both endpoints marked in-tree, running cost) or
//     a reject step when the endpoints already share a component. Self-loops
//     are always rejected.
//  3. A summary step with the final cost.
//
// On a disconnected graph the accepted edges form a spanning forest with
// N minus the number of components edges. start is ignored.
func Kruskal(g *domain.Graph, _ int) (*domain.Sequence, error) {
	// 1) Stable sort by weight.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	seq := newRun(g, func(s *domain.Snapshot) {
		s.Message = "Starting Kruskal's Algorithm. Edges are sorted by weight."
	})

	// 2) Greedy selection over the sorted edges.
	sets := dsu.New(g.NodeCount())
	cost := 0.0
	for _, e := range edges {
		lu, lv := g.Label(e.U), g.Label(e.V)

		if err := seq.Step(func(s *domain.Snapshot) {
			s.SetEdgeColor(e.U, e.V, domain.EdgeHighlight)
			s.Message = fmt.Sprintf("Considering edge %s-%s with weight %s.", lu, lv, num(e.Weight))
		}); err != nil {
			return nil, err
		}

		var step func(s *domain.Snapshot)
		if sets.Connected(e.U, e.V) {
			step = func(s *domain.Snapshot) {
				s.SetEdgeColor(e.U, e.V, domain.EdgeRejected)
				s.Message = fmt.Sprintf("Edge %s-%s rejected (forms a cycle).", lu, lv)
			}
		} else {
			sets.Union(e.U, e.V)
			cost += e.Weight
			c := cost
			step = func(s *domain.Snapshot) {
				s.SetEdge(e.U, e.V, domain.EdgeAccepted, domain.AcceptedEdgeWidth)
				s.SetNodeColor(e.U, domain.NodeInTree)
				s.SetNodeColor(e.V, domain.NodeInTree)
				s.Message = fmt.Sprintf("Edge %s-%s added to MST. Cost: %s.", lu, lv, num(c))
			}
		}
		if err := seq.Step(step); err != nil {
			return nil, err
		}
	}

	// 3) Summary.
	if err := seq.Step(func(s *domain.Snapshot) {
		s.Message = fmt.Sprintf("Kruskal's Algorithm finished. Final MST cost: %s.", num(cost))
	}); err != nil {
		return nil, err
	}
	return seq, nil
}
