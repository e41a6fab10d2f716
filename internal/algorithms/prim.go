package algorithms

import (
	"container/heap"
	"fmt"

	"github.com/aretw0/stepwise/pkg/domain"
)

// primRoot is the node Prim always grows its tree from.
const primRoot = 0

// Prim records the growth of a minimum spanning tree from node 0.
//
// A lazy queue holds candidate (weight, node, predecessor) entries, seeded
// with (0, 0, -1) and ordered lexicographically. Each pop of a node not yet
// in the tree records one step: the node joins the tree and, unless it is the
// root, the edge from its predecessor is accepted and widened. Every neighbor
// not yet in the tree is then pushed, duplicates included. The loop ends when
// every node is in the tree or the queue is empty, so on a disconnected graph
// only the root's component is spanned. start is ignored.
func Prim(g *domain.Graph, _ int) (*domain.Sequence, error) {
	n := g.NodeCount()
	adj := g.Adjacency()
	inTree := make([]bool, n)
	added := 0
	cost := 0.0

	seq := newRun(g, func(s *domain.Snapshot) {
		s.Message = fmt.Sprintf("Starting Prim's Algorithm from node %s.", g.Label(primRoot))
	})

	pq := treePQ{{weight: 0, node: primRoot, pred: -1}}
	for pq.Len() > 0 && added < n {
		item := heap.Pop(&pq).(treeItem)
		u := item.node
		if inTree[u] {
			continue
		}
		inTree[u] = true
		added++
		cost += item.weight
		c := cost

		if err := seq.Step(func(s *domain.Snapshot) {
			s.SetNodeColor(u, domain.NodeInTree)
			if item.pred < 0 {
				s.Message = fmt.Sprintf("Added starting node %s to MST.", g.Label(u))
				return
			}
			s.SetEdge(item.pred, u, domain.EdgeAccepted, domain.AcceptedEdgeWidth)
			s.Message = fmt.Sprintf("Added node %s from %s. Cost: %s.", g.Label(u), g.Label(item.pred), num(c))
		}); err != nil {
			return nil, err
		}

		for _, nb := range adj[u] {
			if !inTree[nb.Node] {
				heap.Push(&pq, treeItem{weight: nb.Weight, node: nb.Node, pred: u})
			}
		}
	}

	if err := seq.Step(func(s *domain.Snapshot) {
		s.Message = fmt.Sprintf("Prim's Algorithm finished. Final MST cost: %s.", num(cost))
	}); err != nil {
		return nil, err
	}
	return seq, nil
}
