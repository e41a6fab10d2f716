package algorithms

// distItem is a lazy priority-queue entry for shortest paths.
type distItem struct {
	dist float64
	node int
}

// distPQ is a min-heap ordered by (dist, node).
// It implements heap.Interface.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].node < pq[j].node
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x any) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// treeItem is a candidate tree edge for Prim: reach node through pred at cost weight.
// pred is -1 for the seed entry.
type treeItem struct {
	weight float64
	node   int
	pred   int
}

// treePQ is a min-heap ordered lexicographically by (weight, node, pred).
// It implements heap.Interface.
type treePQ []treeItem

func (pq treePQ) Len() int { return len(pq) }

func (pq treePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.node != b.node {
		return a.node < b.node
	}
	return a.pred < b.pred
}

func (pq treePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *treePQ) Push(x any) { *pq = append(*pq, x.(treeItem)) }

func (pq *treePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
