// Package dsu provides a disjoint-set (union-find) structure over the
// integers 0..n-1.
//
// Unions are asymmetric: the root of the first argument is always attached
// under the root of the second. There is no union by rank; Find compresses
// paths so later lookups stay short. The fixed attachment order keeps runs
// reproducible, which the step recordings rely on.
package dsu

// UnionFind tracks a partition of 0..n-1 into disjoint sets.
type UnionFind struct {
	parent []int
	sets   int
}

// New creates a UnionFind where each element is its own set.
func New(n int) *UnionFind {
	uf := &UnionFind{parent: make([]int, n), sets: n}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Find returns the representative of x's set, compressing the path so every
// element visited points directly at the root afterwards.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets of a and b by re-parenting root(a) under root(b).
// It returns false, changing nothing, when a and b already share a set.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	uf.parent[ra] = rb
	uf.sets--
	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Components returns the number of disjoint sets.
func (uf *UnionFind) Components() int { return uf.sets }

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }
