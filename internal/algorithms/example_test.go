package algorithms_test

import (
	"fmt"

	"github.com/aretw0/stepwise/internal/algorithms"
	"github.com/aretw0/stepwise/pkg/domain"
)

func ExampleKruskal() {
	g, _ := domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 1},
		{U: 0, V: 2, Weight: 3},
	})

	seq, _ := algorithms.Kruskal(g, 0)
	for _, s := range seq.Steps() {
		fmt.Println(s.Message)
	}
	// Output:
	// Starting Kruskal's Algorithm. Edges are sorted by weight.
	// Considering edge B-C with weight 1.
	// Edge B-C added to MST. Cost: 1.
	// Considering edge A-B with weight 2.
	// Edge A-B added to MST. Cost: 3.
	// Considering edge A-C with weight 3.
	// Edge A-C rejected (forms a cycle).
	// Kruskal's Algorithm finished. Final MST cost: 3.
}

func ExampleDijkstra() {
	g, _ := domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 1, V: 2, Weight: 1},
		{U: 0, V: 2, Weight: 2},
	})

	seq, _ := algorithms.Dijkstra(g, 0)
	final, _ := seq.Last()
	for i, n := range final.Nodes {
		fmt.Printf("%s=%s\n", g.Label(i), n.Text)
	}
	// Output:
	// A=0
	// B=3
	// C=2
}
