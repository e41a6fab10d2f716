package stepwise_test

import (
	"context"
	"fmt"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/schema"
)

func ExampleEngine_Execute() {
	eng := stepwise.New()

	res, err := eng.Execute(context.Background(), schema.RunRequest{
		Algorithm: "prim",
		Graph: schema.GraphPayload{
			Nodes: []int{0, 1, 2},
			Edges: []schema.EdgeTuple{
				{U: 0, V: 1, Weight: 5},
				{U: 1, V: 2, Weight: 1},
				{U: 0, V: 2, Weight: 2},
			},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, step := range res.Steps {
		fmt.Println(step.Message)
	}
	// Output:
	// Starting Prim's Algorithm from node A.
	// Added starting node A to MST.
	// Added node C from A. Cost: 2.
	// Added node B from C. Cost: 3.
	// Prim's Algorithm finished. Final MST cost: 3.
}
