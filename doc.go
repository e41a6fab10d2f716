/*
Package stepwise runs classical graph algorithms and records every
intermediate visual state so that a client can replay the run step by step.

Four algorithms are built in: Dijkstra and Bellman-Ford (shortest paths from a
start node) and Kruskal and Prim (minimum spanning trees). Each run produces an
ordered sequence of full snapshots: the color and label of every node, the
color and width of every edge, and a human-readable message.

# Architecture

The engines are pure functions from a validated graph to a step sequence
(internal/algorithms). The Engine in this package is the facade used by every
adapter: it validates the request, dispatches to the registered algorithm,
encodes the sequence into the wire format (pkg/schema) and takes care of the
ambient concerns (logging, metrics, tracing, and an optional run cache).

Adapters live under pkg/adapters: an HTTP API (chi), an MCP server, and run
caches backed by memory or Redis. The stepwise command wires them together.

# Usage

	eng := stepwise.New()

	res, err := eng.Execute(ctx, schema.RunRequest{
		Algorithm: "dijkstra",
		Graph: schema.GraphPayload{
			Nodes: []int{0, 1, 2, 3},
			Edges: []schema.EdgeTuple{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, step := range res.Steps {
		fmt.Println(step.Message)
	}
*/
package stepwise
