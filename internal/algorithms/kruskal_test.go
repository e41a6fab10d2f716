package algorithms

import (
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKruskal_SampleTrace(t *testing.T) {
	seq, err := Kruskal(sampleGraph(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Starting Kruskal's Algorithm. Edges are sorted by weight.",
		"Considering edge A-B with weight 1.",
		"Edge A-B added to MST. Cost: 1.",
		"Considering edge C-D with weight 1.",
		"Edge C-D added to MST. Cost: 2.",
		"Considering edge B-C with weight 2.",
		"Edge B-C added to MST. Cost: 4.",
		"Considering edge A-D with weight 4.",
		"Edge A-D rejected (forms a cycle).",
		"Kruskal's Algorithm finished. Final MST cost: 4.",
	}, messages(seq))

	final := last(t, seq)
	for _, n := range final.Nodes {
		assert.Equal(t, domain.NodeInTree, n.Color)
	}
	accepted := domain.EdgeState{Color: domain.EdgeAccepted, Width: domain.AcceptedEdgeWidth}
	assert.Equal(t, accepted, final.Edges[domain.NewEdgeKey(0, 1)])
	assert.Equal(t, accepted, final.Edges[domain.NewEdgeKey(1, 2)])
	assert.Equal(t, accepted, final.Edges[domain.NewEdgeKey(2, 3)])
	assert.Equal(t, domain.EdgeState{Color: domain.EdgeRejected, Width: domain.DefaultEdgeWidth}, final.Edges[domain.NewEdgeKey(0, 3)])
}

func TestKruskal_StableTies(t *testing.T) {
	g := mustGraph(t, 3, []domain.Edge{
		{U: 1, V: 2, Weight: 5},
		{U: 0, V: 1, Weight: 5},
		{U: 0, V: 2, Weight: 5},
	})
	seq, err := Kruskal(g, 0)
	require.NoError(t, err)

	msgs := messages(seq)
	assert.Equal(t, "Considering edge B-C with weight 5.", msgs[1])
	assert.Equal(t, "Considering edge A-B with weight 5.", msgs[3])
	assert.Equal(t, "Edge A-C rejected (forms a cycle).", msgs[6])
}

func TestKruskal_SelfLoopRejected(t *testing.T) {
	g := mustGraph(t, 2, []domain.Edge{
		{U: 1, V: 1, Weight: 0},
		{U: 0, V: 1, Weight: 2},
	})
	seq, err := Kruskal(g, 0)
	require.NoError(t, err)

	msgs := messages(seq)
	assert.Equal(t, "Edge B-B rejected (forms a cycle).", msgs[2])
	assert.Equal(t, "Kruskal's Algorithm finished. Final MST cost: 2.", msgs[len(msgs)-1])
}

func TestKruskal_DisconnectedForest(t *testing.T) {
	g := mustGraph(t, 5, []domain.Edge{
		{U: 0, V: 1, Weight: 3},
		{U: 3, V: 4, Weight: 1},
	})
	seq, err := Kruskal(g, 0)
	require.NoError(t, err)

	final := last(t, seq)
	assert.Equal(t, "Kruskal's Algorithm finished. Final MST cost: 4.", final.Message)
	assert.Equal(t, domain.NodeUnvisited, final.Nodes[2].Color)
}

func TestKruskal_NoEdges(t *testing.T) {
	seq, err := Kruskal(mustGraph(t, 2, nil), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Starting Kruskal's Algorithm. Edges are sorted by weight.",
		"Kruskal's Algorithm finished. Final MST cost: 0.",
	}, messages(seq))
}
