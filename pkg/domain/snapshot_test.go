package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph([]string{"A", "B", "C"}, []Edge{{0, 1, 1}, {1, 0, 7}, {1, 2, 3}})
	require.NoError(t, err)
	return g
}

func TestNewSnapshot(t *testing.T) {
	s := NewSnapshot(sampleGraph(t))

	require.Len(t, s.Nodes, 3)
	for _, n := range s.Nodes {
		assert.Equal(t, NodeState{Color: NodeUnvisited}, n)
	}

	// Parallel edges 0-1 and 1-0 collapse into one entry.
	require.Len(t, s.Edges, 2)
	for _, e := range s.Edges {
		assert.Equal(t, EdgeState{Color: EdgeIdle, Width: DefaultEdgeWidth}, e)
	}
	assert.Empty(t, s.Message)
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	s := NewSnapshot(sampleGraph(t))
	s.Message = "before"

	c := s.Clone()
	c.SetNode(0, NodeActive, "0")
	c.SetEdge(1, 2, EdgeAccepted, AcceptedEdgeWidth)
	c.Message = "after"

	assert.Equal(t, NodeState{Color: NodeUnvisited}, s.Nodes[0])
	assert.Equal(t, EdgeState{Color: EdgeIdle, Width: DefaultEdgeWidth}, s.Edges[NewEdgeKey(1, 2)])
	assert.Equal(t, "before", s.Message)
}

func TestSnapshot_Setters(t *testing.T) {
	s := NewSnapshot(sampleGraph(t))

	s.SetNode(2, NodeTentative, "4")
	s.SetNodeColor(2, NodeActive)
	assert.Equal(t, NodeState{Color: NodeActive, Text: "4"}, s.Nodes[2])

	s.SetNodeText(1, "∞")
	assert.Equal(t, NodeState{Color: NodeUnvisited, Text: "∞"}, s.Nodes[1])

	s.SetEdge(2, 1, EdgeAccepted, AcceptedEdgeWidth)
	s.SetEdgeColor(1, 2, EdgeHighlight)
	assert.Equal(t, EdgeState{Color: EdgeHighlight, Width: AcceptedEdgeWidth}, s.Edges[NewEdgeKey(1, 2)])
}
