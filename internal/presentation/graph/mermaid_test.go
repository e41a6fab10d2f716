package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stepwise/internal/algorithms"
	"github.com/aretw0/stepwise/internal/presentation/graph"
	"github.com/aretw0/stepwise/pkg/domain"
)

func sample(t *testing.T) *domain.Graph {
	t.Helper()
	g, err := domain.NewGraph([]string{"A", "B", "C"}, []domain.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 1, V: 2, Weight: 1.5},
		{U: 0, V: 2, Weight: -2},
	})
	require.NoError(t, err)
	return g
}

func TestGenerateMermaid_InitialSnapshot(t *testing.T) {
	g := sample(t)
	snap := domain.NewSnapshot(g)
	snap.Message = "Graph initialized."

	out := graph.GenerateMermaid(g, snap)

	for _, want := range []string{
		"graph LR\n",
		"%% Graph initialized.",
		`n0(("A"))`,
		`n0 ---|"4"| n1`,
		`n1 ---|"1.5"| n2`,
		`n0 ---|"-2"| n2`,
		"classDef unvisited fill:#60a5fa",
		"classDef in_tree fill:#6ee7b7",
		"class n2 unvisited;",
		"linkStyle 0 stroke:#94a3b8,stroke-width:3px;",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerateMermaid_FinalKruskalFrame(t *testing.T) {
	g := sample(t)
	seq, err := algorithms.Kruskal(g, 0)
	require.NoError(t, err)
	final, err := seq.Last()
	require.NoError(t, err)

	out := graph.GenerateMermaid(g, final)

	assert.Contains(t, out, "class n0 in_tree;")
	// Edges sorted by weight: C-A (-2) and B-C (1.5) join, A-B closes a cycle.
	assert.Contains(t, out, "linkStyle 2 stroke:#10b981,stroke-width:5px;")
	assert.Contains(t, out, "linkStyle 1 stroke:#10b981,stroke-width:5px;")
	assert.Contains(t, out, "linkStyle 0 stroke:#ef4444,stroke-width:3px;")
	assert.True(t, strings.HasPrefix(out, "graph LR\n    %% Kruskal's Algorithm finished."))
}

func TestGenerateMermaid_NodeTextAndEscaping(t *testing.T) {
	g := sample(t)
	snap := domain.NewSnapshot(g)
	snap.SetNode(1, domain.NodeTentative, "∞")
	snap.Message = "line one\nline \"two\""

	out := graph.GenerateMermaid(g, snap)
	assert.Contains(t, out, `n1(("B<br/>∞"))`)
	assert.Contains(t, out, "class n1 tentative;")
	assert.NotContains(t, out, "line one\n")
}
