package algorithms

import (
	"testing"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/stretchr/testify/require"
)

// sampleGraph is the four-node graph A-B-C-D used across the engine tests:
// edges (0,1,1), (1,2,2), (2,3,1), (0,3,4).
func sampleGraph(t *testing.T) *domain.Graph {
	t.Helper()
	return mustGraph(t, 4, []domain.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 3, Weight: 4},
	})
}

func mustGraph(t *testing.T, n int, edges []domain.Edge) *domain.Graph {
	t.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = domain.Label(i)
	}
	g, err := domain.NewGraph(labels, edges)
	require.NoError(t, err)
	return g
}

func messages(seq *domain.Sequence) []string {
	out := make([]string, 0, seq.Len())
	for _, s := range seq.Steps() {
		out = append(out, s.Message)
	}
	return out
}

func last(t *testing.T, seq *domain.Sequence) domain.Snapshot {
	t.Helper()
	s, err := seq.Last()
	require.NoError(t, err)
	return s
}

func texts(s domain.Snapshot) []string {
	out := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = n.Text
	}
	return out
}
