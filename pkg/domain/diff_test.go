package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	g, err := NewGraph([]string{"A", "B", "C"}, []Edge{{0, 1, 1}, {2, 1, 2}})
	require.NoError(t, err)
	base := NewSnapshot(g)
	base.Message = "Graph initialized."

	msg := func(s string) *string { return &s }

	tests := []struct {
		name   string
		prev   *Snapshot
		mutate func(s *Snapshot)
		want   *SnapshotDiff
	}{
		{
			name:   "initial frame reports everything",
			prev:   nil,
			mutate: func(s *Snapshot) {},
			want: &SnapshotDiff{
				Nodes:   []int{0, 1, 2},
				Edges:   []EdgeKey{{0, 1}, {1, 2}},
				Message: msg("Graph initialized."),
			},
		},
		{
			name:   "no changes",
			prev:   &base,
			mutate: func(s *Snapshot) {},
			want:   nil,
		},
		{
			name: "node text only",
			prev: &base,
			mutate: func(s *Snapshot) {
				s.SetNodeText(2, "4")
			},
			want: &SnapshotDiff{Nodes: []int{2}},
		},
		{
			name: "edge highlight with message",
			prev: &base,
			mutate: func(s *Snapshot) {
				s.SetEdgeColor(1, 2, EdgeHighlight)
				s.Message = "Considering edge C-B with weight 2."
			},
			want: &SnapshotDiff{
				Edges:   []EdgeKey{{1, 2}},
				Message: msg("Considering edge C-B with weight 2."),
			},
		},
		{
			name: "accepted edge changes width",
			prev: &base,
			mutate: func(s *Snapshot) {
				s.SetEdge(0, 1, EdgeAccepted, AcceptedEdgeWidth)
				s.SetNodeColor(0, NodeInTree)
				s.SetNodeColor(1, NodeInTree)
			},
			want: &SnapshotDiff{
				Nodes: []int{0, 1},
				Edges: []EdgeKey{{0, 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := base.Clone()
			tt.mutate(&next)
			got := Diff(tt.prev, &next)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiff_NilNext(t *testing.T) {
	assert.Nil(t, Diff(nil, nil))
}
