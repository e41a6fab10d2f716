package domain

import "sort"

// SnapshotDiff lists what changed between two consecutive snapshots.
// Clients always receive full frames; diffs drive the terminal replay,
// which marks the elements that moved.
type SnapshotDiff struct {
	// Nodes holds the indices of nodes whose color or text changed, ascending.
	Nodes []int `json:"nodes,omitempty"`

	// Edges holds the keys of edges whose color or width changed, in key order.
	Edges []EdgeKey `json:"edges,omitempty"`

	// Message is set when the message changed.
	Message *string `json:"message,omitempty"`
}

// Diff calculates the difference between prev and next.
// If prev is nil, every node and edge of next is reported (initial frame).
func Diff(prev, next *Snapshot) *SnapshotDiff {
	if next == nil {
		return nil
	}

	diff := &SnapshotDiff{}

	// 1. Nodes
	for i, st := range next.Nodes {
		if prev == nil || i >= len(prev.Nodes) || prev.Nodes[i] != st {
			diff.Nodes = append(diff.Nodes, i)
		}
	}

	// 2. Edges
	for k, st := range next.Edges {
		if prev == nil {
			diff.Edges = append(diff.Edges, k)
			continue
		}
		if old, ok := prev.Edges[k]; !ok || old != st {
			diff.Edges = append(diff.Edges, k)
		}
	}
	sort.Slice(diff.Edges, func(i, j int) bool {
		a, b := diff.Edges[i], diff.Edges[j]
		if a.Lo != b.Lo {
			return a.Lo < b.Lo
		}
		return a.Hi < b.Hi
	})

	// 3. Message
	if prev == nil || prev.Message != next.Message {
		msg := next.Message
		diff.Message = &msg
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

// IsEmpty checks if the diff contains any change.
func (d *SnapshotDiff) IsEmpty() bool {
	return len(d.Nodes) == 0 && len(d.Edges) == 0 && d.Message == nil
}
