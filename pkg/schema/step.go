package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/stepwise/pkg/domain"
)

// Step is one serialized snapshot.
type Step struct {
	Nodes   map[string]NodeView `json:"nodes"`
	Edges   map[string]EdgeView `json:"edges"`
	Message string              `json:"message"`
}

// NodeView is the wire form of domain.NodeState.
type NodeView struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

// EdgeView is the wire form of domain.EdgeState.
type EdgeView struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// ErrorResponse is the body returned for failed runs.
type ErrorResponse struct {
	Error string `json:"error"`
}

var nodeHex = map[domain.NodeColor]string{
	domain.NodeUnvisited: "#60a5fa",
	domain.NodeTentative: "#f59e0b",
	domain.NodeActive:    "#4f46e5",
	domain.NodeInTree:    "#6ee7b7",
}

var edgeHex = map[domain.EdgeColor]string{
	domain.EdgeIdle:      "#94a3b8",
	domain.EdgeHighlight: "#facc15",
	domain.EdgeAccepted:  "#10b981",
	domain.EdgeRejected:  "#ef4444",
}

// NodeColorHex returns the wire color of a node token.
func NodeColorHex(c domain.NodeColor) string { return nodeHex[c] }

// EdgeColorHex returns the wire color of an edge token.
func EdgeColorHex(c domain.EdgeColor) string { return edgeHex[c] }

// ParseNodeColor maps a wire color back to its token.
func ParseNodeColor(hex string) (domain.NodeColor, error) {
	for c, h := range nodeHex {
		if strings.EqualFold(h, hex) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown node color %q", hex)
}

// ParseEdgeColor maps a wire color back to its token.
func ParseEdgeColor(hex string) (domain.EdgeColor, error) {
	for c, h := range edgeHex {
		if strings.EqualFold(h, hex) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown edge color %q", hex)
}

// EncodeSnapshot converts a snapshot to its wire form.
func EncodeSnapshot(s domain.Snapshot) Step {
	out := Step{
		Nodes:   make(map[string]NodeView, len(s.Nodes)),
		Edges:   make(map[string]EdgeView, len(s.Edges)),
		Message: s.Message,
	}
	for i, n := range s.Nodes {
		out.Nodes[strconv.Itoa(i)] = NodeView{Color: NodeColorHex(n.Color), Text: n.Text}
	}
	for k, e := range s.Edges {
		out.Edges[k.String()] = EdgeView{Color: EdgeColorHex(e.Color), Width: e.Width}
	}
	return out
}

// EncodeSequence converts every step of seq to its wire form.
func EncodeSequence(seq *domain.Sequence) []Step {
	snaps := seq.Steps()
	out := make([]Step, len(snaps))
	for i, s := range snaps {
		out[i] = EncodeSnapshot(s)
	}
	return out
}

// DecodeStep converts a wire step back into a snapshot.
func DecodeStep(st Step) (domain.Snapshot, error) {
	s := domain.Snapshot{
		Nodes:   make([]domain.NodeState, len(st.Nodes)),
		Edges:   make(map[domain.EdgeKey]domain.EdgeState, len(st.Edges)),
		Message: st.Message,
	}
	for key, n := range st.Nodes {
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(s.Nodes) {
			return domain.Snapshot{}, fmt.Errorf("node key %q is not an index in [0,%d)", key, len(s.Nodes))
		}
		c, err := ParseNodeColor(n.Color)
		if err != nil {
			return domain.Snapshot{}, err
		}
		s.Nodes[i] = domain.NodeState{Color: c, Text: n.Text}
	}
	for key, e := range st.Edges {
		k, err := ParseEdgeKey(key)
		if err != nil {
			return domain.Snapshot{}, err
		}
		c, err := ParseEdgeColor(e.Color)
		if err != nil {
			return domain.Snapshot{}, err
		}
		s.Edges[k] = domain.EdgeState{Color: c, Width: e.Width}
	}
	return s, nil
}

// DecodeSteps converts a whole wire sequence back into snapshots.
func DecodeSteps(steps []Step) ([]domain.Snapshot, error) {
	out := make([]domain.Snapshot, len(steps))
	for i, st := range steps {
		s, err := DecodeStep(st)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// ParseEdgeKey parses "lo-hi" into a canonical key.
func ParseEdgeKey(key string) (domain.EdgeKey, error) {
	lo, hi, ok := strings.Cut(key, "-")
	if !ok {
		return domain.EdgeKey{}, fmt.Errorf("edge key %q is not of the form lo-hi", key)
	}
	u, err1 := strconv.Atoi(lo)
	v, err2 := strconv.Atoi(hi)
	if err1 != nil || err2 != nil {
		return domain.EdgeKey{}, fmt.Errorf("edge key %q is not of the form lo-hi", key)
	}
	return domain.NewEdgeKey(u, v), nil
}

// RunResult is the outcome of a run as returned by the engine facade.
// Adapters serialize only Steps as the response body.
type RunResult struct {
	RunID     string `json:"runId"`
	Algorithm string `json:"algorithm"`
	Steps     []Step `json:"steps"`
	// Cached is true when the steps were served from a run cache.
	Cached bool `json:"cached"`
}
