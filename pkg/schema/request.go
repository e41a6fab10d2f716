package schema

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/stepwise/pkg/domain"
)

// RunRequest asks for one algorithm run.
type RunRequest struct {
	Algorithm string       `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm"`
	Graph     GraphPayload `json:"graph" yaml:"graph" mapstructure:"graph"`
	// StartNode takes precedence over Graph.StartNode when both are set.
	StartNode *int `json:"startNode,omitempty" yaml:"startNode,omitempty" mapstructure:"startNode"`
}

// GraphPayload is the graph as sent by clients. Edge endpoints are positions
// in Nodes; each node identifier n is displayed as domain.Label(n).
type GraphPayload struct {
	Nodes     []int       `json:"nodes" yaml:"nodes" mapstructure:"nodes" validate:"required,min=1"`
	Edges     []EdgeTuple `json:"edges" yaml:"edges" mapstructure:"edges"`
	StartNode *int        `json:"startNode,omitempty" yaml:"startNode,omitempty" mapstructure:"startNode"`
}

// Start resolves the requested start node, defaulting to 0.
func (r RunRequest) Start() int {
	switch {
	case r.StartNode != nil:
		return *r.StartNode
	case r.Graph.StartNode != nil:
		return *r.Graph.StartNode
	default:
		return 0
	}
}

// ToGraph validates the request against DefaultLimits and builds the domain graph.
func (r RunRequest) ToGraph() (*domain.Graph, error) {
	return r.BuildGraph(DefaultLimits())
}

// BuildGraph validates the request against l and builds the domain graph.
func (r RunRequest) BuildGraph(l Limits) (*domain.Graph, error) {
	if err := l.Validate(r); err != nil {
		return nil, err
	}
	labels := make([]string, len(r.Graph.Nodes))
	for i, id := range r.Graph.Nodes {
		labels[i] = domain.Label(id)
	}
	edges := make([]domain.Edge, len(r.Graph.Edges))
	for i, t := range r.Graph.Edges {
		edges[i] = t.Edge()
	}
	return domain.NewGraph(labels, edges)
}

// EdgeTuple is an edge encoded as the triple [u, v, weight].
type EdgeTuple struct {
	U, V   int
	Weight float64
}

// Edge converts the tuple to a domain edge.
func (t EdgeTuple) Edge() domain.Edge {
	return domain.Edge{U: t.U, V: t.V, Weight: t.Weight}
}

// MarshalJSON encodes the tuple as [u, v, w].
func (t EdgeTuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{float64(t.U), float64(t.V), t.Weight})
}

// UnmarshalJSON decodes [u, v, w]. Endpoints must be integral.
func (t *EdgeTuple) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("edge must be an array [u, v, weight]: %w", err)
	}
	return t.fromTriple(raw)
}

// UnmarshalYAML decodes [u, v, w] from a YAML flow or block sequence.
func (t *EdgeTuple) UnmarshalYAML(value *yaml.Node) error {
	var raw []float64
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: edge must be a sequence [u, v, weight]: %w", value.Line, err)
	}
	return t.fromTriple(raw)
}

func (t *EdgeTuple) fromTriple(raw []float64) error {
	if len(raw) != 3 {
		return fmt.Errorf("edge must have exactly 3 elements, got %d", len(raw))
	}
	for _, f := range raw[:2] {
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return fmt.Errorf("edge endpoint %v is not an integer index", f)
		}
	}
	*t = EdgeTuple{U: int(raw[0]), V: int(raw[1]), Weight: raw[2]}
	return nil
}
