package domain

// NodeState is the visual state of one node.
type NodeState struct {
	Color NodeColor
	Text  string
}

// EdgeState is the visual state of one undirected edge.
type EdgeState struct {
	Color EdgeColor
	Width float64
}

// Snapshot is the complete visual state of a graph at one step.
// Nodes is indexed by node; Edges is keyed by canonical edge key.
type Snapshot struct {
	Nodes   []NodeState
	Edges   map[EdgeKey]EdgeState
	Message string
}

// NewSnapshot returns the initial state for g: every node unvisited with an
// empty label, every edge idle at the default width, and no message.
// Parallel edges share a single entry.
func NewSnapshot(g *Graph) Snapshot {
	s := Snapshot{
		Nodes: make([]NodeState, g.NodeCount()),
		Edges: make(map[EdgeKey]EdgeState, len(g.edges)),
	}
	for i := range s.Nodes {
		s.Nodes[i] = NodeState{Color: NodeUnvisited}
	}
	for _, e := range g.edges {
		s.Edges[e.Key()] = EdgeState{Color: EdgeIdle, Width: DefaultEdgeWidth}
	}
	return s
}

// Clone returns a deep copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Message: s.Message}
	if s.Nodes != nil {
		out.Nodes = make([]NodeState, len(s.Nodes))
		copy(out.Nodes, s.Nodes)
	}
	if s.Edges != nil {
		out.Edges = make(map[EdgeKey]EdgeState, len(s.Edges))
		for k, v := range s.Edges {
			out.Edges[k] = v
		}
	}
	return out
}

// SetNode updates the color and text of node i.
func (s *Snapshot) SetNode(i int, color NodeColor, text string) {
	s.Nodes[i] = NodeState{Color: color, Text: text}
}

// SetNodeColor updates only the color of node i.
func (s *Snapshot) SetNodeColor(i int, color NodeColor) {
	s.Nodes[i].Color = color
}

// SetNodeText updates only the text of node i.
func (s *Snapshot) SetNodeText(i int, text string) {
	s.Nodes[i].Text = text
}

// SetEdgeColor recolors the edge (u, v), keeping its width.
func (s *Snapshot) SetEdgeColor(u, v int, color EdgeColor) {
	k := NewEdgeKey(u, v)
	st := s.Edges[k]
	st.Color = color
	if st.Width == 0 {
		st.Width = DefaultEdgeWidth
	}
	s.Edges[k] = st
}

// SetEdge replaces color and width of the edge (u, v).
func (s *Snapshot) SetEdge(u, v int, color EdgeColor, width float64) {
	s.Edges[NewEdgeKey(u, v)] = EdgeState{Color: color, Width: width}
}
