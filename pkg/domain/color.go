package domain

// NodeColor is the visual role of a node in a snapshot.
type NodeColor int

const (
	// NodeUnvisited is the initial color of every node.
	NodeUnvisited NodeColor = iota
	// NodeTentative marks a node holding a tentative shortest distance.
	NodeTentative
	// NodeActive marks the node currently being expanded.
	NodeActive
	// NodeInTree marks a node that belongs to the spanning tree under construction.
	NodeInTree
)

func (c NodeColor) String() string {
	switch c {
	case NodeUnvisited:
		return "unvisited"
	case NodeTentative:
		return "tentative"
	case NodeActive:
		return "active"
	case NodeInTree:
		return "in-tree"
	default:
		return "unknown"
	}
}

// EdgeColor is the visual role of an edge in a snapshot.
type EdgeColor int

const (
	// EdgeIdle is the initial color of every edge.
	EdgeIdle EdgeColor = iota
	// EdgeHighlight marks the edge under consideration.
	EdgeHighlight
	// EdgeAccepted marks an edge that joined the spanning tree.
	EdgeAccepted
	// EdgeRejected marks an edge discarded because it would close a cycle.
	EdgeRejected
)

func (c EdgeColor) String() string {
	switch c {
	case EdgeIdle:
		return "idle"
	case EdgeHighlight:
		return "highlight"
	case EdgeAccepted:
		return "accepted"
	case EdgeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Edge widths used by the renderer.
const (
	DefaultEdgeWidth  = 3.0
	AcceptedEdgeWidth = 5.0
)

// Infinity is the label shown for nodes with no known distance.
const Infinity = "∞"
