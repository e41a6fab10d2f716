// Package graph renders algorithm snapshots as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/schema"
)

// GenerateMermaid produces a Mermaid flowchart of g colored by snap.
// Nodes are circles labelled with the node label and, when set, the text
// the algorithm attached to it. Edges carry their weight and are styled
// with linkStyle in input order. The step message becomes a comment.
func GenerateMermaid(g *domain.Graph, snap domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	if snap.Message != "" {
		sb.WriteString(fmt.Sprintf("    %%%% %s\n", sanitizeComment(snap.Message)))
	}

	for i := 0; i < g.NodeCount(); i++ {
		label := g.Label(i)
		if i < len(snap.Nodes) && snap.Nodes[i].Text != "" {
			label = fmt.Sprintf("%s<br/>%s", label, snap.Nodes[i].Text)
		}
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", nodeID(i), escapeLabel(label)))
	}

	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %s ---|\"%s\"| %s\n", nodeID(e.U), formatWeight(e.Weight), nodeID(e.V)))
	}

	// Apply Step Styles
	sb.WriteString("\n    %% Step Styles\n")
	for _, c := range []domain.NodeColor{domain.NodeUnvisited, domain.NodeTentative, domain.NodeActive, domain.NodeInTree} {
		// Force black text for contrast on the light fills
		sb.WriteString(fmt.Sprintf("    classDef %s fill:%s,stroke:#1e293b,stroke-width:2px,color:#000;\n",
			className(c), schema.NodeColorHex(c)))
	}
	for i, n := range snap.Nodes {
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", nodeID(i), className(n.Color)))
	}
	for i, e := range g.Edges() {
		st, ok := snap.Edges[e.Key()]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("    linkStyle %d stroke:%s,stroke-width:%spx;\n",
			i, schema.EdgeColorHex(st.Color), formatWeight(st.Width)))
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("n%d", i)
}

func className(c domain.NodeColor) string {
	return strings.ReplaceAll(c.String(), "-", "_")
}

func formatWeight(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeComment(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
