package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/schema"
)

// Player prints snapshots of a run to a terminal, coloring nodes and edges
// with their wire colors and marking what changed since the previous step.
type Player struct {
	out *termenv.Output
	w   io.Writer
	g   *domain.Graph
}

// NewPlayer creates a player writing to w. When color is false every escape
// sequence is dropped.
func NewPlayer(w io.Writer, g *domain.Graph, color bool) *Player {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Player{out: termenv.NewOutput(w, opts...), w: w, g: g}
}

// Changed is the marker appended to items that differ from the previous step.
const Changed = "*"

// Print writes step idx (0-based) of total. prev is the previous snapshot,
// nil for the first step.
func (p *Player) Print(idx, total int, prev *domain.Snapshot, cur domain.Snapshot) {
	var diff *domain.SnapshotDiff
	if prev != nil {
		diff = domain.Diff(prev, &cur)
	}
	changedNodes := map[int]bool{}
	changedEdges := map[domain.EdgeKey]bool{}
	if diff != nil {
		for _, n := range diff.Nodes {
			changedNodes[n] = true
		}
		for _, k := range diff.Edges {
			changedEdges[k] = true
		}
	}

	header := p.out.String(fmt.Sprintf("Step %d/%d", idx+1, total)).Bold()
	fmt.Fprintf(p.w, "%s  %s\n", header, cur.Message)

	nodes := make([]string, 0, len(cur.Nodes))
	for i, n := range cur.Nodes {
		token := p.g.Label(i)
		if n.Text != "" {
			token += "=" + n.Text
		}
		if changedNodes[i] {
			token += Changed
		}
		nodes = append(nodes, p.out.String(token).Foreground(p.out.Color(schema.NodeColorHex(n.Color))).String())
	}
	fmt.Fprintf(p.w, "  nodes: %s\n", strings.Join(nodes, " "))

	seen := map[domain.EdgeKey]bool{}
	var edges []string
	for _, e := range p.g.Edges() {
		k := e.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		st := cur.Edges[k]
		token := fmt.Sprintf("%s-%s(%s)", p.g.Label(k.Lo), p.g.Label(k.Hi), strconv.FormatFloat(e.Weight, 'f', -1, 64))
		if changedEdges[k] {
			token += Changed
		}
		style := p.out.String(token).Foreground(p.out.Color(schema.EdgeColorHex(st.Color)))
		if st.Width > domain.DefaultEdgeWidth {
			style = style.Bold()
		}
		edges = append(edges, style.String())
	}
	if len(edges) > 0 {
		fmt.Fprintf(p.w, "  edges: %s\n", strings.Join(edges, " "))
	}
}

// PrintAll writes every step in order.
func (p *Player) PrintAll(steps []domain.Snapshot) {
	for i := range steps {
		var prev *domain.Snapshot
		if i > 0 {
			prev = &steps[i-1]
		}
		p.Print(i, len(steps), prev, steps[i])
	}
}
