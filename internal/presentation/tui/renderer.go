package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/stepwise/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// Without options it detects a light or dark background.
func NewRenderer(opts ...glamour.TermRendererOption) (func(string) (string, error), error) {
	if len(opts) == 0 {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// Summary builds a markdown report of a finished run: the final message,
// the per-node values and the state of every edge.
func Summary(title string, g *domain.Graph, steps []domain.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(steps) == 0 {
		sb.WriteString("_No steps were recorded._\n")
		return sb.String()
	}

	final := steps[len(steps)-1]
	fmt.Fprintf(&sb, "**Steps:** %d  \n**Nodes:** %d  \n**Edges:** %d\n\n", len(steps), g.NodeCount(), len(g.Edges()))
	fmt.Fprintf(&sb, "> %s\n\n", final.Message)

	sb.WriteString("## Nodes\n\n| Node | Value | State |\n|---|---|---|\n")
	for i, n := range final.Nodes {
		val := n.Text
		if val == "" {
			val = "-"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", g.Label(i), val, n.Color)
	}

	if len(g.Edges()) > 0 {
		sb.WriteString("\n## Edges\n\n| Edge | Weight | State |\n|---|---|---|\n")
		for _, e := range g.Edges() {
			st := final.Edges[e.Key()]
			fmt.Fprintf(&sb, "| %s-%s | %s | %s |\n",
				g.Label(e.U), g.Label(e.V), strconv.FormatFloat(e.Weight, 'f', -1, 64), st.Color)
		}
	}
	return sb.String()
}
