package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/stepwise/internal/presentation/tui"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/schema"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Path      string
	Overrides Overrides
	JSON      bool
	Summary   bool
	Color     bool
}

// trace is a finished run decoded back into domain snapshots.
type trace struct {
	Request schema.RunRequest
	Result  *schema.RunResult
	Graph   *domain.Graph
	Steps   []domain.Snapshot
}

// execute loads the graph file and runs it through eng.
func execute(ctx context.Context, eng ports.Engine, path string, o Overrides) (*trace, error) {
	req, err := LoadRequest(path)
	if err != nil {
		return nil, err
	}
	req = o.Apply(req)

	res, err := eng.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	g, err := req.BuildGraph(eng.Limits())
	if err != nil {
		return nil, err
	}
	steps, err := schema.DecodeSteps(res.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to decode steps: %w", err)
	}
	return &trace{Request: req, Result: res, Graph: g, Steps: steps}, nil
}

// Run handles the 'run' command: it prints every step, the raw JSON, or a
// markdown summary of the final state.
func Run(ctx context.Context, eng ports.Engine, opts RunOptions, w io.Writer) error {
	tr, err := execute(ctx, eng, opts.Path, opts.Overrides)
	if err != nil {
		return err
	}

	switch {
	case opts.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tr.Result.Steps)

	case opts.Summary:
		style := glamour.WithStandardStyle("notty")
		if opts.Color {
			style = glamour.WithAutoStyle()
		}
		render, err := tui.NewRenderer(style, glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		out, err := render(tui.Summary(title(eng, tr.Result.Algorithm), tr.Graph, tr.Steps))
		if err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
		_, err = fmt.Fprint(w, out)
		return err

	default:
		tui.NewPlayer(w, tr.Graph, opts.Color).PrintAll(tr.Steps)
		return nil
	}
}

// title returns the display title of the named algorithm.
func title(eng ports.Engine, name string) string {
	for _, a := range eng.Algorithms() {
		if a.Name == name && a.Title != "" {
			return a.Title
		}
	}
	return name
}
