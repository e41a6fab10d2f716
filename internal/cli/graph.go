package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/stepwise/internal/presentation/graph"
	"github.com/aretw0/stepwise/pkg/ports"
)

// GraphOptions contains the configuration for the Graph command.
type GraphOptions struct {
	Path      string
	Overrides Overrides
	// Step is the 1-based frame to export; 0 selects the final frame.
	Step int
}

// Graph writes a Mermaid flowchart of one frame of the run.
func Graph(ctx context.Context, eng ports.Engine, opts GraphOptions, w io.Writer) error {
	tr, err := execute(ctx, eng, opts.Path, opts.Overrides)
	if err != nil {
		return err
	}

	idx := len(tr.Steps) - 1
	if opts.Step != 0 {
		if opts.Step < 1 || opts.Step > len(tr.Steps) {
			return fmt.Errorf("step %d out of range [1,%d]", opts.Step, len(tr.Steps))
		}
		idx = opts.Step - 1
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(tr.Graph, tr.Steps[idx]))
	return err
}
