package cli

import (
	"fmt"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/schema"
)

// ValidationReport describes a graph file that passed validation.
type ValidationReport struct {
	Algorithm string
	Nodes     int
	Edges     int
	Start     int
	// StartLabel is the display label of Start.
	StartLabel string
	// NeedsStart is true when Start is read by the algorithm.
	NeedsStart bool
}

func (r ValidationReport) String() string {
	s := fmt.Sprintf("%s on %d nodes and %d edges", r.Algorithm, r.Nodes, r.Edges)
	if r.NeedsStart {
		s += fmt.Sprintf(", starting at node %s", r.StartLabel)
	}
	return s
}

// Validate checks a graph file without running it: the algorithm must be
// registered, the graph well formed and the start node in range.
func Validate(eng ports.Engine, path string, o Overrides) (ValidationReport, error) {
	req, err := LoadRequest(path)
	if err != nil {
		return ValidationReport{}, err
	}
	req = o.Apply(req)
	return validateRequest(eng, req)
}

func validateRequest(eng ports.Engine, req schema.RunRequest) (ValidationReport, error) {
	var needsStart, found bool
	for _, a := range eng.Algorithms() {
		if a.Name == req.Algorithm {
			found, needsStart = true, a.NeedsStart
			break
		}
	}
	if !found {
		return ValidationReport{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, req.Algorithm)
	}

	g, err := req.BuildGraph(eng.Limits())
	if err != nil {
		return ValidationReport{}, err
	}
	report := ValidationReport{
		Algorithm:  req.Algorithm,
		Nodes:      g.NodeCount(),
		Edges:      len(g.Edges()),
		Start:      req.Start(),
		NeedsStart: needsStart,
	}
	if needsStart {
		if err := g.CheckNode(report.Start); err != nil {
			return ValidationReport{}, err
		}
		report.StartLabel = g.Label(report.Start)
	}
	return report, nil
}
