package algorithms

import (
	"strconv"

	"github.com/aretw0/stepwise/pkg/domain"
)

// num renders a weight, distance or cost in its shortest exact form:
// 3, 2.5, -1.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// newRun seeds a sequence with the initialized graph after intro has set the
// opening labels and message. The seed is always the first recorded step.
func newRun(g *domain.Graph, intro func(s *domain.Snapshot)) *domain.Sequence {
	initial := domain.NewSnapshot(g)
	initial.Message = "Graph initialized."
	intro(&initial)
	return domain.NewSequence(initial)
}
