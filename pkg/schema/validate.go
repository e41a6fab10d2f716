package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aretw0/stepwise/pkg/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks r against DefaultLimits.
func Validate(r RunRequest) error {
	return DefaultLimits().Validate(r)
}

// Validate checks the structural rules of a request: at least one node, no
// more nodes and edges than l allows, and edge endpoints inside the node
// list. Failures wrap domain.ErrInvalidGraph. The algorithm name is resolved
// later against the registry.
func (l Limits) Validate(r RunRequest) error {
	var agg AggregateError

	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidGraph, err)
		}
		for _, fe := range fieldErrs {
			agg.Errors = append(agg.Errors, &ValidationError{
				Key:    fieldPath(fe.Namespace()),
				Reason: reason(fe),
			})
		}
	}

	checkMax(&agg, "graph.nodes", r.Graph.Nodes, l.MaxNodes)
	if !checkMax(&agg, "graph.edges", r.Graph.Edges, l.MaxEdges) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidGraph, &agg)
	}

	n := len(r.Graph.Nodes)
	for i, e := range r.Graph.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			agg.Errors = append(agg.Errors, &ValidationError{
				Key:    fmt.Sprintf("graph.edges[%d]", i),
				Reason: fmt.Sprintf("endpoints %d-%d must be in [0,%d)", e.U, e.V, n),
			})
		}
	}

	if len(agg.Errors) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidGraph, &agg)
	}
	return nil
}

// fieldPath drops the struct name from a validator namespace:
// "RunRequest.graph.nodes" becomes "graph.nodes".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
