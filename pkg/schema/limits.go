package schema

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Default graph size limits, matching what the web client lets users draw.
const (
	DefaultMaxNodes = 26
	DefaultMaxEdges = 50
)

// Limits bounds the size of a request graph. Every frame copies the state of
// the whole graph, so the memory of a run grows with both counts.
// A zero field means no limit.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// DefaultLimits returns the limits applied when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxNodes: DefaultMaxNodes, MaxEdges: DefaultMaxEdges}
}

// checkMax appends a ValidationError under key when v holds more than max items.
func checkMax(agg *AggregateError, key string, v any, max int) bool {
	if max <= 0 {
		return true
	}
	err := validate.Var(v, "max="+strconv.Itoa(max))
	if err == nil {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		agg.Errors = append(agg.Errors, &ValidationError{Key: key, Reason: err.Error()})
		return false
	}
	for _, fe := range fieldErrs {
		agg.Errors = append(agg.Errors, &ValidationError{Key: key, Reason: reason(fe)})
	}
	return false
}
