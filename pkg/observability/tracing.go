package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans emitted by the engine.
const TracerName = "github.com/aretw0/stepwise"

// Tracer returns the engine tracer from tp, or from the global provider when tp is nil.
func Tracer(tp trace.TracerProvider) trace.Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(TracerName)
}

// StartRun opens the span covering one run.
func StartRun(ctx context.Context, tracer trace.Tracer, runID, algorithm string, nodes, edges int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "stepwise.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("stepwise.run_id", runID),
			attribute.String("stepwise.algorithm", algorithm),
			attribute.Int("stepwise.graph.nodes", nodes),
			attribute.Int("stepwise.graph.edges", edges),
		),
	)
}

// EndRun records the run outcome on span and ends it.
func EndRun(span trace.Span, steps int, cached bool, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("stepwise.steps", steps),
			attribute.Bool("stepwise.cached", cached),
		)
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
