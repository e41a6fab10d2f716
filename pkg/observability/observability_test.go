package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMetrics_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveRun("prim", OutcomeOK, 6, 10*time.Millisecond)
	m.ObserveRun("prim", OutcomeOK, 6, 10*time.Millisecond)
	m.ObserveRun("prim", OutcomeClientError, 0, time.Millisecond)
	m.ObserveCache("hit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues("prim", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("prim", OutcomeClientError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookup.WithLabelValues("hit")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Steps))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRun("x", OutcomeOK, 1, time.Second)
		m.ObserveCache("miss")
	})
}

func TestTracing_RunSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := Tracer(tp)

	_, span := StartRun(context.Background(), tracer, "run-1", "kruskal", 4, 5)
	EndRun(span, 10, true, nil)

	_, span = StartRun(context.Background(), tracer, "run-2", "dijkstra", 1, 0)
	EndRun(span, 0, false, errors.New("boom"))

	ended := sr.Ended()
	require.Len(t, ended, 2)

	ok := ended[0]
	assert.Equal(t, "stepwise.run", ok.Name())
	assert.Equal(t, codes.Ok, ok.Status().Code)
	assert.Contains(t, ok.Attributes(), attribute.String("stepwise.algorithm", "kruskal"))
	assert.Contains(t, ok.Attributes(), attribute.Int("stepwise.steps", 10))
	assert.Contains(t, ok.Attributes(), attribute.Bool("stepwise.cached", true))

	failed := ended[1]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.Equal(t, "boom", failed.Status().Description)
	require.Len(t, failed.Events(), 1)
	assert.Equal(t, "exception", failed.Events()[0].Name)
}

func TestTracer_DefaultsToGlobal(t *testing.T) {
	assert.NotNil(t, Tracer(nil))
}
