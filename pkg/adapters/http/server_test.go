package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/internal/logging"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/schema"
)

const sampleBody = `{
  "algorithm": "dijkstra",
  "graph": {
    "nodes": [0, 1, 2, 3],
    "edges": [[0, 1, 1], [1, 2, 2], [2, 3, 1], [0, 3, 4]],
    "startNode": 0
  }
}`

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	opts = append([]Option{WithLogger(logging.NewNop())}, opts...)
	h, err := NewHandler(stepwise.New(), opts...)
	require.NoError(t, err)
	return h
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/run_algorithm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp schema.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestRunAlgorithm_Success(t *testing.T) {
	h := newTestHandler(t)
	w := post(t, h, sampleBody)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Run-ID"))

	var steps []schema.Step
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &steps))
	require.NotEmpty(t, steps)

	first := steps[0]
	assert.Equal(t, "Starting Dijkstra's Algorithm from node A.", first.Message)
	assert.Equal(t, schema.NodeView{Color: "#f59e0b", Text: "0"}, first.Nodes["0"])
	assert.Equal(t, schema.EdgeView{Color: "#94a3b8", Width: 3}, first.Edges["0-1"])

	final := steps[len(steps)-1]
	assert.Equal(t, "Dijkstra's Algorithm finished.", final.Message)
	assert.Equal(t, "4", final.Nodes["3"].Text)
}

func TestRunAlgorithm_ClientErrors(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "unknown algorithm",
			body:    `{"algorithm": "floyd", "graph": {"nodes": [0]}}`,
			message: "Algorithm not found",
		},
		{
			name:    "missing algorithm",
			body:    `{"graph": {"nodes": [0]}}`,
			message: "Algorithm not found",
		},
		{
			name: "malformed json",
			body: `{"algorithm": `,
		},
		{
			name: "empty node list",
			body: `{"algorithm": "prim", "graph": {"nodes": []}}`,
		},
		{
			name: "edge endpoint out of range",
			body: `{"algorithm": "prim", "graph": {"nodes": [0, 1], "edges": [[0, 5, 1]]}}`,
		},
		{
			name: "negative weight for dijkstra",
			body: `{"algorithm": "dijkstra", "graph": {"nodes": [0, 1], "edges": [[0, 1, -2]]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			msg := decodeError(t, w)
			assert.NotEmpty(t, msg)
			if tt.message != "" {
				assert.Equal(t, tt.message, msg)
			}
		})
	}
}

func graphBody(algorithm string, nodes, edges int) string {
	ids := make([]string, nodes)
	for i := range ids {
		ids[i] = fmt.Sprint(i)
	}
	es := make([]string, edges)
	for i := range es {
		es[i] = fmt.Sprintf("[0, %d, 1]", 1+i%(nodes-1))
	}
	return fmt.Sprintf(`{"algorithm": %q, "graph": {"nodes": [%s], "edges": [%s]}}`,
		algorithm, strings.Join(ids, ", "), strings.Join(es, ", "))
}

func TestRunAlgorithm_GraphLimits(t *testing.T) {
	h := newTestHandler(t)

	t.Run("too many nodes", func(t *testing.T) {
		w := post(t, h, graphBody("prim", schema.DefaultMaxNodes+1, 1))
		require.Equal(t, http.StatusBadRequest, w.Code)
		msg := decodeError(t, w)
		assert.Equal(t, "request body does not match schema at graph.nodes: maximum number of items is 26", msg)
	})

	t.Run("too many edges", func(t *testing.T) {
		w := post(t, h, graphBody("kruskal", 5, schema.DefaultMaxEdges+1))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w), "graph.edges")
	})

	t.Run("at the limit", func(t *testing.T) {
		w := post(t, h, graphBody("kruskal", schema.DefaultMaxNodes, schema.DefaultMaxEdges))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("configured limits replace the document defaults", func(t *testing.T) {
		eng := stepwise.New(stepwise.WithLimits(schema.Limits{MaxNodes: 40, MaxEdges: 5}))
		h, err := NewHandler(eng, WithLogger(logging.NewNop()))
		require.NoError(t, err)

		w := post(t, h, graphBody("prim", 30, 5))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = post(t, h, graphBody("prim", 30, 6))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRunAlgorithm_ValidationMessageIsOneLine(t *testing.T) {
	h := newTestHandler(t)

	w := post(t, h, `{"algorithm": "prim", "graph": {"nodes": []}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	msg := decodeError(t, w)
	assert.Equal(t, "request body does not match schema at graph.nodes: minimum number of items is 1", msg)
	assert.NotContains(t, msg, "\n")
	assert.NotContains(t, msg, "Schema:")
}

type failingEngine struct{}

func (failingEngine) Execute(context.Context, schema.RunRequest) (*schema.RunResult, error) {
	return nil, errors.New("algorithm panicked: boom")
}

func (failingEngine) Algorithms() []registry.Algorithm { return nil }

func (failingEngine) Limits() schema.Limits { return schema.DefaultLimits() }

func TestRunAlgorithm_EngineFailure(t *testing.T) {
	h, err := NewHandler(failingEngine{}, WithLogger(logging.NewNop()))
	require.NoError(t, err)

	w := post(t, h, sampleBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "algorithm panicked: boom", decodeError(t, w))
}

func TestListAlgorithms(t *testing.T) {
	w := get(newTestHandler(t), "/api/algorithms")
	require.Equal(t, http.StatusOK, w.Code)

	var algs []registry.Algorithm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &algs))

	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"bellman-ford", "dijkstra", "kruskal", "prim"}, names)
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler(t)

	w := get(h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = get(h, "/info")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "stepwise-http", info["app"])
	assert.Equal(t, stepwise.Version, info["version"])
	assert.Equal(t, "1.0.0", info["api_version"])
}

func TestDocs(t *testing.T) {
	h := newTestHandler(t)

	w := get(h, "/openapi.yaml")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/run_algorithm")

	w = get(h, "/swagger")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SwaggerUIBundle")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := NewHandler(stepwise.New(stepwise.WithMetrics(reg)), WithLogger(logging.NewNop()), WithMetrics(reg))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, post(t, h, sampleBody).Code)

	w := get(h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `stepwise_runs_total{algorithm="dijkstra",outcome="ok"} 1`)
}

func TestMetricsEndpoint_DisabledByDefault(t *testing.T) {
	w := get(newTestHandler(t), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/run_algorithm", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>stepwise</h1>"), 0o644))

	h := newTestHandler(t, WithStaticDir(dir))
	w := get(h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stepwise")

	// API routes still win over the static tree.
	assert.Equal(t, http.StatusOK, get(h, "/health").Code)
}
