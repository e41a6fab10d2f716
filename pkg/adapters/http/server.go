package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/schema"
)

// MaxBodyBytes caps the size of a run request body.
const MaxBodyBytes = 1 << 20

// Server serves the stepwise HTTP API.
type Server struct {
	Engine ports.Engine

	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	staticDir   string
	corsOrigins []string
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithStaticDir serves the files under dir at "/".
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.staticDir = dir }
}

// WithCORSOrigins restricts the allowed origins. The default allows any.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine ports.Engine, opts ...Option) (http.Handler, error) {
	server := &Server{
		Engine:      engine,
		logger:      slog.Default(),
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(server)
	}

	validator, err := newRequestValidator(engine.Limits())
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(server.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: server.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Run-ID"},
		MaxAge:         300,
	}))

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(validator.middleware(server.logger))
		api.Post("/run_algorithm", server.RunAlgorithm)
		api.Get("/algorithms", server.ListAlgorithms)
	})

	if server.staticDir != "" {
		r.Get("/*", http.FileServer(http.Dir(server.staticDir)).ServeHTTP)
	}
	return r, nil
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Stepwise API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// RunAlgorithm handles the POST /api/run_algorithm request.
func (s *Server) RunAlgorithm(w http.ResponseWriter, r *http.Request) {
	var body schema.RunRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		s.logger.Warn("RunAlgorithm: Invalid request body", "error", err)
		return
	}

	res, err := s.Engine.Execute(r.Context(), body)
	if err != nil {
		status, msg := statusFor(err)
		writeError(w, status, msg)
		return
	}

	w.Header().Set("X-Run-ID", res.RunID)
	writeJSON(w, http.StatusOK, res.Steps, s.logger)
}

// statusFor maps an engine error to an HTTP status and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownAlgorithm):
		return http.StatusBadRequest, "Algorithm not found"
	case domain.IsClientError(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// ListAlgorithms handles the GET /api/algorithms request.
func (s *Server) ListAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Algorithms(), s.logger)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := loadSpec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	resp := map[string]string{
		"app":         "stepwise-http",
		"version":     strings.TrimSpace(stepwise.Version),
		"api_version": apiVersion,
	}
	writeJSON(w, http.StatusOK, resp, s.logger)
}

// -- Helpers --

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(schema.ErrorResponse{Error: msg})
}
