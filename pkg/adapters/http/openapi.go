package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aretw0/stepwise/pkg/schema"
)

//go:embed openapi.yaml
var rawSpec []byte

// loadSpec parses the embedded OpenAPI document once.
var loadSpec = sync.OnceValues(parseSpec)

func parseSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI spec: %w", err)
	}
	return doc, nil
}

// requestValidator checks requests against the embedded document.
// Routes the document does not describe pass through untouched.
type requestValidator struct {
	router routers.Router
}

// newRequestValidator builds a validator whose graph size bounds follow
// limits instead of the defaults written in the document.
func newRequestValidator(limits schema.Limits) (*requestValidator, error) {
	doc, err := parseSpec()
	if err != nil {
		return nil, err
	}
	if err := applyLimits(doc, limits); err != nil {
		return nil, err
	}
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}
	return &requestValidator{router: router}, nil
}

func applyLimits(doc *openapi3.T, l schema.Limits) error {
	if doc.Components == nil || doc.Components.Schemas["Graph"] == nil || doc.Components.Schemas["Graph"].Value == nil {
		return errors.New("OpenAPI spec has no Graph schema")
	}
	graph := doc.Components.Schemas["Graph"].Value
	setMaxItems(graph.Properties["nodes"], l.MaxNodes)
	setMaxItems(graph.Properties["edges"], l.MaxEdges)
	return nil
}

func setMaxItems(ref *openapi3.SchemaRef, max int) {
	if ref == nil || ref.Value == nil {
		return
	}
	if max <= 0 {
		ref.Value.MaxItems = nil
		return
	}
	n := uint64(max)
	ref.Value.MaxItems = &n
}

// validationMessage reduces a kin-openapi error to one line naming the
// offending field, leaving out the schema dump.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return "invalid request"
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		msg := "request body does not match schema"
		if ptr := schemaErr.JSONPointer(); len(ptr) > 0 {
			msg += " at " + strings.Join(ptr, ".")
		}
		return msg + ": " + schemaErr.Reason
	}

	switch {
	case reqErr.Reason != "":
		return reqErr.Reason
	case reqErr.Err != nil:
		return firstLine(reqErr.Err.Error())
	default:
		return "invalid request"
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (v *requestValidator) middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := v.router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Warn("request rejected by OpenAPI validation", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusBadRequest, validationMessage(err))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", chimiddleware.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
