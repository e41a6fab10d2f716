// Package mcp exposes the stepwise engine as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/pkg/ports"
	"github.com/aretw0/stepwise/pkg/registry"
	"github.com/aretw0/stepwise/pkg/schema"
)

// AlgorithmsURI is the resource listing the algorithm catalog.
const AlgorithmsURI = "stepwise://algorithms"

// RunResponse is the structured result of the run_algorithm tool.
type RunResponse struct {
	RunID     string        `json:"runId" jsonschema_description:"Identifier of this run"`
	Algorithm string        `json:"algorithm" jsonschema_description:"Algorithm that produced the steps"`
	Cached    bool          `json:"cached" jsonschema_description:"True when the steps were served from cache"`
	Steps     []schema.Step `json:"steps" jsonschema_description:"Ordered snapshots, first is the initial state, last is the summary"`
}

// CatalogResponse is the structured result of the list_algorithms tool.
type CatalogResponse struct {
	Algorithms []registry.Algorithm `json:"algorithms" jsonschema_description:"Available algorithms"`
}

// runArgs are the arguments of run_algorithm. Graph may be a JSON string or an object.
type runArgs struct {
	Algorithm string   `mapstructure:"algorithm"`
	Graph     any      `mapstructure:"graph"`
	StartNode *float64 `mapstructure:"start_node"`
}

// Server wraps the stepwise Engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine: engine,
		logger: logger,
		mcpServer: server.NewMCPServer("stepwise-mcp", strings.TrimSpace(stepwise.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	if baseURL == "" {
		baseURL = "http://localhost" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
	})
	mux := http.NewServeMux()
	mux.Handle("/sse", corsHandler(sseServer.SSEHandler()))
	mux.Handle("/message", corsHandler(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) registerTools() {
	// TOOL: run_algorithm
	runTool := mcp.NewTool("run_algorithm",
		mcp.WithDescription("Run a graph algorithm and return every visualization step."),
		mcp.WithString("algorithm", mcp.Required(),
			mcp.Description("Algorithm name"),
			mcp.Enum("dijkstra", "bellman-ford", "kruskal", "prim"),
		),
		mcp.WithString("graph", mcp.Required(),
			mcp.Description(`JSON graph: {"nodes": [0,1,2], "edges": [[0,1,4],[1,2,1]]}`),
		),
		mcp.WithNumber("start_node", mcp.Description("Source node for dijkstra and bellman-ford (default 0)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunAlgorithm))

	// TOOL: list_algorithms
	listTool := mcp.NewTool("list_algorithms",
		mcp.WithDescription("List the available graph algorithms."),
		mcp.WithOutputSchema[CatalogResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListAlgorithms))
}

func (s *Server) handleRunAlgorithm(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	req, err := decodeRunArgs(args)
	if err != nil {
		s.logger.Warn("MCP run_algorithm: invalid arguments", "error", err)
		return RunResponse{}, err
	}

	res, err := s.engine.Execute(ctx, req)
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}
	return RunResponse{
		RunID:     res.RunID,
		Algorithm: res.Algorithm,
		Cached:    res.Cached,
		Steps:     res.Steps,
	}, nil
}

func (s *Server) handleListAlgorithms(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CatalogResponse, error) {
	return CatalogResponse{Algorithms: s.engine.Algorithms()}, nil
}

// decodeRunArgs turns loosely typed tool arguments into a run request.
func decodeRunArgs(args map[string]interface{}) (schema.RunRequest, error) {
	var raw runArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return schema.RunRequest{}, err
	}
	if err := dec.Decode(args); err != nil {
		return schema.RunRequest{}, fmt.Errorf("invalid arguments: %w", err)
	}

	var graphJSON []byte
	switch g := raw.Graph.(type) {
	case nil:
		return schema.RunRequest{}, errors.New("invalid arguments: graph is required")
	case string:
		graphJSON = []byte(g)
	default:
		if graphJSON, err = json.Marshal(g); err != nil {
			return schema.RunRequest{}, fmt.Errorf("invalid arguments: graph: %w", err)
		}
	}

	req := schema.RunRequest{Algorithm: raw.Algorithm}
	if raw.StartNode != nil {
		f := *raw.StartNode
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return schema.RunRequest{}, fmt.Errorf("invalid arguments: start_node %v is not an integer index", f)
		}
		start := int(f)
		req.StartNode = &start
	}
	if err := json.Unmarshal(graphJSON, &req.Graph); err != nil {
		return schema.RunRequest{}, fmt.Errorf("invalid arguments: graph: %w", err)
	}
	return req, nil
}

func (s *Server) registerResources() {
	// EXPOSE: stepwise://algorithms
	s.mcpServer.AddResource(mcp.NewResource(AlgorithmsURI, "Algorithm Catalog",
		mcp.WithResourceDescription("Algorithms that can be traced step by step"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Algorithms())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      AlgorithmsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
