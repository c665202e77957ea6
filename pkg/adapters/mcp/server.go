// Package mcp exposes the ChillMCP engine as a Model Context Protocol server
// over stdio or SSE.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/chillmcp"
	"github.com/aretw0/chillmcp/internal/logging"
	"github.com/aretw0/chillmcp/pkg/domain"
)

// Engine defines the interface required by the MCP server to run breaks.
type Engine interface {
	Breaks() []domain.BreakProfile
	PerformBreak(name string) (domain.BreakResult, error)
	Status() domain.Snapshot
}

// Server wraps the ChillMCP Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the adapter's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance with one tool per break profile
// plus the check_status query.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("chillmcp", strings.TrimSpace(chillmcp.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, alongside /healthz
// and /metrics endpoints.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	for _, profile := range s.engine.Breaks() {
		s.mcpServer.AddTool(mcp.NewTool(profile.Name,
			mcp.WithDescription(profile.Description),
		), s.breakHandler(profile.Name))
	}

	s.mcpServer.AddTool(mcp.NewTool("check_status",
		mcp.WithDescription("Check the current stress and boss alert levels without taking a break."),
	), s.handleStatus)
}

// breakHandler binds a tool callback to a break action name. The handler
// blocks while the gate serves a boss-alert penalty; that delay is the
// designed throttle, not an error.
func (s *Server) breakHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.engine.PerformBreak(name)
		if err != nil {
			s.logger.Warn("break rejected", "action", name, "err", err)
			return mcp.NewToolResultError(fmt.Sprintf("break failed: %v", err)), nil
		}
		return mcp.NewToolResultText(res.Render()), nil
	}
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.engine.Status().Render()), nil
}
