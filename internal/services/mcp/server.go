package mcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"wordlife/internal/platform/timeouts"
)

const (
	serverName    = "wordlife"
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string
	Deps      Deps
}

// NewServer creates an MCP server with every tool registered.
func NewServer(deps Deps) *mcp.Server {
	deps = deps.withDefaults()
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, SimulateWordTool(), SimulateWordHandler(deps))
	mcp.AddTool(server, HighestRandomScoreTool(), HighestRandomScoreHandler(deps))
	mcp.AddTool(server, InterpretPromptTool(), InterpretPromptHandler(deps))
	return server
}

// Run serves MCP on the configured transport until the context ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return serveWithTransport(ctx, NewServer(cfg.Deps), &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

func serveWithTransport(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	err := server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}
	server := NewServer(cfg.Deps)
	httpServer := &http.Server{
		Addr: httpAddr,
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	log.Printf("MCP HTTP server listening on %s", httpAddr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}
