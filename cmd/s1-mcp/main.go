package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/halcyonsec/s1-mcp/internal/config"
	"github.com/halcyonsec/s1-mcp/pkg/client"
	"github.com/halcyonsec/s1-mcp/pkg/mcpsrv"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	// Configuration is loaded from environment variables:
	// - SENTINELONE_API_BASE: management console URL (required)
	// - SENTINELONE_API_KEY: API token (required)
	// - MCP_TRANSPORT: stdio (default) or http
	// - MCP_AUTH_TOKEN: bearer token, required for http transport
	// - LOG_LEVEL, LOG_FILE, DV_POLL_INTERVAL_MS, etc. (see internal/config)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	// Create SentinelOne API client
	s1Client := client.New(cfg.APIBase, cfg.APIKey, client.WithTimeout(cfg.HTTPClientTimeout))

	// Create MCP server with all builtin tools
	server, err := mcpsrv.NewServer(s1Client, mcpsrv.WithConfig(cfg))
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}
	defer server.Close()

	slog.Info("starting sentinelone MCP server", "transport", cfg.Transport)
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
