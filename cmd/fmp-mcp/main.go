package main

import (
	"log/slog"
	"os"

	"github.com/quantfold/fmp-mcp/internal/config"
	"github.com/quantfold/fmp-mcp/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Stdout carries the MCP protocol; all logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if err := server.New(cfg).Serve(); err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
