package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/quantfold/fmp-mcp/docs"
	"github.com/quantfold/fmp-mcp/internal/analytics"
	"github.com/quantfold/fmp-mcp/internal/config"
	"github.com/quantfold/fmp-mcp/internal/fmp"
)

// Version is stamped into the MCP server info and startup analytics.
const Version = "0.1.0"

// FMPMCPServer wires the FMP client, analytics, and the MCP transport into
// one stdio server.
type FMPMCPServer struct {
	config     *config.Config
	fmpService fmp.Service
	anService  analytics.Service
	MCPServer  *server.MCPServer
}

// New builds a fully wired server from the loaded configuration.
func New(cfg *config.Config) *FMPMCPServer {
	tracker := analytics.NewTracker(cfg.AnalyticsEndpoint, nil)
	if cfg.DisableAnalytics {
		tracker.Disable()
	}

	s := &FMPMCPServer{
		config:     cfg,
		fmpService: fmp.NewClient(cfg.BaseURL, cfg.APIKey, cfg.HTTPTimeout),
		anService:  tracker,
		MCPServer: server.NewMCPServer(
			"fmp-mcp",
			Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
			server.WithInstructions(docs.ServerInstructions),
		),
	}
	s.registerTools()
	return s
}

// Serve runs the MCP server on stdio until the client disconnects.
func (s *FMPMCPServer) Serve() error {
	s.anService.EmitEvent(s.anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:   Version,
		Transport: "stdio",
	}))
	slog.Info("serving MCP on stdio", "version", Version)
	return server.ServeStdio(s.MCPServer)
}
