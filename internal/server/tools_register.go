package server

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/calendar"
	"github.com/quantfold/fmp-mcp/internal/tools/dcf"
	"github.com/quantfold/fmp-mcp/internal/tools/dividends"
	"github.com/quantfold/fmp-mcp/internal/tools/estimates"
	"github.com/quantfold/fmp-mcp/internal/tools/history"
	"github.com/quantfold/fmp-mcp/internal/tools/indicator"
	"github.com/quantfold/fmp-mcp/internal/tools/keymetrics"
	"github.com/quantfold/fmp-mcp/internal/tools/news"
	"github.com/quantfold/fmp-mcp/internal/tools/profile"
	"github.com/quantfold/fmp-mcp/internal/tools/quote"
	"github.com/quantfold/fmp-mcp/internal/tools/ratios"
	"github.com/quantfold/fmp-mcp/internal/tools/search"
)

// registerTools registers all MCP tools on the provided MCP server. Every
// tool here is a read-only view over the data provider; none mutates state.
func (s *FMPMCPServer) registerTools() {
	s.MCPServer.AddTools(s.getEnabledTools()...)
}

type toolCategory int

const (
	companyCategory  toolCategory = 0 // Company fundamentals and valuation
	marketCategory   toolCategory = 1 // Prices, indicators, and news
	calendarCategory toolCategory = 2 // Dated event feeds
	analysisCategory toolCategory = 3 // Analyst coverage
	searchCategory   toolCategory = 4 // Symbol discovery
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
}

func (s *FMPMCPServer) getEnabledTools() []server.ServerTool {
	deps := &tools.ToolDependencies{
		FMPService:       s.fmpService,
		AnalyticsService: s.anService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	enabledTools := make([]server.ServerTool, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *FMPMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	return []ToolDefinition{
		// Company Category/Section
		{
			category: companyCategory,
			definition: server.ServerTool{
				Tool:    profile.Spec(),
				Handler: profile.Handler(deps),
			},
		},
		{
			category: companyCategory,
			definition: server.ServerTool{
				Tool:    quote.Spec(),
				Handler: quote.Handler(deps),
			},
		},
		{
			category: companyCategory,
			definition: server.ServerTool{
				Tool:    dcf.Spec(),
				Handler: dcf.Handler(deps),
			},
		},
		{
			category: companyCategory,
			definition: server.ServerTool{
				Tool:    ratios.Spec(),
				Handler: ratios.Handler(deps),
			},
		},
		{
			category: companyCategory,
			definition: server.ServerTool{
				Tool:    keymetrics.Spec(),
				Handler: keymetrics.Handler(deps),
			},
		},
		// Market Category/Section
		{
			category: marketCategory,
			definition: server.ServerTool{
				Tool:    history.Spec(),
				Handler: history.Handler(deps),
			},
		},
		{
			category: marketCategory,
			definition: server.ServerTool{
				Tool:    indicator.Spec(),
				Handler: indicator.Handler(deps),
			},
		},
		{
			category: marketCategory,
			definition: server.ServerTool{
				Tool:    news.Spec(),
				Handler: news.Handler(deps),
			},
		},
		// Calendar Category/Section
		{
			category: calendarCategory,
			definition: server.ServerTool{
				Tool:    calendar.Spec(),
				Handler: calendar.Handler(deps),
			},
		},
		{
			category: calendarCategory,
			definition: server.ServerTool{
				Tool:    dividends.Spec(),
				Handler: dividends.Handler(deps),
			},
		},
		// Analysis Category/Section
		{
			category: analysisCategory,
			definition: server.ServerTool{
				Tool:    estimates.Spec(),
				Handler: estimates.Handler(deps),
			},
		},
		// Search Category/Section
		{
			category: searchCategory,
			definition: server.ServerTool{
				Tool:    search.Spec(),
				Handler: search.Handler(deps),
			},
		},
	}
}
