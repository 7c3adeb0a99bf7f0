package search

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "search-symbol"

const defaultLimit = 10

var searchPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "symbol"},
	{Name: "name"},
	{Name: "currency"},
	{Name: "stockExchange"},
	{Name: "exchangeShortName"},
}}

// Handler returns the tool handler function for search-symbol
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSearchSymbol(ctx, request, deps)
	}
}

func handleSearchSymbol(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if err := deps.Validate(); err != nil {
		slog.Error(err.Error())
		return mcp.NewToolResultError(err.Error()), nil
	}
	deps.EmitToolEvent(toolName)

	var args Input
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	query := strings.TrimSpace(args.Query)
	if query == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	limit := tools.DefaultLimit(args.Limit, defaultLimit)

	slog.Info("searching symbols", "query", query, "limit", limit)

	raw, err := deps.FMPService.Fetch(ctx, "/search", map[string]string{
		"query": query,
		"limit": strconv.Itoa(limit),
	})
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	matches := curate.Normalize(raw, "")
	if matches.Empty() {
		return tools.NoDataResult("symbol matches", query)
	}

	// No date field here; the stable sort keeps the provider's relevance
	// order, so the cap surfaces the best matches.
	env := curate.CapCollection(matches, curate.DetailSummary, limit, limit, searchPolicy)
	return tools.JSONResult(env)
}
