package indicator

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-technical-indicator"

const (
	defaultType       = "sma"
	defaultInterval   = "daily"
	defaultTimePeriod = 10

	// recentCount is how many of the latest indicator values are surfaced.
	recentCount = 3
)

// Handler returns the tool handler function for get-technical-indicator
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetTechnicalIndicator(ctx, request, deps)
	}
}

func handleGetTechnicalIndicator(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	symbol := tools.NormalizeSymbol(args.Symbol)
	if symbol == "" {
		errMessage := "symbol parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	indicatorType := args.Type
	if indicatorType == "" {
		indicatorType = defaultType
	}
	interval := args.Interval
	if interval == "" {
		interval = defaultInterval
	}
	timePeriod := tools.DefaultLimit(args.TimePeriod, defaultTimePeriod)

	slog.Info("fetching technical indicator",
		"symbol", symbol, "type", indicatorType, "interval", interval, "timePeriod", timePeriod)

	path := "/technical_indicator/" + url.PathEscape(interval) + "/" + url.PathEscape(symbol)
	raw, err := deps.FMPService.Fetch(ctx, path, map[string]string{
		"type":   indicatorType,
		"period": strconv.Itoa(timePeriod),
	})
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	// Intraday intervals can come back grouped by session; Normalize flattens
	// that shape and the re-sort inside CapCollection restores date order.
	values := curate.Normalize(raw, "")
	if values.Empty() {
		return tools.NoDataResult(indicatorType+" values", symbol)
	}

	policy := curate.Policy{Fields: []curate.Field{
		{Name: "date"},
		{Name: "close"},
		{Name: indicatorType},
	}}
	return tools.JSONResult(curate.CapCollection(values, curate.DetailSummary, recentCount, recentCount, policy))
}
