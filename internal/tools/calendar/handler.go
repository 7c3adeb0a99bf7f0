package calendar

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-earnings-calendar"

const (
	defaultLimit = 50

	// Per-symbol calendars honor the detail tier.
	symbolSummaryCount = 5
	symbolFullCount    = 20

	// The market-wide calendar is hard-capped regardless of tier.
	marketWideCap = 10
)

var calendarPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "date"},
	{Name: "symbol"},
	{Name: "eps"},
	{Name: "epsEstimated"},
	{Name: "revenue"},
	{Name: "revenueEstimated"},
	{Name: "time"},
	{Name: "fiscalDateEnding"},
}}

// Handler returns the tool handler function for get-earnings-calendar
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetEarningsCalendar(ctx, request, deps)
	}
}

func handleGetEarningsCalendar(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
	limit := tools.DefaultLimit(args.Limit, defaultLimit)
	detail := curate.ParseDetail(args.Detail)

	slog.Info("fetching earnings calendar", "symbol", symbol, "from", args.From, "to", args.To, "detail", detail)

	path := "/earning_calendar"
	if symbol != "" {
		path = "/historical/earning_calendar/" + url.PathEscape(symbol)
	}
	raw, err := deps.FMPService.Fetch(ctx, path, map[string]string{
		"from":  args.From,
		"to":    args.To,
		"limit": strconv.Itoa(limit),
	})
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	events := curate.Normalize(raw, "")
	if events.Empty() {
		return tools.NoDataResult("earnings events", symbol)
	}

	summaryCount, fullCount := symbolSummaryCount, symbolFullCount
	if symbol == "" {
		summaryCount, fullCount = marketWideCap, marketWideCap
	}
	env := curate.CapCollection(events, detail,
		min(summaryCount, limit), min(fullCount, limit), calendarPolicy)
	return tools.JSONResult(env)
}
