package quote

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-stock-quote"

var quotePolicy = curate.Policy{Fields: []curate.Field{
	{Name: "symbol"},
	{Name: "name"},
	{Name: "price"},
	{Name: "change"},
	{Name: "changesPercentage", Keys: []string{"changesPercentage", "changePercentage"}},
	{Name: "dayLow"},
	{Name: "dayHigh"},
	{Name: "yearLow"},
	{Name: "yearHigh"},
	{Name: "marketCap"},
	{Name: "volume"},
	{Name: "avgVolume"},
	{Name: "open"},
	{Name: "previousClose"},
	{Name: "eps"},
	{Name: "pe"},
	{Name: "earningsAnnouncement"},
}}

// Handler returns the tool handler function for get-stock-quote
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetStockQuote(ctx, request, deps)
	}
}

func handleGetStockQuote(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	slog.Info("fetching stock quote", "symbol", symbol)

	raw, err := deps.FMPService.Fetch(ctx, "/quote/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	records := curate.Normalize(raw, "")
	if records.Empty() {
		return tools.NoDataResult("quote", symbol)
	}

	return tools.JSONResult(curate.Project(records.Records[0], quotePolicy))
}
