package dividends

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-dividend-history"

const (
	defaultLimit = 10
	summaryCount = 5
	fullCount    = 10
)

var dividendPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "date"},
	{Name: "dividend", Keys: []string{"dividend", "adjDividend"}},
	{Name: "recordDate"},
	{Name: "paymentDate"},
	{Name: "declarationDate"},
}}

// Handler returns the tool handler function for get-dividend-history
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetDividendHistory(ctx, request, deps)
	}
}

func handleGetDividendHistory(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
	limit := tools.DefaultLimit(args.Limit, defaultLimit)
	detail := curate.ParseDetail(args.Detail)

	slog.Info("fetching dividend history", "symbol", symbol, "limit", limit, "detail", detail)

	raw, err := deps.FMPService.Fetch(ctx, "/historical-price-full/stock_dividend/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	payments := curate.Normalize(raw, "historical")
	if payments.Empty() {
		return tools.NoDataResult("dividend payments", symbol)
	}

	env := curate.CapCollection(payments, detail,
		min(summaryCount, limit), min(fullCount, limit), dividendPolicy)
	return tools.JSONResult(env)
}
