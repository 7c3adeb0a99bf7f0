package news

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-stock-news"

const (
	defaultLimit = 15
	summaryCount = 3
	fullCount    = 10

	// snippetMaxLen bounds each article snippet.
	snippetMaxLen = 200
)

var newsPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "publishedDate"},
	{Name: "title"},
	{Name: "site"},
	{Name: "text", MaxLen: snippetMaxLen},
	{Name: "url"},
}}

// Handler returns the tool handler function for get-stock-news
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetStockNews(ctx, request, deps)
	}
}

func handleGetStockNews(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	slog.Info("fetching stock news", "symbol", symbol, "limit", limit, "detail", detail)

	raw, err := deps.FMPService.Fetch(ctx, "/stock_news", map[string]string{
		"tickers": symbol,
		"limit":   strconv.Itoa(limit),
	})
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	articles := curate.Normalize(raw, "")
	if articles.Empty() {
		return tools.NoDataResult("news articles", symbol)
	}

	// A caller-supplied limit tightens the family caps, never widens them.
	env := curate.CapCollection(articles, detail,
		min(summaryCount, limit), min(fullCount, limit), newsPolicy, "publishedDate")
	return tools.JSONResult(env)
}
