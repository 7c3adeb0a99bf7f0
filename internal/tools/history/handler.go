package history

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-price-history"

// Handler returns the tool handler function for get-price-history
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetPriceHistory(ctx, request, deps)
	}
}

func handleGetPriceHistory(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
	detail := curate.ParseDetail(args.Detail)

	slog.Info("fetching price history", "symbol", symbol, "from", args.From, "to", args.To, "detail", detail)

	query := map[string]string{
		"from": args.From,
		"to":   args.To,
	}
	raw, err := deps.FMPService.Fetch(ctx, "/historical-price-full/"+url.PathEscape(symbol), query)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	// The payload wraps the bars under "historical" next to the symbol.
	points := curate.Normalize(raw, "historical")
	if points.Empty() {
		return tools.NoDataResult("price history", symbol)
	}

	return tools.JSONResult(curate.SummarizeSeries(points, detail))
}
