package keymetrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-key-metrics"

var metricsPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "revenuePerShareTTM"},
	{Name: "netIncomePerShareTTM"},
	{Name: "operatingCashFlowPerShareTTM"},
	{Name: "freeCashFlowPerShareTTM"},
	{Name: "cashPerShareTTM"},
	{Name: "bookValuePerShareTTM"},
	{Name: "tangibleBookValuePerShareTTM"},
	{Name: "marketCapTTM"},
	{Name: "enterpriseValueTTM"},
	{Name: "peRatioTTM"},
	{Name: "priceToSalesRatioTTM"},
	{Name: "pbRatioTTM"},
	{Name: "evToSalesTTM"},
	{Name: "evToFreeCashFlowTTM"},
	{Name: "debtToEquityTTM"},
	{Name: "debtToAssetsTTM"},
	{Name: "currentRatioTTM"},
	{Name: "interestCoverageTTM"},
	{Name: "dividendYieldTTM", Keys: []string{"dividendYieldTTM", "dividendYielTTM"}},
	{Name: "payoutRatioTTM"},
	{Name: "roicTTM"},
	{Name: "roeTTM"},
	{Name: "grahamNumberTTM"},
	{Name: "capexPerShareTTM"},
}}

type payload struct {
	Symbol        string        `json:"symbol"`
	Date          any           `json:"date,omitempty"`
	SourceMessage string        `json:"sourceMessage"`
	Metrics       curate.Record `json:"metrics"`
}

// Handler returns the tool handler function for get-key-metrics
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetKeyMetrics(ctx, request, deps)
	}
}

func handleGetKeyMetrics(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	slog.Info("fetching TTM key metrics", "symbol", symbol)

	raw, err := deps.FMPService.Fetch(ctx, "/key-metrics-ttm/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	records := curate.Normalize(raw, "")
	if records.Empty() {
		return tools.NoDataResult("key metrics", symbol)
	}

	rec := records.Records[0]
	curated := curate.Project(rec, metricsPolicy)

	return tools.JSONResult(payload{
		Symbol:        symbol,
		Date:          rec["date"],
		SourceMessage: fmt.Sprintf("Showing %d of %d available TTM key metrics.", len(curated), len(rec)),
		Metrics:       curated,
	})
}
