package ratios

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-financial-ratios"

// ratiosPolicy is the curated analyst-oriented subset of the ~55 TTM ratios
// the provider reports. The dividendYield chain covers the provider's
// long-standing "dividendYielTTM" typo alongside the corrected key.
var ratiosPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "peRatioTTM"},
	{Name: "pegRatioTTM"},
	{Name: "priceToBookRatioTTM"},
	{Name: "priceToSalesRatioTTM"},
	{Name: "priceToFreeCashFlowsRatioTTM"},
	{Name: "enterpriseValueMultipleTTM"},
	{Name: "grossProfitMarginTTM"},
	{Name: "operatingProfitMarginTTM"},
	{Name: "netProfitMarginTTM"},
	{Name: "returnOnAssetsTTM"},
	{Name: "returnOnEquityTTM"},
	{Name: "returnOnCapitalEmployedTTM"},
	{Name: "currentRatioTTM"},
	{Name: "quickRatioTTM"},
	{Name: "cashRatioTTM"},
	{Name: "debtRatioTTM"},
	{Name: "debtEquityRatioTTM"},
	{Name: "interestCoverageTTM"},
	{Name: "dividendYieldTTM", Keys: []string{"dividendYieldTTM", "dividendYielTTM"}},
	{Name: "payoutRatioTTM"},
	{Name: "assetTurnoverTTM"},
	{Name: "inventoryTurnoverTTM"},
	{Name: "receivablesTurnoverTTM"},
}}

type payload struct {
	Symbol        string        `json:"symbol"`
	Date          any           `json:"date,omitempty"`
	SourceMessage string        `json:"sourceMessage"`
	Ratios        curate.Record `json:"ratios"`
}

// Handler returns the tool handler function for get-financial-ratios
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetFinancialRatios(ctx, request, deps)
	}
}

func handleGetFinancialRatios(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	slog.Info("fetching TTM ratios", "symbol", symbol)

	raw, err := deps.FMPService.Fetch(ctx, "/ratios-ttm/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	records := curate.Normalize(raw, "")
	if records.Empty() {
		return tools.NoDataResult("financial ratios", symbol)
	}

	rec := records.Records[0]
	curated := curate.Project(rec, ratiosPolicy)

	return tools.JSONResult(payload{
		Symbol:        symbol,
		Date:          rec["date"],
		SourceMessage: fmt.Sprintf("Showing %d of %d available TTM ratios.", len(curated), len(rec)),
		Ratios:        curated,
	})
}
