package dcf

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-dcf-valuation"

// The provider reports the current price as "Stock Price" on this endpoint
// while every other endpoint uses camelCase; the chain absorbs both.
var stockPriceKeys = []string{"stockPrice", "Stock Price", "price"}

// Handler returns the tool handler function for get-dcf-valuation
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetDCFValuation(ctx, request, deps)
	}
}

func handleGetDCFValuation(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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

	slog.Info("fetching DCF valuation", "symbol", symbol)

	raw, err := deps.FMPService.Fetch(ctx, "/discounted-cash-flow/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	records := curate.Normalize(raw, "")
	if records.Empty() {
		return tools.NoDataResult("DCF valuation", symbol)
	}

	rec := records.Records[0]
	dcfValue, hasDCF := curate.Float(rec["dcf"])
	if !hasDCF {
		return tools.NoDataResult("DCF valuation", symbol)
	}

	stockPrice, upside := resolveUpside(rec, dcfValue)

	payload := curate.Envelope{
		Message: upsideMessage(symbol, upside),
		Data: curate.Record{
			"symbol":                 symbol,
			"date":                   rec["date"],
			"dcfValue":               curate.Round2(dcfValue),
			"stockPrice":             stockPrice,
			"potentialUpsidePercent": upside,
		},
	}
	return tools.JSONResult(payload)
}

// resolveUpside extracts the current price through the alias chain and derives
// the upside percentage. A missing or zero price yields a nil upside.
func resolveUpside(rec curate.Record, dcfValue float64) (any, any) {
	for _, key := range stockPriceKeys {
		price, ok := curate.Float(rec[key])
		if !ok {
			continue
		}
		if price > 0 {
			return price, curate.Round2((dcfValue - price) / price * 100)
		}
		return price, nil
	}
	return nil, nil
}

func upsideMessage(symbol string, upside any) string {
	pct, ok := curate.Float(upside)
	if !ok {
		return fmt.Sprintf("DCF valuation for %s. Potential upside could not be calculated (current price unavailable or zero).", symbol)
	}
	if pct >= 0 {
		return fmt.Sprintf("DCF valuation for %s suggests a potential upside of %.2f%% versus the current price.", symbol, pct)
	}
	return fmt.Sprintf("DCF valuation for %s suggests a potential downside of %.2f%% versus the current price.", symbol, -pct)
}
