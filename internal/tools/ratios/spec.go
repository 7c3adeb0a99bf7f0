package ratios

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-financial-ratios tool
type Input struct {
	// Symbol is the stock ticker to analyze (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`
}

// Spec returns the MCP tool specification for get-financial-ratios
func Spec() mcp.Tool {
	return mcp.NewTool("get-financial-ratios",
		mcp.WithDescription(`Retrieves trailing-twelve-month (TTM) financial ratios for a stock symbol:
valuation (P/E, PEG, P/B, P/S), profitability (margins, ROE, ROA), liquidity
(current, quick, cash), leverage (debt ratios, interest coverage), and
efficiency (turnover) ratios.

The provider reports far more ratios than are useful at once; the payload is
curated to a fixed analyst-oriented set and states how many of the fetched
ratios were kept. Use get-key-metrics for per-share and enterprise-value
metrics.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Financial Ratios (TTM)"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
