package keymetrics

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-key-metrics tool
type Input struct {
	// Symbol is the stock ticker to analyze (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`
}

// Spec returns the MCP tool specification for get-key-metrics
func Spec() mcp.Tool {
	return mcp.NewTool("get-key-metrics",
		mcp.WithDescription(`Retrieves trailing-twelve-month (TTM) key metrics for a stock symbol:
per-share figures (revenue, earnings, free cash flow, book value),
enterprise-value multiples, returns on capital, and the Graham number.

The payload is curated to a fixed set and states how many of the fetched
metrics were kept. Use get-financial-ratios for classic ratio analysis.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Key Metrics (TTM)"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
