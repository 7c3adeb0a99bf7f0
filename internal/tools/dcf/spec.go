package dcf

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-dcf-valuation tool
type Input struct {
	// Symbol is the stock ticker to value (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`
}

// Spec returns the MCP tool specification for get-dcf-valuation
func Spec() mcp.Tool {
	return mcp.NewTool("get-dcf-valuation",
		mcp.WithDescription(`Retrieves the discounted cash flow (DCF) valuation for a stock symbol and
compares it against the current stock price, reporting the potential upside or
downside as a percentage.

A DCF value above the current price suggests undervaluation (upside); below
suggests overvaluation (downside). The comparison cannot be calculated when
the current price is unavailable or zero.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get DCF Valuation"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
