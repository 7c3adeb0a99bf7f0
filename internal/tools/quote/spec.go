package quote

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-stock-quote tool
type Input struct {
	// Symbol is the stock ticker to quote (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`
}

// Spec returns the MCP tool specification for get-stock-quote
func Spec() mcp.Tool {
	return mcp.NewTool("get-stock-quote",
		mcp.WithDescription(`Retrieves the latest quote for a stock symbol: price, day change, day and
52-week ranges, volume, market cap, EPS, and P/E.

Use get-price-history for historical bars and get-company-profile for company
background.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Stock Quote"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
