package dividends

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-dividend-history tool
type Input struct {
	// Symbol is the stock ticker to fetch dividend history for (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`

	// Limit bounds how many dividend records are returned
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of dividend records to return. Defaults to 10."`

	// Detail selects summary (5 records) or full (up to 10)
	Detail string `json:"detail,omitempty" jsonschema:"description=Detail tier: summary (default, 5 records) or full (up to 10)"`
}

// Spec returns the MCP tool specification for get-dividend-history
func Spec() mcp.Tool {
	return mcp.NewTool("get-dividend-history",
		mcp.WithDescription(`Retrieves the dividend payment history for a stock symbol, most recent first.

Each record carries the ex-dividend date, the dividend amount per share, and
the record, payment, and declaration dates. Summary detail returns the five
latest payments; request detail "full" for up to ten.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Dividend History"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
