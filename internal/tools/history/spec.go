package history

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-price-history tool
type Input struct {
	// Symbol is the stock ticker (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`

	// From is the inclusive start date, YYYY-MM-DD
	From string `json:"from,omitempty" jsonschema:"description=Start date in YYYY-MM-DD format"`

	// To is the inclusive end date, YYYY-MM-DD
	To string `json:"to,omitempty" jsonschema:"description=End date in YYYY-MM-DD format"`

	// Detail selects summary (statistical digest for long ranges) or full
	Detail string `json:"detail,omitempty" jsonschema:"description=Detail tier: summary (default) or full"`
}

// Spec returns the MCP tool specification for get-price-history
func Spec() mcp.Tool {
	return mcp.NewTool("get-price-history",
		mcp.WithDescription(`Retrieves historical daily OHLCV (open/high/low/close/volume) prices for a
stock symbol over an optional date range.

Long ranges are summarized by default: the payload carries the period's start
and end prices, high, low, percent change, and the five most recent bars
rather than hundreds of individual points. Request detail "full" for the
individual bars (capped at 150). Short ranges are always returned in full.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Price History"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
