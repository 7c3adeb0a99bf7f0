package estimates

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-analyst-estimates tool
type Input struct {
	// Symbol is the stock ticker to fetch analyst coverage for (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`

	// Period selects annual or quarterly estimate rows
	Period string `json:"period,omitempty" jsonschema:"description=Estimate period: quarter (default) or annual"`

	// Detail selects summary (4 estimate rows) or full (up to 8)
	Detail string `json:"detail,omitempty" jsonschema:"description=Detail tier: summary (default, 4 estimate rows) or full (up to 8)"`
}

// Spec returns the MCP tool specification for get-analyst-estimates
func Spec() mcp.Tool {
	return mcp.NewTool("get-analyst-estimates",
		mcp.WithDescription(`Retrieves analyst coverage for a stock symbol: forward revenue and EPS
estimates alongside the consensus price-target summary.

The two sections come from independent upstream sources; when one of them has
no data the other is still returned. Estimate rows are most recent first and
capped per the detail tier.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Analyst Estimates"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
