package indicator

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-technical-indicator tool
type Input struct {
	// Symbol is the stock ticker (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`

	// Type is the indicator to compute
	Type string `json:"type,omitempty" jsonschema:"description=Indicator type: sma, ema, wma, dema, tema, williams, rsi, adx, standardDeviation. Defaults to sma."`

	// Interval is the bar interval
	Interval string `json:"interval,omitempty" jsonschema:"description=Bar interval (e.g. daily, 1hour, 15min). Defaults to daily."`

	// TimePeriod is the indicator lookback period
	TimePeriod int `json:"timePeriod,omitempty" jsonschema:"description=Indicator lookback period. Defaults to 10."`
}

// Spec returns the MCP tool specification for get-technical-indicator
func Spec() mcp.Tool {
	return mcp.NewTool("get-technical-indicator",
		mcp.WithDescription(`Computes a technical indicator (SMA, EMA, RSI, ADX, and others) for a stock
symbol and returns the three most recent values alongside the closing price.

Only the latest values are returned; use get-price-history for the underlying
price series.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Technical Indicator"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
