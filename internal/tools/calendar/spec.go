package calendar

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-earnings-calendar tool
type Input struct {
	// Symbol restricts the calendar to one ticker (optional)
	Symbol string `json:"symbol,omitempty" jsonschema:"description=Stock ticker symbol to restrict the calendar to. Omit for the market-wide calendar."`

	// From is the inclusive start date, YYYY-MM-DD
	From string `json:"from,omitempty" jsonschema:"description=Start date in YYYY-MM-DD format"`

	// To is the inclusive end date, YYYY-MM-DD
	To string `json:"to,omitempty" jsonschema:"description=End date in YYYY-MM-DD format"`

	// Limit bounds how many events are fetched upstream
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of events to fetch. Defaults to 50."`

	// Detail selects summary or full (per-symbol calendars only)
	Detail string `json:"detail,omitempty" jsonschema:"description=Detail tier: summary (default) or full"`
}

// Spec returns the MCP tool specification for get-earnings-calendar
func Spec() mcp.Tool {
	return mcp.NewTool("get-earnings-calendar",
		mcp.WithDescription(`Retrieves upcoming and recent earnings announcements with estimated and
reported EPS and revenue.

With a symbol, returns that company's earnings history (summary shows the
five most recent events; detail "full" shows up to twenty). Without a symbol,
returns the market-wide calendar hard-capped at ten events regardless of
detail, since the full calendar runs to thousands of rows.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Earnings Calendar"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
