package profile

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-company-profile tool
type Input struct {
	// Symbol is the stock ticker to look up (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`
}

// Spec returns the MCP tool specification for get-company-profile
func Spec() mcp.Tool {
	return mcp.NewTool("get-company-profile",
		mcp.WithDescription(`Retrieves the company profile for a stock symbol: name, price, market cap,
sector, industry, exchange, CEO, employee count, IPO date, website, and a short
business description.

The profile is curated to the fields above; the business description is
truncated to keep the payload compact. Use get-stock-quote for intraday price
detail and get-financial-ratios for valuation metrics.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Company Profile"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
