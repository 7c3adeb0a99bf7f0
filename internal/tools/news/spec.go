package news

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the get-stock-news tool
type Input struct {
	// Symbol is the stock ticker to fetch news for (required)
	Symbol string `json:"symbol" jsonschema:"description=Stock ticker symbol (e.g. AAPL, MSFT)"`

	// Limit bounds how many articles are fetched upstream
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of articles to fetch. Defaults to 15."`

	// Detail selects summary (3 articles) or full (up to 10)
	Detail string `json:"detail,omitempty" jsonschema:"description=Detail tier: summary (default, 3 articles) or full (up to 10)"`
}

// Spec returns the MCP tool specification for get-stock-news
func Spec() mcp.Tool {
	return mcp.NewTool("get-stock-news",
		mcp.WithDescription(`Retrieves recent news articles about a stock symbol, most recent first.

Summary detail returns the three latest articles with snippets; request detail
"full" for up to ten. Snippets are truncated to keep the payload compact, and
each article carries its source site and URL for follow-up.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Get Stock News"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
