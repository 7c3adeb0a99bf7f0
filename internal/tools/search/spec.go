package search

import "github.com/mark3labs/mcp-go/mcp"

// Input defines the input parameters for the search-symbol tool
type Input struct {
	// Query is the company name or ticker fragment to search for (required)
	Query string `json:"query" jsonschema:"description=Company name or ticker fragment to search for (e.g. apple, AAP)"`

	// Limit bounds how many matches are returned
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of matches to return. Defaults to 10."`
}

// Spec returns the MCP tool specification for search-symbol
func Spec() mcp.Tool {
	return mcp.NewTool("search-symbol",
		mcp.WithDescription(`Searches for stock symbols by company name or ticker fragment.

Use this first when the caller gives a company name instead of a ticker; each
match carries the symbol, full name, currency, and listing exchange. Matches
keep the provider's relevance order.`),
		mcp.WithInputSchema[Input](),
		mcp.WithTitleAnnotation("Search Symbol"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
