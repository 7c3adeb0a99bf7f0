package tools

import "strings"

// NormalizeSymbol trims and upcases a ticker symbol parameter.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// DefaultLimit applies a family default when the caller omitted the limit and
// clamps non-positive values to the default.
func DefaultLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}
