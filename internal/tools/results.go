package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/fmp"
)

// JSONResult renders a curated payload as the single pretty-printed text
// content item every tool returns.
func JSONResult(payload any) (*mcp.CallToolResult, error) {
	text, err := curate.MarshalPayload(payload)
	if err != nil {
		slog.Error("failed to render curated payload", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// NoDataResult is the one-line sentence returned when normalization yields an
// empty collection. No data is an expected outcome, not an error.
func NoDataResult(what, symbol string) (*mcp.CallToolResult, error) {
	if symbol == "" {
		return mcp.NewToolResultText(fmt.Sprintf("No %s found.", what)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("No %s found for %s.", what, symbol)), nil
}

// ProviderFailureResult surfaces an upstream failure as content. The
// provider's own error message is carried verbatim so the calling model can
// react in-context; the failure never propagates as a protocol-level error.
func ProviderFailureResult(tool string, err error) (*mcp.CallToolResult, error) {
	slog.Error("provider request failed", "tool", tool, "error", err)
	var provErr *fmp.ProviderError
	if errors.As(err, &provErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Data provider error: %s", provErr.Message)), nil
	}
	return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch data: %s", err.Error())), nil
}
