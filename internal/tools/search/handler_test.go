package search_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics_mocks "github.com/quantfold/fmp-mcp/internal/analytics/mocks"
	fmp_mocks "github.com/quantfold/fmp-mcp/internal/fmp/mocks"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/search"
	"go.uber.org/mock/gomock"
)

func matches() []any {
	return []any{
		map[string]any{"symbol": "AAPL", "name": "Apple Inc.", "currency": "USD", "stockExchange": "NASDAQ Global Select", "exchangeShortName": "NASDAQ"},
		map[string]any{"symbol": "APLE", "name": "Apple Hospitality REIT, Inc.", "currency": "USD", "stockExchange": "New York Stock Exchange", "exchangeShortName": "NYSE"},
		map[string]any{"symbol": "APRU", "name": "Apple Rush Company, Inc.", "currency": "USD", "stockExchange": "Other OTC", "exchangeShortName": "PNK"},
	}
}

func TestSearchSymbolHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("search-symbol").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("returns matches in provider order", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/search", map[string]string{"query": "apple", "limit": "10"}).
			Return(matches(), nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := search.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"query": "apple"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, "Found 3 results.") {
			t.Errorf("expected all matches surfaced, got: %s", text)
		}
		if strings.Index(text, "AAPL") > strings.Index(text, "APLE") {
			t.Error("expected provider relevance order to be preserved")
		}
	})

	t.Run("limit caps the matches without a detail hint", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/search", map[string]string{"query": "apple", "limit": "2"}).
			Return(matches(), nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := search.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"query": "apple", "limit": 2}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, "Showing 2 of 3 results.") {
			t.Errorf("expected cap message, got: %s", text)
		}
		if strings.Contains(text, "Request detail") {
			t.Error("search has no detail tier and must not hint at one")
		}
	})

	t.Run("missing query is a tool error", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := search.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"query": "   "}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if !result.IsError {
			t.Error("expected an error result for a blank query")
		}
	})
}
