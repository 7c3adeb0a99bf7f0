package history_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics_mocks "github.com/quantfold/fmp-mcp/internal/analytics/mocks"
	fmp_mocks "github.com/quantfold/fmp-mcp/internal/fmp/mocks"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/history"
	"go.uber.org/mock/gomock"
)

func historicalPayload(n int) map[string]any {
	bars := make([]any, n)
	for i := 0; i < n; i++ {
		bars[i] = map[string]any{
			"date":   fmt.Sprintf("2024-%02d-%02d", 1+i/28, 1+i%28),
			"open":   float64(100 + i),
			"high":   float64(102 + i),
			"low":    float64(98 + i),
			"close":  float64(100 + i),
			"volume": float64(1e6),
		}
	}
	return map[string]any{"symbol": "AAPL", "historical": bars}
}

func TestGetPriceHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get-price-history").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	run := func(t *testing.T, response any, args map[string]any) string {
		t.Helper()
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/historical-price-full/AAPL", gomock.Any()).
			Return(response, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := history.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: args},
		})
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		return result.Content[0].(mcp.TextContent).Text
	}

	t.Run("long range defaults to a summary digest", func(t *testing.T) {
		text := run(t, historicalPayload(250), map[string]any{"symbol": "AAPL"})

		if !strings.Contains(text, "Summarized 250 data points") {
			t.Errorf("expected digest message, got: %s", text)
		}
		if !strings.Contains(text, `"priceChangePercent"`) {
			t.Error("expected percent change in digest")
		}
		if !strings.Contains(text, `"recentData"`) {
			t.Error("expected recent window in digest")
		}
	})

	t.Run("short range returns every bar", func(t *testing.T) {
		text := run(t, historicalPayload(20), map[string]any{"symbol": "AAPL"})
		if !strings.Contains(text, "Showing all 20 data points") {
			t.Errorf("expected all points message, got: %s", text)
		}
	})

	t.Run("full detail is capped at 150", func(t *testing.T) {
		text := run(t, historicalPayload(250), map[string]any{"symbol": "AAPL", "detail": "full"})
		if !strings.Contains(text, "Showing 150 of 250 data points") {
			t.Errorf("expected capped full message, got: %s", text)
		}
	})

	t.Run("empty historical array is no data", func(t *testing.T) {
		text := run(t, map[string]any{"symbol": "AAPL", "historical": []any{}},
			map[string]any{"symbol": "AAPL"})
		if !strings.Contains(text, "No price history found for AAPL.") {
			t.Errorf("unexpected no-data text: %q", text)
		}
	})
}
