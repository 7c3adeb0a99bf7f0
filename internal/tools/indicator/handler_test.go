package indicator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics_mocks "github.com/quantfold/fmp-mcp/internal/analytics/mocks"
	fmp_mocks "github.com/quantfold/fmp-mcp/internal/fmp/mocks"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/indicator"
	"go.uber.org/mock/gomock"
)

func TestGetTechnicalIndicatorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get-technical-indicator").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("returns the three most recent values regardless of upstream order", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/technical_indicator/daily/AAPL", map[string]string{
				"type":   "rsi",
				"period": "14",
			}).
			Return([]any{
				// ascending upstream order on an endpoint documented as descending
				map[string]any{"date": "2024-06-01", "close": 100.0, "rsi": 41.0},
				map[string]any{"date": "2024-06-02", "close": 101.0, "rsi": 47.0},
				map[string]any{"date": "2024-06-03", "close": 102.0, "rsi": 55.0},
				map[string]any{"date": "2024-06-04", "close": 103.0, "rsi": 61.0},
			}, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := indicator.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{
				"symbol": "AAPL", "type": "rsi", "timePeriod": 14,
			}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text

		if !strings.Contains(text, "Showing 3 of 4 results.") {
			t.Errorf("expected 3-of-4 message, got: %s", text)
		}
		if !strings.Contains(text, "2024-06-04") || strings.Contains(text, "2024-06-01") {
			t.Error("expected the most recent values, not the first array positions")
		}
		if !strings.Contains(text, `"rsi": 61`) {
			t.Error("expected indicator value keyed by its type")
		}
	})

	t.Run("defaults are applied for absent parameters", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/technical_indicator/daily/MSFT", map[string]string{
				"type":   "sma",
				"period": "10",
			}).
			Return([]any{map[string]any{"date": "2024-06-04", "close": 420.0, "sma": 415.2}}, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := indicator.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"symbol": "MSFT"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if result.IsError {
			t.Fatal("expected success result")
		}
	})
}
