package dividends_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics_mocks "github.com/quantfold/fmp-mcp/internal/analytics/mocks"
	fmp_mocks "github.com/quantfold/fmp-mcp/internal/fmp/mocks"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/dividends"
	"go.uber.org/mock/gomock"
)

func dividendResponse() any {
	return map[string]any{
		"symbol": "AAPL",
		"historical": []any{
			map[string]any{"date": "2024-05-10", "adjDividend": 0.25, "recordDate": "2024-05-13", "paymentDate": "2024-05-16", "declarationDate": "2024-05-02", "label": "May 10, 24"},
			map[string]any{"date": "2024-02-09", "dividend": 0.24, "recordDate": "2024-02-12", "paymentDate": "2024-02-15", "declarationDate": "2024-02-01", "label": "February 09, 24"},
			map[string]any{"date": "2023-11-10", "dividend": 0.24},
		},
	}
}

func TestGetDividendHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get-dividend-history").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("unwraps the historical envelope and falls back to adjDividend", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/historical-price-full/stock_dividend/AAPL", gomock.Nil()).
			Return(dividendResponse(), nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := dividends.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"symbol": "aapl"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, "Found 3 results.") {
			t.Errorf("expected all three payments surfaced, got: %s", text)
		}
		if !strings.Contains(text, `"dividend": 0.25`) {
			t.Errorf("expected adjDividend fallback under the dividend name, got: %s", text)
		}
		if strings.Contains(text, "label") {
			t.Error("expected non-allow-listed field to be dropped")
		}
	})

	t.Run("summary tier caps at five payments", func(t *testing.T) {
		records := make([]any, 8)
		for i := range records {
			records[i] = map[string]any{"date": "2024-01-0" + string(rune('1'+i)), "dividend": 0.2}
		}
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/historical-price-full/stock_dividend/MSFT", gomock.Nil()).
			Return(map[string]any{"symbol": "MSFT", "historical": records}, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := dividends.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"symbol": "MSFT"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, `Showing 5 of 8 results. Request detail \"full\" for more.`) {
			t.Errorf("expected summary cap message, got: %s", text)
		}
	})

	t.Run("empty history returns a no-data message without an error", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/historical-price-full/stock_dividend/ZZZZ", gomock.Nil()).
			Return(map[string]any{}, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := dividends.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"symbol": "ZZZZ"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if result.IsError {
			t.Error("missing data is not a tool error")
		}
		text := result.Content[0].(mcp.TextContent).Text
		if !strings.Contains(text, "No dividend payments found for ZZZZ.") {
			t.Errorf("expected no-data message, got: %s", text)
		}
	})
}
