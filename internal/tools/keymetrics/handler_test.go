package keymetrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	analytics_mocks "github.com/quantfold/fmp-mcp/internal/analytics/mocks"
	fmp_mocks "github.com/quantfold/fmp-mcp/internal/fmp/mocks"
	"github.com/quantfold/fmp-mcp/internal/tools"
	"github.com/quantfold/fmp-mcp/internal/tools/keymetrics"
	"go.uber.org/mock/gomock"
)

func TestGetKeyMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics_mocks.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("get-key-metrics").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	t.Run("null metrics are omitted, not serialized", func(t *testing.T) {
		mockFMP := fmp_mocks.NewMockService(ctrl)
		mockFMP.EXPECT().
			Fetch(gomock.Any(), "/key-metrics-ttm/TSLA", nil).
			Return([]any{map[string]any{
				"revenuePerShareTTM": 30.5,
				"grahamNumberTTM":    nil,
				"workingCapitalTTM":  2.1e10,
			}}, nil)

		deps := &tools.ToolDependencies{FMPService: mockFMP, AnalyticsService: analyticsService}
		handler := keymetrics.Handler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: map[string]any{"symbol": "TSLA"}},
		})

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		text := result.Content[0].(mcp.TextContent).Text

		if !strings.Contains(text, `"revenuePerShareTTM": 30.5`) {
			t.Error("expected allow-listed metric in payload")
		}
		if strings.Contains(text, "grahamNumberTTM") {
			t.Error("expected null metric to be omitted")
		}
		if strings.Contains(text, "workingCapitalTTM") {
			t.Error("expected non-allow-listed metric to be dropped")
		}
		if !strings.Contains(text, "Showing 1 of 3 available TTM key metrics.") {
			t.Errorf("expected K-of-N source message, got: %s", text)
		}
	})
}
