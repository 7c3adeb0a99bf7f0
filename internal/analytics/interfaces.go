package analytics

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks github.com/quantfold/fmp-mcp/internal/analytics Service,HTTPClient
import (
	"io"
	"net/http"
)

// Service emits anonymous usage events for the server and its tools.
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewStartupEvent(info StartupEventInfo) TrackEvent
	NewToolsEvent(toolUsed string) TrackEvent
}

// HTTPClient is the posting surface, kept narrow for test doubles.
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
