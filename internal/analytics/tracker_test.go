package analytics_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/quantfold/fmp-mcp/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingClient struct {
	posts chan []byte
}

func (c *capturingClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	b, _ := io.ReadAll(body)
	c.posts <- b
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func TestTracker(t *testing.T) {
	t.Run("emits tool events to the endpoint", func(t *testing.T) {
		client := &capturingClient{posts: make(chan []byte, 1)}
		tracker := analytics.NewTracker("https://telemetry.example/events", client)

		tracker.EmitEvent(tracker.NewToolsEvent("get-stock-quote"))

		select {
		case payload := <-client.posts:
			var event analytics.TrackEvent
			require.NoError(t, json.Unmarshal(payload, &event))
			assert.Equal(t, "tool-call", event.Event)
			assert.Equal(t, "get-stock-quote", event.Properties["tool"])
			assert.NotEmpty(t, event.EventID)
		case <-time.After(2 * time.Second):
			t.Fatal("expected an analytics post")
		}
	})

	t.Run("disabled tracker drops events", func(t *testing.T) {
		client := &capturingClient{posts: make(chan []byte, 1)}
		tracker := analytics.NewTracker("https://telemetry.example/events", client)
		tracker.Disable()

		tracker.EmitEvent(tracker.NewToolsEvent("get-stock-quote"))

		select {
		case <-client.posts:
			t.Fatal("expected no analytics post")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("empty endpoint stays disabled even after Enable", func(t *testing.T) {
		client := &capturingClient{posts: make(chan []byte, 1)}
		tracker := analytics.NewTracker("", client)
		tracker.Enable()

		tracker.EmitEvent(tracker.NewStartupEvent(analytics.StartupEventInfo{Version: "dev"}))

		select {
		case <-client.posts:
			t.Fatal("expected no analytics post")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
