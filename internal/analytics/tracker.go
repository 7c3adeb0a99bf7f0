package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TrackEvent is a single usage event.
type TrackEvent struct {
	EventID    string         `json:"eventId"`
	Event      string         `json:"event"`
	Timestamp  string         `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartupEventInfo describes the server at startup.
type StartupEventInfo struct {
	Version   string
	Transport string
}

// Tracker posts usage events to an opt-in collection endpoint. Posting is
// fire-and-forget: a slow or failing endpoint never delays a tool call.
type Tracker struct {
	endpoint string
	client   HTTPClient
	enabled  atomic.Bool
}

// NewTracker builds a Tracker. An empty endpoint leaves the tracker disabled.
func NewTracker(endpoint string, client HTTPClient) *Tracker {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	t := &Tracker{endpoint: endpoint, client: client}
	t.enabled.Store(endpoint != "")
	return t
}

func (t *Tracker) Disable() { t.enabled.Store(false) }

func (t *Tracker) Enable() {
	if t.endpoint != "" {
		t.enabled.Store(true)
	}
}

// EmitEvent posts the event asynchronously. Disabled trackers drop events.
func (t *Tracker) EmitEvent(event TrackEvent) {
	if !t.enabled.Load() {
		return
	}
	go func() {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.Debug("failed to marshal analytics event", "error", err)
			return
		}
		resp, err := t.client.Post(t.endpoint, "application/json", bytes.NewReader(payload))
		if err != nil {
			slog.Debug("failed to post analytics event", "error", err)
			return
		}
		resp.Body.Close()
	}()
}

func (t *Tracker) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return newEvent("server-startup", map[string]any{
		"version":   info.Version,
		"transport": info.Transport,
	})
}

func (t *Tracker) NewToolsEvent(toolUsed string) TrackEvent {
	return newEvent("tool-call", map[string]any{
		"tool": toolUsed,
	})
}

func newEvent(name string, properties map[string]any) TrackEvent {
	return TrackEvent{
		EventID:    uuid.NewString(),
		Event:      name,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Properties: properties,
	}
}
