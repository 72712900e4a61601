// Package client fetches the event catalog from the booker server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/event-booker/booker/internal/catalog"
)

// DefaultEventsPath is where the server publishes the catalog.
const DefaultEventsPath = "/events.json"

// HTTPClient reads the static catalog over HTTP.
type HTTPClient struct {
	baseURL    string
	eventsPath string
	client     *http.Client
}

// NewHTTPClient creates a client targeting the given base URL (e.g.
// "http://127.0.0.1:8080"). An empty eventsPath means DefaultEventsPath.
func NewHTTPClient(baseURL, eventsPath string, timeout time.Duration) *HTTPClient {
	if eventsPath == "" {
		eventsPath = DefaultEventsPath
	}
	if !strings.HasPrefix(eventsPath, "/") {
		eventsPath = "/" + eventsPath
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		eventsPath: eventsPath,
		client:     &http.Client{Timeout: timeout},
	}
}

// URL returns the full catalog URL.
func (c *HTTPClient) URL() string {
	return c.baseURL + c.eventsPath
}

// FetchEvents performs the single catalog read. Any transport error,
// non-2xx status or undecodable body is reported as an error; the caller
// treats them all the same.
func (c *HTTPClient) FetchEvents(ctx context.Context) ([]catalog.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s: %d %s", c.eventsPath, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var events []catalog.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.eventsPath, err)
	}
	if events == nil {
		events = []catalog.Event{}
	}
	return events, nil
}

// EventsLoadedMsg carries the result of the catalog fetch.
type EventsLoadedMsg struct {
	Events []catalog.Event
	Err    error
}

// Fetcher is the catalog read used by the browser screen.
type Fetcher interface {
	FetchEvents(ctx context.Context) ([]catalog.Event, error)
}

// LoadEvents returns a Bubble Tea command that runs the fetch once and
// reports the outcome as an EventsLoadedMsg. It is never retried.
func LoadEvents(ctx context.Context, f Fetcher) tea.Cmd {
	return func() tea.Msg {
		events, err := f.FetchEvents(ctx)
		return EventsLoadedMsg{Events: events, Err: err}
	}
}
