package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const catalogJSON = `[
  {"id":1,"title":"Comedy Night","description":"Stand-up","category":"Comedy","date":"2024-11-01","price":20,"availableSeats":2},
  {"id":2,"title":"Circus Fun","description":"Acrobats","category":"Circus","date":"2024-11-05","price":"15.50","availableSeats":0}
]`

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != DefaultEventsPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchEvents(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, catalogJSON)
	c := NewHTTPClient(srv.URL, "", time.Second)

	events, err := c.FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("FetchEvents() error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ID != 1 || events[0].Title != "Comedy Night" || events[0].AvailableSeats != 2 {
		t.Errorf("events[0] = %+v", events[0])
	}
	if got := events[1].Price.StringFixed(2); got != "15.50" {
		t.Errorf("events[1].Price = %s, want 15.50", got)
	}
}

func TestFetchEventsEmptyArray(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `[]`)
	events, err := NewHTTPClient(srv.URL, "", time.Second).FetchEvents(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("events = %v, want empty non-nil slice", events)
	}
}

func TestFetchEventsFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		path   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, ""},
		{"not found", http.StatusOK, catalogJSON, "/missing.json"},
		{"bad json", http.StatusOK, `{"not":"an array"}`, ""},
		{"truncated", http.StatusOK, `[{"id":1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newCatalogServer(t, tt.status, tt.body)
			_, err := NewHTTPClient(srv.URL, tt.path, time.Second).FetchEvents(context.Background())
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFetchEventsConnectionRefused(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, catalogJSON)
	url := srv.URL
	srv.Close()

	if _, err := NewHTTPClient(url, "", time.Second).FetchEvents(context.Background()); err == nil {
		t.Error("expected error from closed server")
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"http://localhost:8080", "", "http://localhost:8080/events.json"},
		{"http://localhost:8080/", "/events.json", "http://localhost:8080/events.json"},
		{"http://host", "data/events.json", "http://host/data/events.json"},
	}
	for _, tt := range tests {
		if got := NewHTTPClient(tt.base, tt.path, time.Second).URL(); got != tt.want {
			t.Errorf("URL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestLoadEventsCmd(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, catalogJSON)
	cmd := LoadEvents(context.Background(), NewHTTPClient(srv.URL, "", time.Second))

	msg, ok := cmd().(EventsLoadedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want EventsLoadedMsg", msg)
	}
	if msg.Err != nil || len(msg.Events) != 2 {
		t.Errorf("msg = %+v", msg)
	}
}
