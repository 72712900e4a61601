package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/event-booker/booker/internal/catalog"
	"github.com/event-booker/booker/internal/frontend"
)

// Source yields the catalog in the order it should be served.
type Source interface {
	Name() string
	Events(ctx context.Context) ([]catalog.Event, error)
}

// EmbeddedSource serves the seed catalog compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Events(context.Context) ([]catalog.Event, error) {
	return frontend.SeedEvents()
}

// FileSource re-reads a JSON file on every request, so edits show up
// without a restart.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Events(context.Context) ([]catalog.Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var events []catalog.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return events, nil
}
