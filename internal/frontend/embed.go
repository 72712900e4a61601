// Package frontend carries the seed catalog compiled into the server.
package frontend

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/event-booker/booker/internal/catalog"
)

//go:embed static/events.json
var seed []byte

// SeedEvents decodes the seed catalog.
func SeedEvents() ([]catalog.Event, error) {
	var events []catalog.Event
	if err := json.Unmarshal(seed, &events); err != nil {
		return nil, fmt.Errorf("decoding embedded catalog: %w", err)
	}
	return events, nil
}
