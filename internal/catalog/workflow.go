package catalog

import "errors"

// EventsPerPage is the fixed page size of the browser.
const EventsPerPage = 5

var (
	ErrFetchFailed      = errors.New("failed to fetch events")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrFullyBooked      = errors.New("event is fully booked")
	ErrEventNotFound    = errors.New("event not found")
)

// Filter returns, in order, the events whose title contains query
// (case-insensitively) and whose category matches. The input is not
// modified.
func Filter(events []Event, query string, category Category) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Matches(query, category) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages returns ceil(count/perPage).
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Paginate returns the 1-indexed page of events. A page that starts past the
// end yields an empty slice rather than being clamped.
func Paginate(events []Event, page, perPage int) []Event {
	if page < 1 || perPage <= 0 {
		return nil
	}
	if page-1 >= TotalPages(len(events), perPage) {
		return []Event{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(events))
	return events[start:end]
}

// Book returns a copy of events with one seat taken from the event with the
// given id. The input slice is never modified. If the event is missing or
// fully booked the copy is identical to the input and an error says why.
func Book(events []Event, id int64) ([]Event, error) {
	out := make([]Event, len(events))
	copy(out, events)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].AvailableSeats <= 0 {
			return out, ErrFullyBooked
		}
		out[i].AvailableSeats--
		return out, nil
	}
	return out, ErrEventNotFound
}
