package catalog

import (
	"fmt"
	"math"
	"testing"
)

func sampleEvents() []Event {
	return []Event{
		{ID: 1, Title: "Comedy Night", Category: CategoryComedy, AvailableSeats: 2},
		{ID: 2, Title: "Circus Fun", Category: CategoryCircus, AvailableSeats: 0},
	}
}

// manyEvents builds n events cycling through the three categories.
func manyEvents(n int) []Event {
	cats := []Category{CategoryComedy, CategoryCircus, CategoryCarRace}
	out := make([]Event, n)
	for i := range out {
		out[i] = Event{
			ID:             int64(i + 1),
			Title:          fmt.Sprintf("Show %02d", i+1),
			Category:       cats[i%len(cats)],
			AvailableSeats: 3,
		}
	}
	return out
}

func ids(events []Event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Event, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got ids %v, want %v", ids(got), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("result[%d]: got id %d, want %d", i, got[i].ID, want[i])
		}
	}
}

func TestFilter(t *testing.T) {
	events := []Event{
		{ID: 1, Title: "Comedy Night", Category: CategoryComedy},
		{ID: 2, Title: "Circus Fun", Category: CategoryCircus},
		{ID: 3, Title: "Grand Prix", Category: CategoryCarRace},
		{ID: 4, Title: "Late Night Comedy", Category: CategoryComedy},
	}

	tests := []struct {
		name     string
		query    string
		category Category
		want     []int64
	}{
		{"no filter", "", CategoryAny, []int64{1, 2, 3, 4}},
		{"category only", "", CategoryComedy, []int64{1, 4}},
		{"query case-insensitive", "NIGHT", CategoryAny, []int64{1, 4}},
		{"query substring", "rcu", CategoryAny, []int64{2}},
		{"query and category", "comedy", CategoryComedy, []int64{1, 4}},
		{"query and mismatched category", "comedy", CategoryCircus, nil},
		{"no match", "opera", CategoryAny, nil},
		{"category with space", "", CategoryCarRace, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Filter(events, tt.query, tt.category), tt.want...)
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	events := sampleEvents()
	_ = Filter(events, "circus", CategoryAny)
	if len(events) != 2 || events[0].ID != 1 || events[1].ID != 2 {
		t.Errorf("input modified: %+v", events)
	}
}

func TestFilterMatchesPredicate(t *testing.T) {
	events := manyEvents(23)
	queries := []string{"", "show", "0", "1", "SHOW 2", "x"}
	for _, q := range queries {
		for _, c := range Categories {
			got := Filter(events, q, c)
			want := 0
			for _, e := range events {
				if e.Matches(q, c) {
					want++
				}
			}
			if len(got) != want {
				t.Errorf("Filter(%q, %q) returned %d events, want %d", q, c, len(got), want)
			}
			for _, e := range got {
				if !e.Matches(q, c) {
					t.Errorf("Filter(%q, %q) returned non-matching event %d", q, c, e.ID)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 1},
		{6, 2},
		{10, 2},
		{11, 3},
		{23, 5},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, EventsPerPage); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	events := manyEvents(12)

	tests := []struct {
		name string
		page int
		want []int64
	}{
		{"first page", 1, []int64{1, 2, 3, 4, 5}},
		{"second page", 2, []int64{6, 7, 8, 9, 10}},
		{"last partial page", 3, []int64{11, 12}},
		{"past the end", 4, nil},
		{"invalid page", 0, nil},
		{"far past the end", math.MaxInt, nil},
		{"first page past the end", math.MaxInt/EventsPerPage + 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Paginate(events, tt.page, EventsPerPage), tt.want...)
		})
	}
}

func TestFirstPageLength(t *testing.T) {
	for n := 0; n <= 12; n++ {
		got := len(Paginate(manyEvents(n), 1, EventsPerPage))
		if want := min(n, EventsPerPage); got != want {
			t.Errorf("len(page 1) with %d events = %d, want %d", n, got, want)
		}
	}
}

func TestBook(t *testing.T) {
	events := sampleEvents()

	got, err := Book(events, 1)
	if err != nil {
		t.Fatalf("Book(1) error: %v", err)
	}
	if got[0].AvailableSeats != 1 {
		t.Errorf("event 1 seats = %d, want 1", got[0].AvailableSeats)
	}
	if got[1] != events[1] {
		t.Errorf("event 2 changed: %+v", got[1])
	}
	if events[0].AvailableSeats != 2 {
		t.Error("Book modified its input")
	}
}

func TestBookDownToZero(t *testing.T) {
	events := []Event{{ID: 7, AvailableSeats: 2}}

	for want := 1; want >= 0; want-- {
		var err error
		events, err = Book(events, 7)
		if err != nil {
			t.Fatalf("Book error: %v", err)
		}
		if events[0].AvailableSeats != want {
			t.Fatalf("seats = %d, want %d", events[0].AvailableSeats, want)
		}
	}
	if events[0].Availability() != FullyBooked {
		t.Error("event with 0 seats should be fully booked")
	}

	events, err := Book(events, 7)
	if err != ErrFullyBooked {
		t.Errorf("Book on fully booked event: err = %v, want ErrFullyBooked", err)
	}
	if events[0].AvailableSeats != 0 {
		t.Errorf("seats went to %d", events[0].AvailableSeats)
	}
}

func TestBookUnknownID(t *testing.T) {
	events := sampleEvents()
	got, err := Book(events, 99)
	if err != ErrEventNotFound {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
	for i := range events {
		if got[i] != events[i] {
			t.Errorf("event %d changed", events[i].ID)
		}
	}
}
