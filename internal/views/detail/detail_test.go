package detail

import (
	"strings"
	"testing"

	"github.com/event-booker/booker/internal/catalog"
)

func events() []catalog.Event {
	return []catalog.Event{
		{ID: 1, Title: "Comedy Night", Description: "Five **comedians** on stage", Category: catalog.CategoryComedy, Date: "2024-11-01", Price: catalog.MustPrice("20"), AvailableSeats: 2},
		{ID: 2, Title: "Circus Fun", Category: catalog.CategoryCircus, AvailableSeats: 0},
	}
}

func plain(id int64) Model {
	m := New(id)
	m.Style = "notty"
	return m
}

func TestViewShowsFields(t *testing.T) {
	v := plain(1).View(events(), 80)

	for _, want := range []string{"Comedy Night", "Category: Comedy", "Date: 2024-11-01", "Price: $20", "Available Seats: 2", "Book Ticket", "comedians"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewFullyBooked(t *testing.T) {
	v := plain(2).View(events(), 80)
	if !strings.Contains(v, "Fully Booked") {
		t.Error("sold out event should show Fully Booked")
	}
	if !strings.Contains(v, "No description") {
		t.Error("empty description should show placeholder")
	}
}

func TestViewTracksSeatChanges(t *testing.T) {
	evs := events()
	m := plain(1)
	evs, err := catalog.Book(evs, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v := m.View(evs, 80); !strings.Contains(v, "Available Seats: 1") {
		t.Error("view should reflect the booked seat")
	}
}

func TestViewMissingEvent(t *testing.T) {
	if v := plain(99).View(events(), 80); !strings.Contains(v, "Event not found") {
		t.Error("missing event should say so")
	}
}

func TestFind(t *testing.T) {
	e, ok := New(2).Find(events())
	if !ok || e.Title != "Circus Fun" {
		t.Errorf("Find(2) = %+v, %v", e, ok)
	}
	if _, ok := New(3).Find(events()); ok {
		t.Error("Find(3) should fail")
	}
}

func TestRendererReusedPerWidth(t *testing.T) {
	m := plain(1)

	m.View(events(), 80)
	first := m.cache.r
	if first == nil {
		t.Fatal("renderer should be cached after the first view")
	}

	m.View(events(), 80)
	if m.cache.r != first {
		t.Error("same width should reuse the renderer")
	}

	if v := m.View(events(), 100); !strings.Contains(v, "comedians") {
		t.Errorf("view after resize:\n%s", v)
	}
	if m.cache.r == first || m.cache.width != 100-8-4 {
		t.Errorf("resize should rebuild the renderer, cache width = %d", m.cache.width)
	}
}
