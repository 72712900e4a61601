// Package catalog holds the event model and the browse workflow that runs
// over a fetched catalog: filtering, pagination and in-memory seat booking.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the closed set of event categories. The zero value
// means "any category" when used as a filter.
type Category string

const (
	CategoryAny     Category = ""
	CategoryComedy  Category = "Comedy"
	CategoryCircus  Category = "Circus"
	CategoryCarRace Category = "Car Race"
)

// Categories lists the selector options in display order, "any" first.
var Categories = []Category{CategoryAny, CategoryComedy, CategoryCircus, CategoryCarRace}

// Label returns the selector label for a category.
func (c Category) Label() string {
	if c == CategoryAny {
		return "All Categories"
	}
	return string(c)
}

// Next returns the category after c in selector order, wrapping around.
// Unknown categories restart at "any".
func (c Category) Next() Category {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return CategoryAny
}

// Price is a display-only amount. It decodes from a JSON number or string
// and encodes as a bare JSON number so served catalogs keep their shape.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "25.50".
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{Decimal: d}, nil
}

// MustPrice is NewPrice for literals; it panics on malformed input.
func MustPrice(s string) Price {
	p, err := NewPrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalJSON encodes the price without quotes.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// Availability is the seat state of a single event.
type Availability int

const (
	Bookable Availability = iota
	FullyBooked
)

func (a Availability) String() string {
	if a == FullyBooked {
		return "Fully Booked"
	}
	return "Book Ticket"
}

// Event is a single catalog entry. Only AvailableSeats ever changes after
// the catalog is fetched.
type Event struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       Category `json:"category"`
	Date           string   `json:"date"`
	Price          Price    `json:"price"`
	AvailableSeats int      `json:"availableSeats"`
}

// Availability reports whether the event can still be booked.
func (e Event) Availability() Availability {
	if e.AvailableSeats > 0 {
		return Bookable
	}
	return FullyBooked
}

// Matches reports whether the event passes the search and category filter.
// The title match is a case-insensitive substring test; CategoryAny accepts
// every category.
func (e Event) Matches(query string, category Category) bool {
	if !strings.Contains(strings.ToLower(e.Title), strings.ToLower(query)) {
		return false
	}
	return category == CategoryAny || e.Category == category
}
