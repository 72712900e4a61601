package catalog

import "fmt"

// Authenticator is the read side of the login session that gates booking.
type Authenticator interface {
	IsAuthenticated() bool
}

// Browser is the state behind the event list screen: the fetched catalog,
// the filter and the current page. It starts in the loading state; Loaded
// moves it out of that state exactly once per fetch.
//
// The zero value is not usable; call NewBrowser.
type Browser struct {
	auth Authenticator

	events  []Event
	loading bool
	err     error

	query    string
	category Category
	page     int
}

// NewBrowser returns a browser in the loading state with default filters
// and page 1.
func NewBrowser(auth Authenticator) Browser {
	return Browser{
		auth:     auth,
		loading:  true,
		category: CategoryAny,
		page:     1,
	}
}

// Loaded records the outcome of the initial fetch. On success the events
// become the collection and any earlier error is cleared. On failure the
// collection is left as it was and Err wraps ErrFetchFailed.
func (b *Browser) Loaded(events []Event, err error) {
	b.loading = false
	if err != nil {
		b.err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		return
	}
	b.events = events
	b.err = nil
}

// Loading reports whether the initial fetch is still outstanding.
func (b Browser) Loading() bool { return b.loading }

// Err returns the fetch failure, if any.
func (b Browser) Err() error { return b.err }

// Events returns the whole collection in fetch order.
func (b Browser) Events() []Event { return b.events }

func (b Browser) Query() string      { return b.query }
func (b Browser) Category() Category { return b.category }
func (b Browser) Page() int          { return b.page }

// SetQuery replaces the search text. The current page is kept.
func (b *Browser) SetQuery(q string) { b.query = q }

// SetCategory replaces the category filter. The current page is kept.
func (b *Browser) SetCategory(c Category) { b.category = c }

// SelectPage jumps to page n without checking it against TotalPages, the
// same way a page button does.
func (b *Browser) SelectPage(n int) { b.page = n }

// Filtered returns the events matching the current filter.
func (b Browser) Filtered() []Event {
	return Filter(b.events, b.query, b.category)
}

// Visible returns the current page of the filtered events.
func (b Browser) Visible() []Event {
	return Paginate(b.Filtered(), b.page, EventsPerPage)
}

// TotalPages returns the number of page buttons for the current filter.
func (b Browser) TotalPages() int {
	return TotalPages(len(b.Filtered()), EventsPerPage)
}

// Book takes one seat of the event with the given id. It returns
// ErrNotAuthenticated without touching the collection when the session is
// not signed in; ErrFullyBooked and ErrEventNotFound also leave it unchanged.
func (b *Browser) Book(id int64) error {
	if b.auth == nil || !b.auth.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	events, err := Book(b.events, id)
	if err != nil {
		return err
	}
	b.events = events
	return nil
}
