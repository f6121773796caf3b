package domain

import (
	"fmt"
	"strings"
	"time"
)

// SortOption defines the available server-side sort orders.
type SortOption string

// Available sort options. Sorting is performed by the search API; the
// service forwards the choice and never re-sorts results locally.
const (
	// SortByTravelTime sorts by total trip duration ascending (default)
	SortByTravelTime SortOption = "traveltime"

	// SortByArrivalTime sorts by arrival instant ascending
	SortByArrivalTime SortOption = "arrivaltime"

	// SortByDepartureTime sorts by departure instant ascending
	SortByDepartureTime SortOption = "departuretime"
)

// IsValid checks if the sort option is a known value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByTravelTime, SortByArrivalTime, SortByDepartureTime:
		return true
	default:
		return false
	}
}

// DefaultPageSize is the page size used by every search screen.
const DefaultPageSize = 5

// MaxPageSize bounds client-requested page sizes.
const MaxPageSize = 50

// SearchCriteria is the complete query sent to the search API. It is an
// immutable value rebuilt wholesale on every user action: the transition
// helpers below return full replacement values, never patch in place, so
// each fetch's input stays auditable.
type SearchCriteria struct {
	// DepartureAirport and ArriveAirport are optional free-text airport
	// codes, normalized to uppercase before transmission.
	DepartureAirport string `json:"departureAirport"`
	ArriveAirport    string `json:"arriveAirport"`

	// DepartureDate is the desired departure day; zero means unbounded.
	DepartureDate time.Time `json:"departureDate,omitzero"`

	// OneWay selects one-way (true) or round-trip (false) search mode.
	OneWay bool `json:"oneWay"`

	// ReturnDateStart and ReturnDateEnd bound the return departure. Both
	// carry the same instant when the user picks a single return date;
	// both are zero for one-way searches.
	ReturnDateStart time.Time `json:"returnDateStart,omitzero"`
	ReturnDateEnd   time.Time `json:"returnDateEnd,omitzero"`

	// MaxStops is forwarded to the search API verbatim. Whether the
	// default 0 means "non-stop only" or "unlimited" is the API's call;
	// this service never interprets it.
	MaxStops int `json:"maxStops"`

	// Airline is an optional carrier filter code.
	Airline string `json:"airline,omitempty"`

	// SortBy selects the server-side sort order.
	SortBy SortOption `json:"sortBy"`

	// Page is 1-based.
	Page int `json:"page"`

	// PageSize is the requested page length.
	PageSize int `json:"pageSize"`
}

// Normalized returns a copy with airports uppercased, defaults applied, and
// return dates cleared for one-way searches.
func (c SearchCriteria) Normalized() SearchCriteria {
	c.DepartureAirport = strings.ToUpper(strings.TrimSpace(c.DepartureAirport))
	c.ArriveAirport = strings.ToUpper(strings.TrimSpace(c.ArriveAirport))
	c.Airline = strings.ToUpper(strings.TrimSpace(c.Airline))

	if c.SortBy == "" {
		c.SortBy = SortByTravelTime
	}
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.OneWay {
		c.ReturnDateStart = time.Time{}
		c.ReturnDateEnd = time.Time{}
	}
	return c
}

// Validate checks the criteria for correctness. It expects normalized
// input and returns errors wrapped with ErrInvalidCriteria.
func (c SearchCriteria) Validate() error {
	if !c.SortBy.IsValid() {
		return fmt.Errorf("%w: sortBy must be one of: traveltime, arrivaltime, departuretime; got %q",
			ErrInvalidCriteria, c.SortBy)
	}
	if c.MaxStops < 0 {
		return fmt.Errorf("%w: maxStops must be non-negative, got %d", ErrInvalidCriteria, c.MaxStops)
	}
	if c.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidCriteria, c.Page)
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		return fmt.Errorf("%w: pageSize must be between 1 and %d, got %d",
			ErrInvalidCriteria, MaxPageSize, c.PageSize)
	}
	if !c.OneWay && !c.ReturnDateStart.IsZero() && !c.ReturnDateEnd.IsZero() &&
		c.ReturnDateEnd.Before(c.ReturnDateStart) {
		return fmt.Errorf("%w: returnDateEnd must not precede returnDateStart", ErrInvalidCriteria)
	}
	return nil
}

// WithSort returns a copy with the sort order changed and the page reset
// to 1; all filters are kept as they are.
func (c SearchCriteria) WithSort(sortBy SortOption) SearchCriteria {
	c.SortBy = sortBy
	c.Page = 1
	return c
}

// FirstPage returns a copy positioned on page 1.
func (c SearchCriteria) FirstPage() SearchCriteria {
	c.Page = 1
	return c
}

// NextPage returns a copy advanced by one page, holding all other criteria
// fixed. When hasMore is false the criteria are returned unchanged: "Next"
// past the last page is a no-op.
func (c SearchCriteria) NextPage(hasMore bool) SearchCriteria {
	if !hasMore {
		return c
	}
	c.Page++
	return c
}

// PrevPage returns a copy moved back one page. At page 1 the criteria are
// returned unchanged.
func (c SearchCriteria) PrevPage() SearchCriteria {
	if c.Page <= 1 {
		return c
	}
	c.Page--
	return c
}
