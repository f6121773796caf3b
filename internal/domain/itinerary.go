package domain

import "time"

// Itinerary is one customer-facing bookable unit: an outbound leg plus an
// optional return leg. Return is present iff the search was round-trip.
// The itinerary is keyed by the outbound head segment's ID, including for
// round trips - reservations act on the combined itinerary under that key.
type Itinerary struct {
	Outbound Leg  `json:"outbound"`
	Return   *Leg `json:"return,omitempty"`
}

// ID returns the outbound head segment's ID, or "" when the outbound leg
// is empty (a malformed record the presenter will skip).
func (i Itinerary) ID() string {
	head, ok := i.Outbound.Head()
	if !ok {
		return ""
	}
	return head.ID
}

// IsRoundTrip reports whether the itinerary carries a non-empty return leg.
func (i Itinerary) IsRoundTrip() bool {
	return i.Return != nil && !i.Return.IsEmpty()
}

// DepartureTime returns the outbound head segment's departure instant,
// or the zero time for an empty outbound leg.
func (i Itinerary) DepartureTime() time.Time {
	head, ok := i.Outbound.Head()
	if !ok {
		return time.Time{}
	}
	return head.DepartureTime
}

// ResultPage is one page of itineraries returned by a single search.
// Items keep the server's sort order and are never re-sorted locally.
type ResultPage struct {
	Items []Itinerary `json:"items"`

	// HasMore reports whether a following page exists (one-way searches).
	HasMore bool `json:"hasMore"`

	// HasMoreOutbound and HasMoreReturn bifurcate the "more" flag for
	// round-trip searches: paging continues while either leg's inventory
	// is not exhausted.
	HasMoreOutbound bool `json:"hasMoreOutbound"`
	HasMoreReturn   bool `json:"hasMoreReturn"`

	// Total is the server-reported result count across all pages, when known.
	Total int `json:"total"`
}

// HasNext reports whether a following page exists for the given search mode.
// Round-trip availability is outbound OR return.
func (p ResultPage) HasNext(oneWay bool) bool {
	if oneWay {
		return p.HasMore
	}
	return p.HasMore || p.HasMoreOutbound || p.HasMoreReturn
}
