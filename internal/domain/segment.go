// Package domain contains the core itinerary model for the flight search
// service. These types are transport-agnostic: the upstream search API
// adapter produces them and the presenter consumes them.
package domain

import "time"

// Segment represents one non-stop flight leg, from boarding to deboarding.
// Segments are immutable values constructed wholesale from one search API
// response item.
type Segment struct {
	// ID is an opaque unique identifier assigned by the search API.
	ID string `json:"id"`

	// FlightNumber is the airline's flight number (e.g., "DL123")
	FlightNumber string `json:"flightNumber"`

	// Airline is the carrier code or name reported by the search API
	Airline string `json:"airline"`

	// DepartureAirport is the IATA code of the departure airport
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the arrival airport
	ArrivalAirport string `json:"arrivalAirport"`

	// DepartureTime is the scheduled departure instant
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the scheduled arrival instant (after DepartureTime)
	ArrivalTime time.Time `json:"arrivalTime"`
}

// Leg is one direction of an itinerary as an ordered sequence of segments.
// The slice replaces the search API's forward-linked nextFlight chain:
// ordering is explicit, cycles are impossible, and stop math needs no
// traversal. A leg with no segments means "no itinerary", not an error.
type Leg struct {
	Segments []Segment `json:"segments"`
}

// NewLeg creates a leg from segments in travel order.
func NewLeg(segments ...Segment) Leg {
	return Leg{Segments: segments}
}

// IsEmpty reports whether the leg has no segments.
func (l Leg) IsEmpty() bool {
	return len(l.Segments) == 0
}

// Head returns the first segment of the leg.
// ok is false for an empty leg.
func (l Leg) Head() (Segment, bool) {
	if len(l.Segments) == 0 {
		return Segment{}, false
	}
	return l.Segments[0], true
}

// Last returns the final segment of the leg. For a single-segment leg this
// is the head itself. ok is false for an empty leg.
func (l Leg) Last() (Segment, bool) {
	if len(l.Segments) == 0 {
		return Segment{}, false
	}
	return l.Segments[len(l.Segments)-1], true
}

// StopCount returns the number of intermediate connections:
// 0 for a non-stop flight, 1 for one connection, and so on.
// An empty leg also reports 0, there is nothing to count.
func (l Leg) StopCount() int {
	if len(l.Segments) == 0 {
		return 0
	}
	return len(l.Segments) - 1
}

// FlightNumbers returns the flight number of every segment in travel order.
// For a valid leg the result has StopCount()+1 elements.
func (l Leg) FlightNumbers() []string {
	numbers := make([]string, 0, len(l.Segments))
	for _, s := range l.Segments {
		numbers = append(numbers, s.FlightNumber)
	}
	return numbers
}

// Origin returns the departure airport code of the head segment,
// or "" for an empty leg.
func (l Leg) Origin() string {
	head, ok := l.Head()
	if !ok {
		return ""
	}
	return head.DepartureAirport
}

// Destination returns the arrival airport code of the last segment,
// or "" for an empty leg.
func (l Leg) Destination() string {
	last, ok := l.Last()
	if !ok {
		return ""
	}
	return last.ArrivalAirport
}

// Duration returns the overall leg duration, head departure to last arrival.
// Upstream data inconsistencies that would produce a negative duration are
// clamped to zero rather than propagated.
func (l Leg) Duration() DurationInfo {
	head, ok := l.Head()
	if !ok {
		return TripDuration(time.Time{}, time.Time{})
	}
	last, _ := l.Last()
	return TripDuration(head.DepartureTime, last.ArrivalTime)
}
