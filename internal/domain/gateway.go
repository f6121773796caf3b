package domain

import "context"

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=domain

// SearchGateway is the port to the upstream flight-search API.
// Implementations must honor context cancellation and return pages in the
// server's sort order.
type SearchGateway interface {
	// Search runs one complete search and returns a single result page.
	Search(ctx context.Context, criteria SearchCriteria) (ResultPage, error)

	// Itinerary fetches one itinerary by its outbound head segment ID.
	// Returns ErrItineraryNotFound when no such itinerary exists.
	Itinerary(ctx context.Context, id string) (Itinerary, error)
}

// ReservationGateway is the port to the reservation API. Reservations are
// keyed by the itinerary ID (the outbound head segment's ID, also for
// round trips); success or failure is reported as an opaque outcome.
type ReservationGateway interface {
	// Reserve books one seat on the itinerary with the given ID.
	// Returns ErrNoSeatsAvailable on a seat availability conflict and
	// ErrItineraryNotFound for an unknown ID.
	Reserve(ctx context.Context, id string) error
}
