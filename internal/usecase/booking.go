package usecase

import (
	"context"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
)

// BookingUseCase covers the details/reservation flow behind a result row.
type BookingUseCase interface {
	// Details fetches one itinerary and its display row by ID.
	Details(ctx context.Context, id string) (Row, domain.Itinerary, error)

	// Reserve books one seat on the itinerary with the given ID.
	Reserve(ctx context.Context, id string) error
}

// Booking implements BookingUseCase over the search and reservation
// gateways. Reservations use the itinerary ID as-is: for a round trip that
// is the outbound head segment's ID, and whether the reservation API also
// guarantees return-leg seats under that key is its own contract.
type Booking struct {
	search       domain.SearchGateway
	reservations domain.ReservationGateway
	presenter    *Presenter
	log          *logger.Logger
}

// NewBooking creates a Booking use case.
func NewBooking(search domain.SearchGateway, reservations domain.ReservationGateway, presenter *Presenter, log *logger.Logger) *Booking {
	if log == nil {
		log = logger.Nop()
	}
	return &Booking{
		search:       search,
		reservations: reservations,
		presenter:    presenter,
		log:          log.WithComponent("booking"),
	}
}

// Details fetches the itinerary and derives its display row. The row is
// rendered round-trip when the itinerary carries a return leg.
func (b *Booking) Details(ctx context.Context, id string) (Row, domain.Itinerary, error) {
	itinerary, err := b.search.Itinerary(ctx, id)
	if err != nil {
		return Row{}, domain.Itinerary{}, err
	}

	page := domain.ResultPage{Items: []domain.Itinerary{itinerary}}
	rows := b.presenter.Present(page, !itinerary.IsRoundTrip())
	if len(rows) == 0 {
		// The record exists upstream but carries no usable outbound leg.
		return Row{}, domain.Itinerary{}, domain.ErrMalformedRecord
	}

	return rows[0], itinerary, nil
}

// Reserve books one seat. The outcome is passed through opaquely: callers
// match domain.ErrNoSeatsAvailable and domain.ErrItineraryNotFound.
func (b *Booking) Reserve(ctx context.Context, id string) error {
	if err := b.reservations.Reserve(ctx, id); err != nil {
		b.log.Warn().Str("id", id).Err(err).Msg("Reservation failed")
		return err
	}
	b.log.Info().Str("id", id).Msg("Reservation confirmed")
	return nil
}

var _ BookingUseCase = (*Booking)(nil)
