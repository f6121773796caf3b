package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
)

func segment(id, number, airline, from, to string, depart, arrive time.Time) domain.Segment {
	return domain.Segment{
		ID:               id,
		FlightNumber:     number,
		Airline:          airline,
		DepartureAirport: from,
		ArrivalAirport:   to,
		DepartureTime:    depart,
		ArrivalTime:      arrive,
	}
}

func TestPresentOneWaySingleSegment(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	arrive := time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC)

	page := domain.ResultPage{Items: []domain.Itinerary{{
		Outbound: domain.NewLeg(segment("42", "DL123", "DL", "JFK", "LAX", depart, arrive)),
	}}}

	rows := NewPresenter(logger.Nop()).Present(page, true)

	require.Len(t, rows, 1)
	require.Len(t, rows[0].Legs, 1)

	leg := rows[0].Legs[0]
	assert.Equal(t, "42", rows[0].ID)
	assert.Equal(t, "DL123", leg.Headline)
	assert.Equal(t, 0, leg.StopCount)
	assert.Equal(t, "3h 30m", leg.DurationText)
	assert.Equal(t, "JFK", leg.OriginCode)
	assert.Equal(t, "LAX", leg.FinalDestinationCode)
	assert.Equal(t, "Delta", leg.AirlineName)
	assert.Equal(t, depart, leg.Departure)
	assert.Equal(t, arrive, leg.FinalArrival)
}

func TestPresentOneWayConnecting(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	page := domain.ResultPage{Items: []domain.Itinerary{{
		Outbound: domain.NewLeg(
			segment("100", "DL100", "deltas", "JFK", "ORD", depart, depart.Add(2*time.Hour)),
			segment("101", "DL200", "deltas", "ORD", "LAX", depart.Add(3*time.Hour), depart.Add(7*time.Hour)),
		),
	}}}

	rows := NewPresenter(logger.Nop()).Present(page, true)

	require.Len(t, rows, 1)
	leg := rows[0].Legs[0]
	assert.Equal(t, "Connecting Flights: DL100 → DL200", leg.Headline)
	assert.Equal(t, 1, leg.StopCount)
	assert.Equal(t, "JFK", leg.OriginCode)
	assert.Equal(t, "LAX", leg.FinalDestinationCode)
	// Overall duration spans head departure to last arrival.
	assert.Equal(t, "7h 0m", leg.DurationText)
	assert.Equal(t, []string{"DL100", "DL200"}, leg.FlightNumbers)
}

func TestPresentRoundTrip(t *testing.T) {
	out := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	back := time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC)

	ret := domain.NewLeg(segment("9", "SW500", "southwests", "LAX", "JFK", back, back.Add(5*time.Hour)))
	page := domain.ResultPage{Items: []domain.Itinerary{{
		Outbound: domain.NewLeg(segment("7", "DL123", "deltas", "JFK", "LAX", out, out.Add(6*time.Hour))),
		Return:   &ret,
	}}}

	rows := NewPresenter(logger.Nop()).Present(page, false)

	require.Len(t, rows, 1)
	row := rows[0]
	require.Len(t, row.Legs, 2)
	assert.True(t, row.IsRoundTrip())

	// Both legs hang off the outbound head's ID.
	assert.Equal(t, "7", row.ID)

	assert.Equal(t, 0, row.Legs[0].StopCount)
	assert.Equal(t, 0, row.Legs[1].StopCount)
	assert.Equal(t, "JFK", row.Legs[0].OriginCode)
	assert.Equal(t, "LAX", row.Legs[1].OriginCode)
	assert.Equal(t, "Southwest", row.Legs[1].AirlineName)
}

func TestPresentRoundTripMissingReturnDegradesToOneWay(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	ret := domain.NewLeg(segment("9", "DL900", "deltas", "LAX", "JFK", depart.Add(72*time.Hour), depart.Add(78*time.Hour)))

	page := domain.ResultPage{Items: []domain.Itinerary{
		{
			Outbound: domain.NewLeg(segment("1", "DL100", "deltas", "JFK", "LAX", depart, depart.Add(6*time.Hour))),
			Return:   &ret,
		},
		{
			// Return missing entirely: the row survives as one-way.
			Outbound: domain.NewLeg(segment("2", "DL200", "deltas", "JFK", "LAX", depart, depart.Add(6*time.Hour))),
		},
	}}

	rows := NewPresenter(logger.Nop()).Present(page, false)

	// No row is dropped for a missing return leg.
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].Legs, 2)
	assert.Len(t, rows[1].Legs, 1)
	assert.False(t, rows[1].IsRoundTrip())
}

func TestPresentSkipsEmptyOutbound(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	page := domain.ResultPage{Items: []domain.Itinerary{
		{}, // malformed: nothing to render
		{Outbound: domain.NewLeg(segment("2", "DL200", "deltas", "JFK", "BOS", depart, depart.Add(time.Hour)))},
	}}

	rows := NewPresenter(logger.Nop()).Present(page, true)

	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].ID)
}

func TestPresentPreservesOrderAndInput(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	items := make([]domain.Itinerary, 0, 4)
	for i, number := range []string{"DL4", "DL1", "DL3", "DL2"} {
		items = append(items, domain.Itinerary{
			Outbound: domain.NewLeg(segment(number, number, "deltas", "JFK", "LAX",
				depart.Add(time.Duration(i)*time.Hour), depart.Add(time.Duration(i+2)*time.Hour))),
		})
	}
	page := domain.ResultPage{Items: items}

	p := NewPresenter(logger.Nop())
	first := p.Present(page, true)
	second := p.Present(page, true)

	// Server order is preserved, never re-sorted locally.
	require.Len(t, first, 4)
	for i, want := range []string{"DL4", "DL1", "DL3", "DL2"} {
		assert.Equal(t, want, first[i].Legs[0].Headline)
	}

	// Presenting twice yields identical rows: no hidden input mutation.
	assert.Equal(t, first, second)
}

func TestPresentOneWayIgnoresStrayReturnLeg(t *testing.T) {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	ret := domain.NewLeg(segment("9", "DL900", "deltas", "LAX", "JFK", depart.Add(72*time.Hour), depart.Add(78*time.Hour)))

	page := domain.ResultPage{Items: []domain.Itinerary{{
		Outbound: domain.NewLeg(segment("1", "DL100", "deltas", "JFK", "LAX", depart, depart.Add(6*time.Hour))),
		Return:   &ret,
	}}}

	rows := NewPresenter(logger.Nop()).Present(page, true)

	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Legs, 1)
}
