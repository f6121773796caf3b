// Package upstream implements the search and reservation gateways against
// the REST flight-search API. It decodes the API's recursive itinerary
// chains into the flat domain model.
package upstream

import (
	"fmt"
	"strconv"
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
)

// maxChainDepth bounds nextFlight recursion while decoding. Real
// itineraries top out at a handful of connections; anything deeper is a
// malformed record.
const maxChainDepth = 8

// flightRecord mirrors one search API result item. nextFlight recurses
// with the same shape to form the onward chain of a direction; returnTrip
// is set only on the head record of a round-trip result and points at the
// head of the return chain.
type flightRecord struct {
	ID               *int64        `json:"id"`
	FlightNumber     string        `json:"flightNumber"`
	Airline          string        `json:"airline"`
	DepartureAirport string        `json:"departureAirport"`
	ArrivalAirport   string        `json:"arrivalAirport"`
	DepartureTime    string        `json:"departureTime"`
	ArrivalTime      string        `json:"arrivalTime"`
	NextFlight       *flightRecord `json:"nextFlight,omitempty"`
	ReturnTrip       *flightRecord `json:"returnTrip,omitempty"`
}

// searchPayload is the page-level response of the search endpoint.
type searchPayload struct {
	Flights         []flightRecord `json:"flights"`
	HasMore         bool           `json:"hasMore"`
	HasMoreOutbound bool           `json:"hasMoreOutbound"`
	HasMoreReturn   bool           `json:"hasMoreReturn"`
	Total           int            `json:"total"`
}

// instantFormats are the timestamp layouts the search API has been seen
// emitting, tried in order.
var instantFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseInstant parses a search API timestamp.
func parseInstant(value string) (time.Time, error) {
	for _, layout := range instantFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable instant %q", value)
}

// toSegment validates and converts one record into a segment, ignoring
// its chain links.
func toSegment(rec *flightRecord) (domain.Segment, error) {
	if rec.ID == nil {
		return domain.Segment{}, fmt.Errorf("%w: missing id", domain.ErrMalformedRecord)
	}
	if rec.FlightNumber == "" {
		return domain.Segment{}, fmt.Errorf("%w: missing flightNumber", domain.ErrMalformedRecord)
	}
	if rec.DepartureAirport == "" || rec.ArrivalAirport == "" {
		return domain.Segment{}, fmt.Errorf("%w: missing airport codes", domain.ErrMalformedRecord)
	}

	departure, err := parseInstant(rec.DepartureTime)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("%w: departureTime: %v", domain.ErrMalformedRecord, err)
	}
	arrival, err := parseInstant(rec.ArrivalTime)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("%w: arrivalTime: %v", domain.ErrMalformedRecord, err)
	}
	if !arrival.After(departure) {
		return domain.Segment{}, fmt.Errorf("%w: arrival %s not after departure %s",
			domain.ErrMalformedRecord, rec.ArrivalTime, rec.DepartureTime)
	}

	return domain.Segment{
		ID:               strconv.FormatInt(*rec.ID, 10),
		FlightNumber:     rec.FlightNumber,
		Airline:          rec.Airline,
		DepartureAirport: rec.DepartureAirport,
		ArrivalAirport:   rec.ArrivalAirport,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
	}, nil
}

// flattenChain walks a nextFlight chain from its head and returns the leg
// as an ordered segment slice. The depth guard keeps a degenerate payload
// from recursing unboundedly.
func flattenChain(head *flightRecord) (domain.Leg, error) {
	var segments []domain.Segment

	for rec, depth := head, 0; rec != nil; rec, depth = rec.NextFlight, depth+1 {
		if depth >= maxChainDepth {
			return domain.Leg{}, fmt.Errorf("%w: chain exceeds %d segments", domain.ErrMalformedRecord, maxChainDepth)
		}
		seg, err := toSegment(rec)
		if err != nil {
			return domain.Leg{}, err
		}
		segments = append(segments, seg)
	}

	if len(segments) == 0 {
		return domain.Leg{}, fmt.Errorf("%w: empty chain", domain.ErrMalformedRecord)
	}
	return domain.Leg{Segments: segments}, nil
}

// toItinerary converts one result item, outbound chain plus optional
// return chain, into a domain itinerary.
func toItinerary(rec *flightRecord) (domain.Itinerary, error) {
	outbound, err := flattenChain(rec)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("outbound: %w", err)
	}

	itinerary := domain.Itinerary{Outbound: outbound}

	if rec.ReturnTrip != nil {
		ret, err := flattenChain(rec.ReturnTrip)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("return: %w", err)
		}
		itinerary.Return = &ret
	}

	return itinerary, nil
}

// toResultPage converts a search payload, dropping malformed items.
// The number of dropped items is returned so the caller can log it.
func toResultPage(payload *searchPayload) (domain.ResultPage, int) {
	page := domain.ResultPage{
		Items:           make([]domain.Itinerary, 0, len(payload.Flights)),
		HasMore:         payload.HasMore,
		HasMoreOutbound: payload.HasMoreOutbound,
		HasMoreReturn:   payload.HasMoreReturn,
		Total:           payload.Total,
	}

	dropped := 0
	for i := range payload.Flights {
		itinerary, err := toItinerary(&payload.Flights[i])
		if err != nil {
			dropped++
			continue
		}
		page.Items = append(page.Items, itinerary)
	}

	return page, dropped
}
