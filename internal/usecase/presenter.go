// Package usecase contains the application logic of the itinerary search
// service: turning result pages into display rows, driving search state and
// pagination, and booking seats through the reservation gateway.
package usecase

import (
	"strings"
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
)

// ConnectingHeadlinePrefix labels multi-segment legs in result rows.
const ConnectingHeadlinePrefix = "Connecting Flights: "

// flightNumberSeparator joins flight numbers in a connecting headline.
const flightNumberSeparator = " → "

// LegView is one direction of a result row, fully derived: the renderer
// never needs to redo chain math.
type LegView struct {
	// Headline is the single flight number for a non-stop leg, or the
	// joined connecting-flights label for a multi-segment leg.
	Headline string `json:"headline"`

	// OriginCode and FinalDestinationCode are the endpoints of the whole
	// leg, not of any individual segment.
	OriginCode           string `json:"originCode"`
	FinalDestinationCode string `json:"finalDestinationCode"`

	// AirlineName is the display name of the head segment's carrier.
	AirlineName string `json:"airlineName"`

	// Departure is the head segment's departure instant; FinalArrival is
	// the last segment's arrival instant.
	Departure    time.Time `json:"departure"`
	FinalArrival time.Time `json:"finalArrival"`

	// DurationText is the formatted overall leg duration, e.g. "3h 30m".
	DurationText string `json:"durationText"`

	// StopCount is the number of intermediate connections.
	StopCount int `json:"stopCount"`

	// FlightNumbers lists every segment's flight number in travel order.
	FlightNumbers []string `json:"flightNumbers"`
}

// Row is one independently renderable result row. One-way rows carry a
// single leg; round-trip rows carry the outbound leg first and the return
// leg second, both keyed by the same itinerary ID.
type Row struct {
	ID   string    `json:"id"`
	Legs []LegView `json:"legs"`
}

// IsRoundTrip reports whether the row carries a return leg.
func (r Row) IsRoundTrip() bool {
	return len(r.Legs) > 1
}

// Presenter converts result pages into display rows. It is pure over its
// inputs: no shared mutable state, safe for concurrent render passes.
type Presenter struct {
	log *logger.Logger
}

// NewPresenter creates a Presenter. A nil logger falls back to a no-op one.
func NewPresenter(log *logger.Logger) *Presenter {
	if log == nil {
		log = logger.Nop()
	}
	return &Presenter{log: log.WithComponent("presenter")}
}

// Present converts a result page into display rows, preserving the
// server's order and never filtering beyond dropping malformed items.
//
// Per item: a one-way search renders the outbound leg only. A round-trip
// search additionally renders the return leg; an item that should carry a
// return leg but does not degrades to a one-way row instead of failing the
// page. An item whose outbound leg is empty is skipped with a warning -
// one bad record must not blank the whole results page.
func (p *Presenter) Present(page domain.ResultPage, oneWay bool) []Row {
	rows := make([]Row, 0, len(page.Items))

	for i, item := range page.Items {
		outbound, ok := legView(item.Outbound)
		if !ok {
			p.log.Warn().Int("index", i).Msg("Skipping result item with empty outbound leg")
			continue
		}

		row := Row{ID: item.ID(), Legs: []LegView{outbound}}

		if !oneWay {
			if ret, ok := p.returnView(item, i); ok {
				row.Legs = append(row.Legs, ret)
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// returnView derives the return-leg view for a round-trip item.
// A missing or empty return leg degrades the item to one-way.
func (p *Presenter) returnView(item domain.Itinerary, index int) (LegView, bool) {
	if item.Return == nil {
		p.log.Warn().Int("index", index).Str("id", item.ID()).
			Msg("Round-trip item without return leg, rendering as one-way")
		return LegView{}, false
	}
	view, ok := legView(*item.Return)
	if !ok {
		p.log.Warn().Int("index", index).Str("id", item.ID()).
			Msg("Round-trip item with empty return leg, rendering as one-way")
	}
	return view, ok
}

// legView derives a display view from one leg. ok is false for an empty leg.
func legView(leg domain.Leg) (LegView, bool) {
	head, ok := leg.Head()
	if !ok {
		return LegView{}, false
	}
	last, _ := leg.Last()

	numbers := leg.FlightNumbers()

	return LegView{
		Headline:             headline(numbers),
		OriginCode:           head.DepartureAirport,
		FinalDestinationCode: last.ArrivalAirport,
		AirlineName:          domain.AirlineDisplayName(head.Airline),
		Departure:            head.DepartureTime,
		FinalArrival:         last.ArrivalTime,
		DurationText:         leg.Duration().Formatted,
		StopCount:            leg.StopCount(),
		FlightNumbers:        numbers,
	}, true
}

// headline builds the row title: the lone flight number for a non-stop
// leg, otherwise the connecting-flights label.
func headline(numbers []string) string {
	if len(numbers) == 1 {
		return numbers[0]
	}
	return ConnectingHeadlinePrefix + strings.Join(numbers, flightNumberSeparator)
}
