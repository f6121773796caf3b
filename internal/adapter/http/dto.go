package http

import (
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

// SearchResponseDTO is the wire shape of a search response.
type SearchResponseDTO struct {
	// Results are the display rows in server order
	Results []usecase.Row `json:"results"`

	// Page is the 1-based page these results belong to
	Page int `json:"page"`

	// PageSize is the requested page size
	PageSize int `json:"pageSize"`

	// HasMore reports whether a following page exists
	HasMore bool `json:"hasMore"`

	// Total is the server-reported result count, when known
	Total int `json:"total"`

	// Meta describes how the search executed
	Meta usecase.SearchMeta `json:"meta"`
}

// SegmentDTO is the wire shape of one flight segment in a details response.
type SegmentDTO struct {
	ID               string    `json:"id"`
	FlightNumber     string    `json:"flightNumber"`
	Airline          string    `json:"airline"`
	AirlineName      string    `json:"airlineName"`
	DepartureAirport string    `json:"departureAirport"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	DepartureTime    time.Time `json:"departureTime"`
	ArrivalTime      time.Time `json:"arrivalTime"`
}

// ItineraryDetailDTO is the wire shape of a single-itinerary response. It
// carries both the display row and the underlying segments.
type ItineraryDetailDTO struct {
	ID             string       `json:"id"`
	RoundTrip      bool         `json:"roundTrip"`
	Row            usecase.Row  `json:"row"`
	Segments       []SegmentDTO `json:"segments"`
	ReturnSegments []SegmentDTO `json:"returnSegments,omitempty"`
}

// SessionResponseDTO wraps a search response with the session it belongs
// to, so the client can drive later page and sort transitions.
type SessionResponseDTO struct {
	SessionID string             `json:"sessionId"`
	Result    *SearchResponseDTO `json:"result"`
}

// ToSessionResponse converts a session's current result to its wire shape.
func ToSessionResponse(id string, result *usecase.SearchResult) *SessionResponseDTO {
	return &SessionResponseDTO{
		SessionID: id,
		Result:    ToSearchResponse(result),
	}
}

// ToSearchResponse converts a search result to its wire shape.
func ToSearchResponse(result *usecase.SearchResult) *SearchResponseDTO {
	return &SearchResponseDTO{
		Results:  result.Rows,
		Page:     result.Criteria.Page,
		PageSize: result.Criteria.PageSize,
		HasMore:  result.HasMore,
		Total:    result.Total,
		Meta:     result.Meta,
	}
}

// ToItineraryDetail converts a row and its itinerary to the details wire shape.
func ToItineraryDetail(row usecase.Row, itinerary domain.Itinerary) *ItineraryDetailDTO {
	detail := &ItineraryDetailDTO{
		ID:        itinerary.ID(),
		RoundTrip: itinerary.IsRoundTrip(),
		Row:       row,
		Segments:  toSegmentDTOs(itinerary.Outbound.Segments),
	}
	if itinerary.Return != nil {
		detail.ReturnSegments = toSegmentDTOs(itinerary.Return.Segments)
	}
	return detail
}

func toSegmentDTOs(segments []domain.Segment) []SegmentDTO {
	out := make([]SegmentDTO, 0, len(segments))
	for _, seg := range segments {
		out = append(out, SegmentDTO{
			ID:               seg.ID,
			FlightNumber:     seg.FlightNumber,
			Airline:          seg.Airline,
			AirlineName:      domain.AirlineDisplayName(seg.Airline),
			DepartureAirport: seg.DepartureAirport,
			ArrivalAirport:   seg.ArrivalAirport,
			DepartureTime:    seg.DepartureTime,
			ArrivalTime:      seg.ArrivalTime,
		})
	}
	return out
}
