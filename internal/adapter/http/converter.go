package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/skyroute/itinerary-search-service/internal/domain"
)

// ToDomainCriteria converts a validated search request into domain
// criteria. The return date expands into a day-wide window.
func ToDomainCriteria(req *SearchItinerariesRequest) domain.SearchCriteria {
	maxStops, _ := strconv.Atoi(strings.TrimSpace(req.MaxStops))

	criteria := domain.SearchCriteria{
		DepartureAirport: req.DepartureAirport,
		ArriveAirport:    req.ArriveAirport,
		DepartureDate:    parseDate(req.DepartureDate),
		OneWay:           req.OneWay,
		MaxStops:         maxStops,
		Airline:          strings.ToUpper(strings.TrimSpace(req.Airline)),
		SortBy:           domain.SortOption(strings.ToLower(req.SortBy)),
		Page:             req.Page,
		PageSize:         req.PageSize,
	}

	if !req.OneWay && req.ReturnDate != "" {
		day := parseDate(req.ReturnDate)
		criteria.ReturnDateStart = day
		criteria.ReturnDateEnd = day.Add(24*time.Hour - time.Second)
	}

	return criteria.Normalized()
}

// parseDate parses a validated YYYY-MM-DD date at midnight UTC.
func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
