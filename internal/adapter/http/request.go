// Package http provides the HTTP handler layer for the itinerary search
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/itinerary-search-service/internal/domain"
)

// SearchItinerariesRequest represents the query parameters of a search request.
type SearchItinerariesRequest struct {
	// DepartureAirport is the IATA code of the departure airport (e.g., "BOS")
	DepartureAirport string `query:"departureAirport"`

	// ArriveAirport is the IATA code of the arrival airport (e.g., "LAX")
	ArriveAirport string `query:"arriveAirport"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// OneWay selects a one-way search; round trip when false
	OneWay bool `query:"oneWay"`

	// ReturnDate is the desired return date in YYYY-MM-DD format
	// (round trip only)
	ReturnDate string `query:"returnDate"`

	// MaxStops limits connections per direction (optional, forwarded verbatim)
	MaxStops string `query:"maxStops"`

	// Airline restricts results to one airline code (optional)
	Airline string `query:"airline"`

	// SortBy orders results: traveltime, arrivaltime, or departuretime
	SortBy string `query:"sortBy"`

	// Page is the 1-based result page
	Page int `query:"page"`

	// PageSize is the number of itineraries per page (1-50)
	PageSize int `query:"pageSize"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// bindSearchRequest binds and defaults a search request from query params.
func bindSearchRequest(c echo.Context) (SearchItinerariesRequest, error) {
	req := SearchItinerariesRequest{
		Page:     1,
		PageSize: domain.DefaultPageSize,
	}
	if err := c.Bind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// Validate validates the search request and returns any validation errors.
func (r *SearchItinerariesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateAirports(errs)
	r.validateDates(errs)
	r.validateMaxStops(errs)
	r.validateSortBy(errs)
	r.validatePaging(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchItinerariesRequest) validateAirports(errs *ValidationErrors) {
	if r.DepartureAirport == "" {
		errs.Add("departureAirport", "departureAirport is required")
	} else {
		code := strings.ToUpper(strings.TrimSpace(r.DepartureAirport))
		if !airportCodePattern.MatchString(code) {
			errs.Add("departureAirport", "departureAirport must be a valid 3-letter IATA airport code")
		} else {
			r.DepartureAirport = code
		}
	}

	if r.ArriveAirport == "" {
		errs.Add("arriveAirport", "arriveAirport is required")
	} else {
		code := strings.ToUpper(strings.TrimSpace(r.ArriveAirport))
		if !airportCodePattern.MatchString(code) {
			errs.Add("arriveAirport", "arriveAirport must be a valid 3-letter IATA airport code")
		} else {
			r.ArriveAirport = code
		}
	}

	if r.DepartureAirport != "" && r.DepartureAirport == r.ArriveAirport {
		errs.Add("arriveAirport", "departureAirport and arriveAirport must be different")
	}
}

func (r *SearchItinerariesRequest) validateDates(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
	} else if !isValidDate(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be a valid date in YYYY-MM-DD format")
	}

	if r.OneWay {
		return
	}
	if r.ReturnDate == "" {
		errs.Add("returnDate", "returnDate is required for round-trip searches")
	} else if !isValidDate(r.ReturnDate) {
		errs.Add("returnDate", "returnDate must be a valid date in YYYY-MM-DD format")
	}
}

func (r *SearchItinerariesRequest) validateMaxStops(errs *ValidationErrors) {
	if r.MaxStops == "" {
		return
	}
	n, err := strconv.Atoi(r.MaxStops)
	if err != nil || n < 0 {
		errs.Add("maxStops", "maxStops must be a non-negative number")
	}
}

func (r *SearchItinerariesRequest) validateSortBy(errs *ValidationErrors) {
	if r.SortBy == "" {
		return
	}
	if !domain.SortOption(strings.ToLower(r.SortBy)).IsValid() {
		errs.Add("sortBy", "sortBy must be one of: traveltime, arrivaltime, departuretime")
	}
}

func (r *SearchItinerariesRequest) validatePaging(errs *ValidationErrors) {
	if r.Page < 1 {
		errs.Add("page", "page must be at least 1")
	}
	if r.PageSize < 1 || r.PageSize > domain.MaxPageSize {
		errs.Add("pageSize", "pageSize must be between 1 and 50")
	}
}

// isValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func isValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
