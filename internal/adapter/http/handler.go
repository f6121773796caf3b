package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/itinerary-search-service/internal/adapter/http/response"
	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary-related endpoints.
type ItineraryHandler struct {
	search  usecase.SearchUseCase
	booking usecase.BookingUseCase
}

// NewItineraryHandler creates a new ItineraryHandler with the given use cases.
func NewItineraryHandler(search usecase.SearchUseCase, booking usecase.BookingUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		search:  search,
		booking: booking,
	}
}

// SearchItineraries handles GET /api/v1/itineraries
//
// @Summary Search for itineraries
// @Description Search the flight catalog for one-way or round-trip itineraries
// @Tags itineraries
// @Produce json
// @Param departureAirport query string true "Departure airport IATA code"
// @Param arriveAirport query string true "Arrival airport IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param oneWay query bool false "One-way search"
// @Param returnDate query string false "Return date (YYYY-MM-DD, round trip only)"
// @Param maxStops query int false "Maximum connections per direction"
// @Param airline query string false "Airline code filter"
// @Param sortBy query string false "Sort order: traveltime, arrivaltime, departuretime"
// @Param page query int false "1-based page number"
// @Param pageSize query int false "Results per page (1-50)"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries [get]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	req, err := bindSearchRequest(c)
	if err != nil {
		return response.BadRequest(c, "Failed to parse query parameters")
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.search.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponse(result))
}

// GetItinerary handles GET /api/v1/itineraries/:id
//
// @Summary Get itinerary details
// @Description Fetch one itinerary with its display row and flight segments
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} ItineraryDetailDTO
// @Failure 404 {object} response.ErrorDetail "Itinerary not found"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/itineraries/{id} [get]
func (h *ItineraryHandler) GetItinerary(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "Itinerary ID is required")
	}

	row, itinerary, err := h.booking.Details(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToItineraryDetail(row, itinerary))
}

// ReserveItinerary handles POST /api/v1/itineraries/:id/reserve
//
// @Summary Reserve an itinerary
// @Description Book one seat on every flight of the itinerary
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 204 "Reserved"
// @Failure 404 {object} response.ErrorDetail "Itinerary not found"
// @Failure 409 {object} response.ErrorDetail "No seats available"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/itineraries/{id}/reserve [post]
func (h *ItineraryHandler) ReserveItinerary(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "Itinerary ID is required")
	}

	if err := h.booking.Reserve(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return response.NoContent(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	return handleDomainError(c, err)
}

// handleDomainError maps domain errors to appropriate HTTP responses. It is
// shared by every handler in this package.
func handleDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrItineraryNotFound):
		return response.NotFound(c)
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		return response.Conflict(c)
	case errors.Is(err, domain.ErrInvalidCriteria):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) || errors.Is(err, domain.ErrUpstreamUnavailable) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
