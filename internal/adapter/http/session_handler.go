package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/itinerary-search-service/internal/adapter/http/response"
	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

// SessionHandler handles HTTP requests for stateful search sessions. A
// session remembers the submitted criteria and current result server-side,
// so clients page and re-sort without resending the full query.
type SessionHandler struct {
	sessions *usecase.SessionManager
}

// NewSessionHandler creates a new SessionHandler over the given manager.
func NewSessionHandler(sessions *usecase.SessionManager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession handles POST /api/v1/search-sessions
//
// @Summary Open a search session
// @Description Open a session, run the submitted search, and return the session ID with the first page
// @Tags sessions
// @Produce json
// @Param departureAirport query string true "Departure airport IATA code"
// @Param arriveAirport query string true "Arrival airport IATA code"
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param oneWay query bool false "One-way search"
// @Param returnDate query string false "Return date (YYYY-MM-DD, round trip only)"
// @Param maxStops query int false "Maximum connections per direction"
// @Param airline query string false "Airline code filter"
// @Param sortBy query string false "Sort order: traveltime, arrivaltime, departuretime"
// @Param pageSize query int false "Results per page (1-50)"
// @Success 201 {object} SessionResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/search-sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	req, err := bindSearchRequest(c)
	if err != nil {
		return response.BadRequest(c, "Failed to parse query parameters")
	}

	if err := req.Validate(); err != nil {
		var validationErrs *ValidationErrors
		if errors.As(err, &validationErrs) {
			return response.ValidationError(c, validationErrs.ToMap())
		}
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	id, session := h.sessions.Open()
	result, err := session.Submit(c.Request().Context(), ToDomainCriteria(&req))
	if err != nil {
		h.sessions.Close(id)
		return h.handleError(c, err)
	}

	return response.Created(c, ToSessionResponse(id, result))
}

// GetSession handles GET /api/v1/search-sessions/:id
//
// @Summary Get a session's current result
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponseDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/search-sessions/{id} [get]
func (h *SessionHandler) GetSession(c echo.Context) error {
	id := c.Param("id")
	session, err := h.sessions.Get(id)
	if err != nil {
		return h.handleError(c, err)
	}
	result := session.Result()
	if result == nil {
		return h.handleError(c, usecase.ErrNoActiveSearch)
	}
	return response.OK(c, ToSessionResponse(id, result))
}

// NextPage handles POST /api/v1/search-sessions/:id/next
//
// @Summary Advance a session one page
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponseDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/search-sessions/{id}/next [post]
func (h *SessionHandler) NextPage(c echo.Context) error {
	return h.transition(c, func(s *usecase.SearchSession, c echo.Context) (*usecase.SearchResult, error) {
		return s.NextPage(c.Request().Context())
	})
}

// PrevPage handles POST /api/v1/search-sessions/:id/prev
//
// @Summary Move a session back one page
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponseDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/search-sessions/{id}/prev [post]
func (h *SessionHandler) PrevPage(c echo.Context) error {
	return h.transition(c, func(s *usecase.SearchSession, c echo.Context) (*usecase.SearchResult, error) {
		return s.PrevPage(c.Request().Context())
	})
}

// SetSort handles POST /api/v1/search-sessions/:id/sort
//
// @Summary Change a session's sort order
// @Description Re-run the session's search from page 1 under a new sort order
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param sortBy query string true "Sort order: traveltime, arrivaltime, departuretime"
// @Success 200 {object} SessionResponseDTO
// @Failure 400 {object} response.ErrorDetail "Invalid sort order"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/search-sessions/{id}/sort [post]
func (h *SessionHandler) SetSort(c echo.Context) error {
	sortBy := domain.SortOption(c.QueryParam("sortBy"))
	if !sortBy.IsValid() {
		return response.ValidationError(c, map[string]string{
			"sortBy": "must be one of: traveltime, arrivaltime, departuretime",
		})
	}
	return h.transition(c, func(s *usecase.SearchSession, c echo.Context) (*usecase.SearchResult, error) {
		return s.SetSort(c.Request().Context(), sortBy)
	})
}

// CloseSession handles DELETE /api/v1/search-sessions/:id
//
// @Summary Close a search session
// @Tags sessions
// @Success 204 "Closed"
// @Param id path string true "Session ID"
// @Router /api/v1/search-sessions/{id} [delete]
func (h *SessionHandler) CloseSession(c echo.Context) error {
	h.sessions.Close(c.Param("id"))
	return response.NoContent(c)
}

// transition looks up the session and applies one state transition to it.
func (h *SessionHandler) transition(c echo.Context, fn func(*usecase.SearchSession, echo.Context) (*usecase.SearchResult, error)) error {
	id := c.Param("id")
	session, err := h.sessions.Get(id)
	if err != nil {
		return h.handleError(c, err)
	}

	result, err := fn(session, c)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSessionResponse(id, result))
}

// handleError maps session errors first of all, then falls back to the
// shared domain error mapping.
func (h *SessionHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return response.SessionNotFound(c)
	case errors.Is(err, usecase.ErrNoActiveSearch):
		return response.BadRequest(c, "No search has been submitted for this session")
	}
	return handleDomainError(c, err)
}
