package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/itinerary-search-service/internal/adapter/http/response"
	"github.com/skyroute/itinerary-search-service/internal/domain"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

const createSessionPath = "/api/v1/search-sessions?departureAirport=BOS&arriveAirport=LAX&departureDate=2026-05-10&oneWay=true"

// sessionResult builds a one-row result echoing the criteria's page, so
// tests can see which fetch produced the response.
func sessionResult(criteria domain.SearchCriteria) (*usecase.SearchResult, error) {
	return &usecase.SearchResult{
		Criteria: criteria,
		Rows:     []usecase.Row{{ID: "42"}},
		HasMore:  true,
		Total:    12,
	}, nil
}

func setupSessionHandler(search usecase.SearchUseCase) *echo.Echo {
	e := echo.New()
	h := NewItineraryHandler(search, &mockBookingUseCase{})
	sh := NewSessionHandler(usecase.NewSessionManager(search, nil, 0, nil))
	RegisterRoutes(e, h, sh)
	return e
}

func createSession(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := makeRequest(e, http.MethodPost, createSessionPath)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body SessionResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.SessionID)
	return body.SessionID
}

func TestCreateSession(t *testing.T) {
	t.Run("returns session id with first page", func(t *testing.T) {
		search := &mockSearchUseCase{searchFunc: func(_ context.Context, criteria domain.SearchCriteria) (*usecase.SearchResult, error) {
			return sessionResult(criteria)
		}}
		e := setupSessionHandler(search)

		rec := makeRequest(e, http.MethodPost, createSessionPath)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body SessionResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.SessionID)
		require.NotNil(t, body.Result)
		assert.Equal(t, 1, body.Result.Page)
		assert.Len(t, body.Result.Results, 1)
	})

	t.Run("rejects invalid criteria", func(t *testing.T) {
		e := setupSessionHandler(&mockSearchUseCase{})

		rec := makeRequest(e, http.MethodPost, "/api/v1/search-sessions?departureAirport=XX")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("does not keep the session when the search fails", func(t *testing.T) {
		search := &mockSearchUseCase{searchFunc: func(context.Context, domain.SearchCriteria) (*usecase.SearchResult, error) {
			return nil, domain.ErrUpstreamUnavailable
		}}
		e := setupSessionHandler(search)

		rec := makeRequest(e, http.MethodPost, createSessionPath)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestSessionTransitions(t *testing.T) {
	search := &mockSearchUseCase{searchFunc: func(_ context.Context, criteria domain.SearchCriteria) (*usecase.SearchResult, error) {
		return sessionResult(criteria)
	}}
	e := setupSessionHandler(search)
	id := createSession(t, e)

	t.Run("get returns the current result", func(t *testing.T) {
		rec := makeRequest(e, http.MethodGet, "/api/v1/search-sessions/"+id)
		require.Equal(t, http.StatusOK, rec.Code)

		var body SessionResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id, body.SessionID)
		assert.Equal(t, 1, body.Result.Page)
	})

	t.Run("next advances one page", func(t *testing.T) {
		rec := makeRequest(e, http.MethodPost, "/api/v1/search-sessions/"+id+"/next")
		require.Equal(t, http.StatusOK, rec.Code)

		var body SessionResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Result.Page)
	})

	t.Run("prev moves back", func(t *testing.T) {
		rec := makeRequest(e, http.MethodPost, "/api/v1/search-sessions/"+id+"/prev")
		require.Equal(t, http.StatusOK, rec.Code)

		var body SessionResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Result.Page)
	})

	t.Run("sort resets to page one", func(t *testing.T) {
		next := makeRequest(e, http.MethodPost, "/api/v1/search-sessions/"+id+"/next")
		require.Equal(t, http.StatusOK, next.Code)

		rec := makeRequest(e, http.MethodPost, "/api/v1/search-sessions/"+id+"/sort?sortBy=arrivaltime")
		require.Equal(t, http.StatusOK, rec.Code)

		var body SessionResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Result.Page)
	})

	t.Run("sort rejects unknown option", func(t *testing.T) {
		rec := makeRequest(e, http.MethodPost, "/api/v1/search-sessions/"+id+"/sort?sortBy=price")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete closes the session", func(t *testing.T) {
		rec := makeRequest(e, http.MethodDelete, "/api/v1/search-sessions/"+id)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = makeRequest(e, http.MethodGet, "/api/v1/search-sessions/"+id)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSessionUnknownID(t *testing.T) {
	e := setupSessionHandler(&mockSearchUseCase{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/search-sessions/nope"},
		{http.MethodPost, "/api/v1/search-sessions/nope/next"},
		{http.MethodPost, "/api/v1/search-sessions/nope/prev"},
		{http.MethodPost, "/api/v1/search-sessions/nope/sort?sortBy=traveltime"},
	}
	for _, tt := range tests {
		rec := makeRequest(e, tt.method, tt.path)
		require.Equal(t, http.StatusNotFound, rec.Code, tt.path)

		var body response.ErrorDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, response.CodeNotFound, body.Code)
	}
}
