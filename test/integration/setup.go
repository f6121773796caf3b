// Package integration provides helpers and integration tests for the
// itinerary search service. Tests stand up a stub flight-search API and
// exercise the full stack: HTTP handler, use cases, and the upstream client.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skyroute/itinerary-search-service/internal/adapter/http"
	"github.com/skyroute/itinerary-search-service/internal/adapter/upstream"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

// flightJSON is the stub catalog's recursive record shape.
type flightJSON struct {
	ID               int64       `json:"id"`
	FlightNumber     string      `json:"flightNumber"`
	Airline          string      `json:"airline"`
	DepartureAirport string      `json:"departureAirport"`
	ArrivalAirport   string      `json:"arrivalAirport"`
	DepartureTime    string      `json:"departureTime"`
	ArrivalTime      string      `json:"arrivalTime"`
	NextFlight       *flightJSON `json:"nextFlight,omitempty"`
	ReturnTrip       *flightJSON `json:"returnTrip,omitempty"`
}

// pageJSON is the stub catalog's search response shape.
type pageJSON struct {
	Flights         []flightJSON `json:"flights"`
	HasMore         bool         `json:"hasMore"`
	HasMoreOutbound bool         `json:"hasMoreOutbound"`
	HasMoreReturn   bool         `json:"hasMoreReturn"`
	Total           int          `json:"total"`
}

// StubCatalog is an in-memory flight-search API for integration tests.
// Pages maps page numbers to canned responses; ReserveStatus controls the
// reservation endpoint.
type StubCatalog struct {
	Pages         map[int]pageJSON
	Itineraries   map[string]flightJSON
	ReserveStatus int

	SearchCalls  int
	ReserveCalls int
}

// NewStubCatalog creates an empty stub that reserves successfully.
func NewStubCatalog() *StubCatalog {
	return &StubCatalog{
		Pages:         map[int]pageJSON{},
		Itineraries:   map[string]flightJSON{},
		ReserveStatus: http.StatusOK,
	}
}

// Handler returns the stub as an http.Handler.
func (s *StubCatalog) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /flights", func(w http.ResponseWriter, r *http.Request) {
		s.SearchCalls++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		resp, ok := s.Pages[page]
		if !ok {
			resp = pageJSON{Flights: []flightJSON{}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	})

	mux.HandleFunc("GET /flights/{id}", func(w http.ResponseWriter, r *http.Request) {
		rec, ok := s.Itineraries[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec) //nolint:errcheck
	})

	mux.HandleFunc("POST /flights/{id}/reserve", func(w http.ResponseWriter, r *http.Request) {
		s.ReserveCalls++
		w.WriteHeader(s.ReserveStatus)
	})

	return mux
}

// TestServer wires the full service stack over a stub catalog.
type TestServer struct {
	Echo     *echo.Echo
	Catalog  *StubCatalog
	upstream *httptest.Server
}

// NewTestServer starts a stub catalog and builds the service against it.
func NewTestServer(catalog *StubCatalog) *TestServer {
	upstreamSrv := httptest.NewServer(catalog.Handler())

	log := logger.Nop()
	client := upstream.NewClient(upstreamSrv.URL, log)
	presenter := usecase.NewPresenter(log)
	searcher := usecase.NewSearcher(client, nil, presenter, log)
	booking := usecase.NewBooking(client, client, presenter, log)
	sessions := usecase.NewSessionManager(searcher, nil, 0, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpAdapter.RegisterRoutes(e,
		httpAdapter.NewItineraryHandler(searcher, booking),
		httpAdapter.NewSessionHandler(sessions))

	return &TestServer{
		Echo:     e,
		Catalog:  catalog,
		upstream: upstreamSrv,
	}
}

// Close shuts down the stub catalog.
func (ts *TestServer) Close() {
	ts.upstream.Close()
}

// Get performs a GET request against the service.
func (ts *TestServer) Get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

// Post performs a POST request against the service.
func (ts *TestServer) Post(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

// Delete performs a DELETE request against the service.
func (ts *TestServer) Delete(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)
	return rec
}

// oneWayFlight builds a single-segment stub record.
func oneWayFlight(id int64, number, dep, arr, depAt, arrAt string) flightJSON {
	return flightJSON{
		ID:               id,
		FlightNumber:     number,
		Airline:          "DL",
		DepartureAirport: dep,
		ArrivalAirport:   arr,
		DepartureTime:    depAt,
		ArrivalTime:      arrAt,
	}
}

// searchPath builds a one-way search URL for the given page.
func searchPath(page int) string {
	return fmt.Sprintf(
		"/api/v1/itineraries?departureAirport=BOS&arriveAirport=LAX&departureDate=2026-05-10&oneWay=true&page=%d",
		page)
}
