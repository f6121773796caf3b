// Package http provides the HTTP handler layer for the itinerary search API.
package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all itinerary search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler, sh *SessionHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	api := e.Group("/api/v1")

	// Itineraries group
	itineraries := api.Group("/itineraries")
	itineraries.GET("", h.SearchItineraries)
	itineraries.GET("/:id", h.GetItinerary)
	itineraries.POST("/:id/reserve", h.ReserveItinerary)

	// Stateful search sessions
	sessions := api.Group("/search-sessions")
	sessions.POST("", sh.CreateSession)
	sessions.GET("/:id", sh.GetSession)
	sessions.POST("/:id/next", sh.NextPage)
	sessions.POST("/:id/prev", sh.PrevPage)
	sessions.POST("/:id/sort", sh.SetSort)
	sessions.DELETE("/:id", sh.CloseSession)
}
