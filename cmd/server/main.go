// Package main is the entry point for the itinerary search service.
//
//	@title						Itinerary Search API
//	@version					1.0.0
//	@description				A search and booking front-end service over the flight catalog API, presenting one-way and round-trip itineraries with server-side paging and sorting.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skyroute/itinerary-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/skyroute/itinerary-search-service/docs"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/itinerary-search-service/internal/adapter/cache"
	itinhttp "github.com/skyroute/itinerary-search-service/internal/adapter/http"
	"github.com/skyroute/itinerary-search-service/internal/adapter/http/middleware"
	"github.com/skyroute/itinerary-search-service/internal/adapter/upstream"
	"github.com/skyroute/itinerary-search-service/internal/config"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skyroute/itinerary-search-service/internal/infrastructure/timeutil"
	"github.com/skyroute/itinerary-search-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "itinerary-search",
	})
	log.Logger = appLog.Logger

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Bool("cache", cfg.CacheEnabled()).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.Logger)

	handler, sessionHandler := buildHandlers(cfg, appLog)
	itinhttp.RegisterRoutes(e, handler, sessionHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// buildHandlers wires the upstream client, optional cache, and use cases
// into the HTTP handlers.
func buildHandlers(cfg *config.Config, appLog *logger.Logger) (*itinhttp.ItineraryHandler, *itinhttp.SessionHandler) {
	clientOpts := []upstream.Option{
		upstream.WithHTTPClient(&http.Client{Timeout: cfg.Upstream.Timeout}),
	}
	if cfg.Upstream.RequestsPerSecond > 0 {
		clientOpts = append(clientOpts,
			upstream.WithRateLimit(cfg.Upstream.RequestsPerSecond, cfg.Upstream.Burst))
	}
	client := upstream.NewClient(cfg.Upstream.BaseURL, appLog, clientOpts...)

	var pageCache usecase.PageCache
	if cfg.CacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pageCache = cache.NewRedisPageCache(rdb, cfg.Cache.TTL, appLog)
	}

	presenter := usecase.NewPresenter(appLog)
	searcher := usecase.NewSearcher(client, pageCache, presenter, appLog)
	booking := usecase.NewBooking(client, client, presenter, appLog)
	sessions := usecase.NewSessionManager(searcher, timeutil.NewRealClock(), usecase.DefaultSessionTTL, appLog)

	return itinhttp.NewItineraryHandler(searcher, booking), itinhttp.NewSessionHandler(sessions)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
