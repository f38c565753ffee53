// Package scoringapi предоставляет маршруты для основного приложения.
package scoringapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/scoring-api/internal/cache"
	"github.com/magabrotheeeer/scoring-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/scoring-api/internal/http/handlers/method"
	"github.com/magabrotheeeer/scoring-api/internal/http/middlewarectx"
	scoringservice "github.com/magabrotheeeer/scoring-api/internal/services/scoring"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, scoringService *scoringservice.Service, store *cache.Store) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.MetricsMiddleware())

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/method", method.New(logger, scoringService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, store).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
