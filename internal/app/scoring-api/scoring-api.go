// Package scoringapi собирает приложение: хранилище, сервис скоринга,
// маршруты и HTTP-сервер с корректным завершением.
package scoringapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/scoring-api/internal/cache"
	"github.com/magabrotheeeer/scoring-api/internal/config"
	scoringservice "github.com/magabrotheeeer/scoring-api/internal/services/scoring"
)

// App связывает HTTP-сервер с его зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  *cache.Store
}

// New создает приложение: подключает хранилище (с ограниченными повторными
// попытками), собирает сервис и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *App {
	store := cache.New(ctx, cfg.RedisConnection, logger)

	scoringService := scoringservice.New(store, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, scoringService, store)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}
}

// Run запускает HTTP-сервер и блокируется до ошибки либо отмены ctx,
// после которой сервер останавливается с таймаутом на дослуживание.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.store.Close()
		return err
	}
}
