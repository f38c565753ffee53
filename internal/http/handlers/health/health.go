// Package health реализует HTTP-обработчик проверки живости сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/scoring-api/internal/http/response"
	"github.com/magabrotheeeer/scoring-api/internal/lib/sl"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает на запросы проверки живости.
type Handler struct {
	log   *slog.Logger
	store Pinger
}

// New создает новый Handler.
func New(log *slog.Logger, store Pinger) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

// ServeHTTP возвращает состояние сервиса и хранилища. Недоступное
// хранилище не делает сервис нездоровым: best-effort пути продолжают
// работать в деградированном режиме.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	storage := "ok"
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.Warn("storage is unavailable", slog.String("op", op), sl.Err(err))
		storage = "unavailable"
	}

	render.JSON(w, r, response.OK(map[string]string{
		"status":  "ok",
		"storage": storage,
	}))
}
