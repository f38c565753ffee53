// Package method реализует HTTP-обработчик единой точки входа POST /method.
//
// Handler декодирует JSON-тело в сырой словарь, передает его диспетчеру
// методов вместе с диагностическим контекстом запроса и кодирует результат
// в канонической форме ответа. Вся валидация и аутентификация выполняются
// на стороне сервиса.
package method

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/scoring-api/internal/http/response"
	"github.com/magabrotheeeer/scoring-api/internal/lib/sl"
	"github.com/magabrotheeeer/scoring-api/internal/services/scoring"
)

// Handler управляет HTTP-запросами к методам скорингового API.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Диспетчер методов API
}

// Service описывает интерфейс диспетчера методов.
type Service interface {
	HandleMethod(ctx context.Context, body map[string]any, meta *scoring.Meta) (any, int)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Вызвать метод API
// @Description Принимает конверт запроса с логином, токеном, именем метода и аргументами. Возвращает результат метода либо описание ошибки.
// @Tags Methods
// @Accept  json
// @Produce  json
// @Param request body map[string]any true "Конверт запроса"
// @Success 200 {object} response.Success "Результат метода"
// @Failure 400 {object} response.Failure "Некорректный JSON"
// @Failure 403 {object} response.Failure "Ошибка аутентификации"
// @Failure 404 {object} response.Failure "Неизвестный метод"
// @Failure 422 {object} response.Failure "Ошибки валидации полей"
// @Failure 500 {object} response.Failure "Внутренняя ошибка"
// @Router /method [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.method"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	meta := &scoring.Meta{RequestID: requestID(r)}

	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(http.StatusBadRequest, "Bad Request"))
		return
	}
	log.Info("request body decoded", slog.String("client_request_id", meta.RequestID))

	result, code := h.service.HandleMethod(r.Context(), body, meta)
	if code != http.StatusOK {
		log.Info("request rejected", slog.Int("code", code), slog.Any("reason", result))
		w.WriteHeader(code)
		render.JSON(w, r, response.Error(code, result))
		return
	}

	log.Info("request handled",
		slog.Any("has", meta.Has),
		slog.Int("nclients", meta.NClients))
	render.JSON(w, r, response.OK(result))
}

// requestID возвращает идентификатор запроса из заголовка клиента
// либо генерирует новый.
func requestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}
