// Package middlewarectx содержит HTTP middleware приложения: ограничение
// частоты запросов и сбор метрик.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/scoring-api/internal/http/response"
)

var limiter = rate.NewLimiter(100, 200)

// RateLimitMiddleware отклоняет запросы сверх лимита со статусом 429.
func RateLimitMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests")
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, response.Error(http.StatusTooManyRequests, "too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
