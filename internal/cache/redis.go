// Package cache реализует key/value-хранилище поверх Redis.
//
// Хранилище различает два режима доступа: Get — обязательное чтение,
// недоступность Redis возвращается как ошибка; CacheGet и CacheSet —
// best-effort операции, которые при любой ошибке ведут себя как промах
// кеша и никогда не возвращают ошибку наружу.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/scoring-api/internal/config"
	"github.com/magabrotheeeer/scoring-api/internal/lib/sl"
)

// Store обёртка над redis.Client с разделением на обязательные
// и best-effort операции.
type Store struct {
	db  *redis.Client
	log *slog.Logger
}

// New создает клиент и проверяет соединение пингом с ограниченным числом
// попыток и экспоненциальной задержкой. Если все попытки исчерпаны, процесс
// продолжает работу в деградированном режиме: best-effort операции ведут
// себя как промахи, обязательные возвращают ошибку при каждом вызове.
func New(ctx context.Context, cfg config.RedisConnection, log *slog.Logger) *Store {
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		Username:     cfg.User,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
	s := &Store{db: db, log: log}

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		err := db.Ping(ctx).Err()
		if err == nil {
			log.Info("connected to redis", slog.String("addr", cfg.Addr))
			return s
		}
		log.Warn("redis connection failed",
			slog.Int("attempt", attempt),
			slog.Int("max_retries", cfg.MaxRetries),
			sl.Err(err))

		wait := cfg.RetryDelay * (1 << (attempt - 1))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return s
		}
	}

	log.Error("failed to connect to redis after retries", slog.String("addr", cfg.Addr))
	return s
}

// Get возвращает значение по ключу. Отсутствие ключа ошибкой не считается,
// недоступность хранилища — считается.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	const op = "cache.Get"
	val, err := s.db.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

// CacheGet читает значение best-effort: любая ошибка равносильна промаху.
func (s *Store) CacheGet(ctx context.Context, key string) string {
	val, err := s.db.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Debug("cache get failed", slog.String("key", key), sl.Err(err))
		}
		return ""
	}
	return val
}

// CacheSet записывает значение с TTL best-effort: ошибки только логируются.
func (s *Store) CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.db.Set(ctx, key, value, ttl).Err(); err != nil {
		s.log.Debug("cache set failed", slog.String("key", key), sl.Err(err))
	}
}

// Ping проверяет соединение с хранилищем.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx).Err()
}

// Close закрывает соединение с хранилищем.
func (s *Store) Close() error {
	return s.db.Close()
}
