package cache

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/scoring-api/internal/config"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := config.RedisConnection{
		Addr:       mr.Addr(),
		MaxRetries: 1,
		RetryDelay: 10 * time.Millisecond,
	}

	return New(context.Background(), cfg, logger), mr
}

func TestGet(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set("i:1", `["books"]`))

	val, err := store.Get(context.Background(), "i:1")
	require.NoError(t, err)
	assert.Equal(t, `["books"]`, val)
}

func TestGetMissingKey(t *testing.T) {
	store, _ := setupTestStore(t)

	val, err := store.Get(context.Background(), "no_such_key")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestGetUnavailable(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "i:1")
	assert.Error(t, err)
}

func TestCacheSetAndGet(t *testing.T) {
	store, mr := setupTestStore(t)

	store.CacheSet(context.Background(), "uid:abc", "3", time.Hour)

	assert.Equal(t, "3", store.CacheGet(context.Background(), "uid:abc"))

	// запись имеет TTL
	mr.FastForward(2 * time.Hour)
	assert.Equal(t, "", store.CacheGet(context.Background(), "uid:abc"))
}

func TestCacheGetBestEffort(t *testing.T) {
	store, mr := setupTestStore(t)

	// промах
	assert.Equal(t, "", store.CacheGet(context.Background(), "no_such_key"))

	// недоступность хранилища равносильна промаху
	mr.Close()
	assert.Equal(t, "", store.CacheGet(context.Background(), "uid:abc"))
}

func TestCacheSetUnavailableDoesNotFail(t *testing.T) {
	store, mr := setupTestStore(t)
	mr.Close()

	// не должно ни паниковать, ни возвращать ошибку
	store.CacheSet(context.Background(), "uid:abc", "3", time.Hour)
}

func TestNewDegradedMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := config.RedisConnection{
		Addr:        "127.0.0.1:1",
		MaxRetries:  2,
		RetryDelay:  time.Millisecond,
		DialTimeout: 100 * time.Millisecond,
	}

	store := New(context.Background(), cfg, logger)
	require.NotNil(t, store)

	// обязательный путь возвращает ошибку, best-effort пути молчат
	_, err := store.Get(context.Background(), "i:1")
	assert.Error(t, err)
	assert.Equal(t, "", store.CacheGet(context.Background(), "i:1"))
}

func TestPing(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
