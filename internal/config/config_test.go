package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoadValidConfig(t *testing.T) {
	configContent := `
env: test
log_file: /var/log/scoring-api.log
redis_connection:
  addr: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 3
  retry_delay: 200ms
  dial_timeout: 5s
  timeout: 10s
http_server:
  address: ":8080"
  timeout: 30s
  idle_timeout: 60s
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("CONFIG_PATH", configPath)

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "/var/log/scoring-api.log", cfg.LogFile)
	assert.Equal(t, "localhost:6379", cfg.RedisConnection.Addr)
	assert.Equal(t, "redis_pass", cfg.RedisConnection.Password)
	assert.Equal(t, "redis_user", cfg.RedisConnection.User)
	assert.Equal(t, 1, cfg.RedisConnection.DB)
	assert.Equal(t, 3, cfg.RedisConnection.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.RedisConnection.RetryDelay)
	assert.Equal(t, 5*time.Second, cfg.RedisConnection.DialTimeout)
	assert.Equal(t, 10*time.Second, cfg.RedisConnection.Timeout)
	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 30*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
}

func TestMustLoadDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("env: local\n"), 0o644))

	t.Setenv("CONFIG_PATH", configPath)

	cfg := MustLoad()

	assert.Equal(t, "localhost:8080", cfg.HTTPServer.Address)
	assert.Equal(t, "localhost:6379", cfg.RedisConnection.Addr)
	assert.Equal(t, 5, cfg.RedisConnection.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.RedisConnection.RetryDelay)
}
