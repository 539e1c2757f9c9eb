package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWith(t *testing.T, env map[string]string) *Config {
	t.Helper()

	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	require.NoError(t, err)
	cfg.Normalize()
	return &cfg
}

// TestLoad_Defaults проверяет значения по умолчанию
func TestLoad_Defaults(t *testing.T) {
	cfg := loadWith(t, nil)

	assert.Equal(t, "http://localhost:8000/api", cfg.ServerURL)
	assert.Equal(t, "assembleally-client.db", cfg.DBPath)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

// TestLoad_Overrides проверяет чтение переменных окружения
func TestLoad_Overrides(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"ASSEMBLEALLY_SERVER":        "https://market.example.com/api",
		"ASSEMBLEALLY_DB":            "/tmp/session.db",
		"ASSEMBLEALLY_POLL_INTERVAL": "3s",
		"ASSEMBLEALLY_LOG_LEVEL":     "debug",
	})

	assert.Equal(t, "https://market.example.com/api", cfg.ServerURL)
	assert.Equal(t, "/tmp/session.db", cfg.DBPath)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestNormalize_TrailingSlash проверяет срез хвостового слэша базового URL
func TestNormalize_TrailingSlash(t *testing.T) {
	cfg := loadWith(t, map[string]string{
		"ASSEMBLEALLY_SERVER": "https://market.example.com/api/",
	})

	assert.Equal(t, "https://market.example.com/api", cfg.ServerURL)
}
