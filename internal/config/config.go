package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config — настройки клиента. Значения читаются из окружения,
// флаги командной строки имеют приоритет над ним (см. cmd/client).
type Config struct {
	// ServerURL — единый базовый URL API, задается один раз при старте
	ServerURL string `env:"ASSEMBLEALLY_SERVER, default=http://localhost:8000/api"`

	// DBPath — путь к локальной базе сессии
	DBPath string `env:"ASSEMBLEALLY_DB, default=assembleally-client.db"`

	// PollInterval — период опроса переписки командой messages watch
	PollInterval time.Duration `env:"ASSEMBLEALLY_POLL_INTERVAL, default=10s"`

	// LogLevel — уровень логирования zerolog (debug, info, warn, error)
	LogLevel string `env:"ASSEMBLEALLY_LOG_LEVEL, default=info"`
}

// Load читает конфигурацию из окружения
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Normalize приводит поля к каноничному виду
func (c *Config) Normalize() {
	// Без хвостового слэша: пути endpoints начинаются со слэша
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
}
