// Package config содержит конфигурацию сервиса bookstore.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	pkgconfig "bookstore/pkg/config"
	"bookstore/pkg/logger"
)

const (
	ServiceName = "bookstore"

	// EnvConfigPath задает необязательный файл конфигурации.
	EnvConfigPath = "BOOKSTORE_CONFIG_PATH"
	// EnvPort совместим с переменной PORT исходного сервера.
	EnvPort = "PORT"

	LogConfigLoaded     = "bookstore configuration loaded"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrInvalidPort      = "invalid PORT value"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	CORS     CORSConfig     `yaml:"cors"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Security SecurityConfig `yaml:"security"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load читает конфигурацию из окружения (и файла BOOKSTORE_CONFIG_PATH, если задан).
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if raw := os.Getenv(EnvPort); raw != "" && os.Getenv(EnvHTTPPort) == "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", ErrInvalidPort, raw, err)
		}
		cfg.HTTP.Port = port
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Int("bcrypt_cost", cfg.Security.BcryptCost),
		zap.Strings("cors_origins", cfg.CORS.AllowOrigins),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}
