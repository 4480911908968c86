package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/bookstore/config"
	"bookstore/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvPort, "")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.GetAddress())
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.ListTTL)
	assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())
	assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
	assert.Equal(t, "migrations/bookstore", cfg.Postgres.MigrationsDir)
}

func TestLoadPort(t *testing.T) {
	t.Run("PORT is honoured", func(t *testing.T) {
		t.Setenv(config.EnvPort, "5055")

		cfg, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5055, cfg.HTTP.Port)
	})

	t.Run("explicit service port wins over PORT", func(t *testing.T) {
		t.Setenv(config.EnvPort, "5055")
		t.Setenv(config.EnvHTTPPort, "6000")

		cfg, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 6000, cfg.HTTP.Port)
	})

	t.Run("invalid PORT", func(t *testing.T) {
		t.Setenv(config.EnvPort, "http")

		_, err := config.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrInvalidPort)
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOOKSTORE_CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("BOOKSTORE_BCRYPT_COST", "12")
	t.Setenv("BOOKSTORE_LOGGER_MODE", "Development")
	t.Setenv("BOOKSTORE_REDIS_ENABLED", "true")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
	assert.True(t, cfg.Redis.Enabled)
}

func TestPostgresConnectionStrings(t *testing.T) {
	pg := config.PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "books",
		Password: "p@ss",
		Database: "store",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=books password=p@ss dbname=store sslmode=disable", pg.GetDSN())
	assert.Equal(t, "postgres://books:p%40ss@db:5433/store?sslmode=disable", pg.GetConnectionURL())
}

func TestRedisClientConfig(t *testing.T) {
	rc := config.RedisConfig{Host: "cache", Port: 6380, DB: 2, PoolSize: 4, MinIdle: 1}
	cc := rc.ClientConfig()

	assert.Equal(t, "cache:6380", cc.Addr())
	assert.Equal(t, 2, cc.DB)
	assert.Equal(t, 4, cc.PoolSize)
	assert.Equal(t, 1, cc.MinIdleConns)
}
