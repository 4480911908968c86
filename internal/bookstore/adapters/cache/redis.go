// Package cache содержит реализацию кэширования с использованием Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bookstore/internal/bookstore/config"
	"bookstore/internal/bookstore/ports/cache"
	"bookstore/pkg/db/redis"
	"bookstore/pkg/logger"
)

const (
	LogMethodGet    = "get"
	LogMethodSet    = "set"
	LogMethodIncr   = "incr"

	ErrorFailedToConnect = "failed to connect to redis cache"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToIncr    = "failed to increment counter in redis"
)

// RedisCache реализует cache.Cache поверх общего клиента Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache подключается к Redis по настройкам сервиса.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (cache.Cache, error) {
	client, err := redis.NewClient(ctx, cfg.ClientConfig())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisCache{
		client:     client,
		defaultTTL: cfg.ListTTL,
	}, nil
}

// Get возвращает "", nil, если ключа нет.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", key))

	value, err := c.client.Get(ctx, key)
	if err != nil {
		if redis.IsNil(err) {
			return "", nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set сохраняет значение. Нулевой ttl заменяется TTL по умолчанию.
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", key))

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Incr увеличивает счетчик без TTL и возвращает новое значение.
func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodIncr), zap.String("key", key))

	value, err := c.client.Incr(ctx, key)
	if err != nil {
		log.Error(ctx, ErrorFailedToIncr, zap.Error(err))
		return 0, fmt.Errorf("%s: %w", ErrorFailedToIncr, err)
	}

	return value, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
