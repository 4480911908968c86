package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ErrConnect = "failed to connect to redis"
	ErrClose   = "failed to close redis connection"
)

// ErrNil возвращается Get, если ключа нет.
var ErrNil = redis.Nil

// Client обертывает go-redis и проверяет соединение при создании.
type Client struct {
	client *redis.Client
}

// NewClient подключается к Redis и выполняет Ping в рамках ctx.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	return &Client{client: rdb}, nil
}

// Get возвращает значение ключа или ErrNil.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Incr атомарно увеличивает счетчик. Отсутствующий ключ считается нулем.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// IsNil сообщает, что err означает отсутствие ключа.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrClose, err)
	}
	return nil
}
