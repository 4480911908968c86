// Package cache определяет интерфейс кэша.
package cache

import (
	"context"
	"time"
)

// Cache - строковое key/value хранилище с TTL. Get возвращает "", nil для отсутствующего ключа.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Incr атомарно увеличивает счетчик; отсутствующий ключ считается нулем.
	Incr(ctx context.Context, key string) (int64, error)

	Close() error
}
