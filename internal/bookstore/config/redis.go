package config

import (
	"time"

	"bookstore/pkg/db/redis"
)

// RedisConfig настраивает необязательный кэш списка книг.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled" env:"BOOKSTORE_REDIS_ENABLED" env-default:"false"`
	Host         string        `yaml:"host" env:"BOOKSTORE_REDIS_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"BOOKSTORE_REDIS_PORT" env-default:"6379"`
	Password     string        `yaml:"password" env:"BOOKSTORE_REDIS_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"BOOKSTORE_REDIS_DB" env-default:"0"`
	PoolSize     int           `yaml:"pool_size" env:"BOOKSTORE_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle      int           `yaml:"min_idle" env:"BOOKSTORE_REDIS_MIN_IDLE" env-default:"2"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"BOOKSTORE_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"BOOKSTORE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"BOOKSTORE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	ListTTL      time.Duration `yaml:"list_ttl" env:"BOOKSTORE_REDIS_LIST_TTL" env-default:"1m"`
}

// ClientConfig переводит настройки в конфигурацию общего клиента.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:         c.Host,
		Port:         c.Port,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdle,
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}
