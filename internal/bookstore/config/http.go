package config

import (
	"fmt"
	"time"
)

// EnvHTTPPort - явный порт сервиса, имеет приоритет над PORT.
const EnvHTTPPort = "BOOKSTORE_HTTP_PORT"

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"BOOKSTORE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"BOOKSTORE_HTTP_PORT" env-default:"5000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"BOOKSTORE_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"BOOKSTORE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	BodyLimit    int           `yaml:"body_limit" env:"BOOKSTORE_HTTP_BODY_LIMIT" env-default:"1048576"`
}

// GetAddress возвращает адрес для Listen.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig задает разрешенные источники для браузерных клиентов.
type CORSConfig struct {
	AllowOrigins     []string `yaml:"allow_origins" env:"BOOKSTORE_CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:4200"`
	AllowCredentials bool     `yaml:"allow_credentials" env:"BOOKSTORE_CORS_ALLOW_CREDENTIALS" env-default:"true"`
}
