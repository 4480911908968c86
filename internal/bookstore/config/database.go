package config

import (
	"fmt"
	"net/url"
	"time"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `yaml:"host" env:"BOOKSTORE_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"BOOKSTORE_POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"BOOKSTORE_POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"BOOKSTORE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `yaml:"database" env:"BOOKSTORE_POSTGRES_DB" env-default:"bookstore"`
	SSLMode         string        `yaml:"ssl_mode" env:"BOOKSTORE_POSTGRES_SSL_MODE" env-default:"disable"`
	MinConn         int           `yaml:"min_conn" env:"BOOKSTORE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int           `yaml:"max_conn" env:"BOOKSTORE_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"BOOKSTORE_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	MigrationsDir   string        `yaml:"migrations_dir" env:"BOOKSTORE_MIGRATIONS_DIR" env-default:"migrations/bookstore"`
}

// GetDSN возвращает строку подключения в формате keyword/value для pgxpool.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// GetConnectionURL возвращает URL подключения для golang-migrate.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Database,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}
