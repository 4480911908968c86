// Package db поднимает базу данных bookstore: миграции, затем пул соединений.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/config"
	"bookstore/pkg/db/postgres"
	"bookstore/pkg/logger"
)

const (
	LogDBInitializing    = "initializing bookstore database"
	LogDBInitialized     = "bookstore database initialized successfully"
	LogMigrationStarting = "starting bookstore database migrations"
)

const (
	ErrDBMigrations = "failed to apply bookstore database migrations"
	ErrDBConnection = "failed to connect to bookstore database"
	ErrGetPath      = "failed to resolve migrations path"
)

// DB представляет соединение с базой данных сервиса.
type DB struct {
	database *postgres.Database
}

// New применяет миграции из cfg.MigrationsDir и открывает пул.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	sourceURL, err := MigrationsSourceURL(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", sourceURL))
	if err := postgres.Migrate(ctx, cfg.GetConnectionURL(), sourceURL); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), postgres.PoolOptions{
		MinConns:        int32(cfg.MinConn),
		MaxConns:        int32(cfg.MaxConn),
		MaxConnLifetime: cfg.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)
	return &DB{database: database}, nil
}

// MigrationsSourceURL превращает каталог миграций в file:// URL с абсолютным путем.
func MigrationsSourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// Close закрывает пул. Сигнатура подходит для shutdown.Wait.
func (db *DB) Close(ctx context.Context) error {
	db.database.Close(ctx)
	return nil
}

// Pool возвращает пул соединений.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.database.Ping(ctx)
}
