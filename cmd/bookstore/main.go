package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/adapters/cache"
	httpServer "bookstore/internal/bookstore/adapters/http"
	"bookstore/internal/bookstore/adapters/postgres"
	"bookstore/internal/bookstore/adapters/services"
	"bookstore/internal/bookstore/app"
	"bookstore/internal/bookstore/config"
	"bookstore/internal/bookstore/db"
	cachePorts "bookstore/internal/bookstore/ports/cache"
	"bookstore/pkg/logger"
	"bookstore/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "BOOKSTORE_LOGGER_MODE"
	EnvLoggerLevel = "BOOKSTORE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDatabase         = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "bookstore service started"
	LogServiceShutdownDone = "bookstore service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing books cache"
	LogCacheDisabled       = "books cache disabled"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingRedis        = "closing Redis connection"
	LogClosingDatabase     = "closing database connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx, cancel := context.WithCancel(logger.NewRequestIDContext(context.Background(), ""))
	defer cancel()

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		var booksCache cachePorts.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			booksCache, err = cache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				if closeErr := database.Close(ctx); closeErr != nil {
					log.Error(ctx, LogClosingDatabase, zap.Error(closeErr))
				}
				exitCode = 1
				return
			}
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitServices)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		serviceFactory := services.NewServiceFactory(cfg.Security.BcryptCost)

		authUseCase := app.NewAuthUseCase(repoFactory.UserRepository(), serviceFactory.PasswordService())
		catalogUseCase := app.NewCatalogUseCase(repoFactory.BookRepository(), booksCache)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			AppName:      config.ServiceName,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		httpServer.SetupRouter(fiberApp, authUseCase, catalogUseCase, &cfg.CORS)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		listenErr := make(chan error, 1)
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{
				DisableStartupMessage: true,
			}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
				listenErr <- err
				cancel()
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера, пул закрывается после последнего запроса.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				httpErr := fiberApp.ShutdownWithContext(ctx)

				log.Info(ctx, LogClosingDatabase)
				return errors.Join(httpErr, database.Close(ctx))
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				if booksCache == nil {
					return nil
				}
				log.Info(ctx, LogClosingRedis)
				return booksCache.Close()
			},
		)

		select {
		case <-listenErr:
			exitCode = 1
		default:
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
