// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"bookstore/internal/bookstore/adapters/http/auth"
	"bookstore/internal/bookstore/adapters/http/books"
	"bookstore/internal/bookstore/adapters/http/middleware"
	"bookstore/internal/bookstore/app/dto"
	"bookstore/internal/bookstore/config"
	"bookstore/internal/bookstore/ports/api"
)

// MsgRouteNotFound - ответ для несуществующих маршрутов.
const MsgRouteNotFound = "Route not found"

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	catalogUseCase api.CatalogUseCase,
	corsCfg *config.CORSConfig,
) {
	authHandler := auth.NewHandler(authUseCase)
	booksHandler := books.NewHandler(catalogUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsCfg.AllowOrigins,
		AllowCredentials: corsCfg.AllowCredentials,
		AllowHeaders: []string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			middleware.HeaderRequestID,
			middleware.HeaderUsername,
			middleware.HeaderPassword,
		},
	}))

	apiGroup := app.Group("/api")

	// Публичные маршруты.
	apiGroup.Post("/register", authHandler.Register)
	apiGroup.Post("/login", authHandler.Login)

	// Каталог, каждый запрос проверяет учетные данные.
	booksRoutes := apiGroup.Group("/books", middleware.NewCredentialsMiddleware(authUseCase))
	booksRoutes.Get("/", booksHandler.ListBooks)
	booksRoutes.Post("/", booksHandler.CreateBook)
	booksRoutes.Delete("/:id", booksHandler.DeleteBook)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: MsgRouteNotFound,
		})
	})
}
