package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/app/dto"
	"bookstore/internal/bookstore/domain/services"
	"bookstore/internal/bookstore/ports/api"
	"bookstore/pkg/logger"
)

// Заголовки с учетными данными и ответы проверки.
const (
	HeaderUsername = "username"
	HeaderPassword = "password"

	// LocalsUsername - ключ Locals с именем прошедшего проверку пользователя.
	LocalsUsername = "username"

	MsgCredentialsRequired = "Username and password required"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgInternalServerError = "Internal server error"

	LogCredentialsMiddleware = "credentials middleware"
	LogCredentialsRejected   = "request rejected by credentials check"
	ErrorCredentialsCheck    = "failed to check request credentials"
)

// NewCredentialsMiddleware проверяет заголовки username и password на каждом запросе.
func NewCredentialsMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "credentials"))
		log.Debug(requestCtx, LogCredentialsMiddleware)

		username := ctx.Get(HeaderUsername)
		err := authUseCase.Authenticate(requestCtx, username, ctx.Get(HeaderPassword))
		switch {
		case err == nil:
		case errors.Is(err, services.ErrCredentialsRequired):
			log.Debug(requestCtx, LogCredentialsRejected, zap.Error(err))
			return sendMessage(ctx, fiber.StatusUnauthorized, MsgCredentialsRequired)
		case errors.Is(err, services.ErrUnauthenticated):
			log.Debug(requestCtx, LogCredentialsRejected, zap.Error(err))
			return sendMessage(ctx, fiber.StatusUnauthorized, MsgInvalidCredentials)
		default:
			log.Error(requestCtx, ErrorCredentialsCheck, zap.Error(err))
			return sendMessage(ctx, fiber.StatusInternalServerError, MsgInternalServerError)
		}

		ctx.Locals(LocalsUsername, username)

		return ctx.Next()
	}
}

func sendMessage(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
