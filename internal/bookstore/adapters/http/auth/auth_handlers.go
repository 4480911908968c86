// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/adapters/http/middleware"
	"bookstore/internal/bookstore/app/dto"
	"bookstore/internal/bookstore/domain/services"
	"bookstore/internal/bookstore/ports/api"
	"bookstore/pkg/logger"
)

// Константы для логирования и ответов.
const (
	LogHandlerRegister  = "auth handler: register"
	LogHandlerLogin     = "auth handler: login"
	LogLoginRejected    = "auth handler: login rejected, invalid credentials"
	LogRegisterRejected = "auth handler: register rejected, username taken"

	ErrorInvalidRequest       = "request body not fully decoded, missing fields are empty"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgUserRegistered     = "User registered successfully"
	MsgUserAlreadyExists  = "User already exists"
	MsgLoginSuccessful    = "Login successful"
	MsgInvalidCredentials = "Invalid credentials"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	req := h.bindCredentials(ctx, log)

	if err := h.authUseCase.Register(requestCtx, req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			log.Info(requestCtx, LogRegisterRejected)
		} else {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		}
		return handleError(ctx, err)
	}

	return sendMessage(ctx, http.StatusOK, MsgUserRegistered)
}

// Login обрабатывает запрос на вход пользователя. Токены не выдаются.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	req := h.bindCredentials(ctx, log)

	if err := h.authUseCase.Login(requestCtx, req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Info(requestCtx, LogLoginRejected)
		} else {
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		}
		return handleError(ctx, err)
	}

	return sendMessage(ctx, http.StatusOK, MsgLoginSuccessful)
}

// bindCredentials разбирает тело. Ошибка разбора не прерывает запрос:
// уже разобранные поля сохраняются, остальные остаются пустыми.
func (h *Handler) bindCredentials(ctx fiber.Ctx, log *logger.Logger) dto.CredentialsRequest {
	var req dto.CredentialsRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(middleware.RequestContext(ctx), ErrorInvalidRequest, zap.Error(err))
	}
	return req
}

func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserAlreadyExists):
		return sendMessage(ctx, http.StatusBadRequest, MsgUserAlreadyExists)
	case errors.Is(err, services.ErrInvalidCredentials):
		return sendMessage(ctx, http.StatusBadRequest, MsgInvalidCredentials)
	default:
		return sendMessage(ctx, http.StatusInternalServerError, middleware.MsgInternalServerError)
	}
}

func sendMessage(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(dto.MessageResponse{Message: message}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
