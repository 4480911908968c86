// Package books содержит HTTP-обработчики каталога книг.
package books

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/adapters/http/middleware"
	"bookstore/internal/bookstore/app/dto"
	"bookstore/internal/bookstore/ports/api"
	"bookstore/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListBooks  = "handling list books request"
	LogHandlerCreateBook = "handling create book request"
	LogHandlerDeleteBook = "handling delete book request"

	ErrMsgInvalidRequestBody = "request body not fully decoded, missing fields use defaults"
)

// Handler обработчик HTTP-запросов каталога.
type Handler struct {
	catalogUseCase api.CatalogUseCase
}

// NewHandler создает новый экземпляр обработчика книг.
func NewHandler(catalogUseCase api.CatalogUseCase) *Handler {
	return &Handler{
		catalogUseCase: catalogUseCase,
	}
}

// ListBooks возвращает все книги массивом JSON.
func (h *Handler) ListBooks(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListBooks"))
	log.Debug(requestCtx, LogHandlerListBooks)

	books, err := h.catalogUseCase.ListBooks(requestCtx)
	if err != nil {
		log.Error(requestCtx, "failed to list books", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(books); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateBook сохраняет книгу и возвращает ее вместе с _id.
func (h *Handler) CreateBook(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateBook"))
	log.Debug(requestCtx, LogHandlerCreateBook)

	var req dto.BookRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
	}

	book, err := h.catalogUseCase.AddBook(requestCtx, req.ToEntity())
	if err != nil {
		log.Error(requestCtx, "failed to create book", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(book); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteBook удаляет книгу и отвечает 204 независимо от того, была ли она.
func (h *Handler) DeleteBook(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	bookID := ctx.Params("id")
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteBook"), zap.String("bookID", bookID))
	log.Debug(requestCtx, LogHandlerDeleteBook)

	if err := h.catalogUseCase.DeleteBook(requestCtx, bookID); err != nil {
		log.Error(requestCtx, "failed to delete book", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError - у каталога нет доменных ошибок для клиента, любой сбой хранилища это 500.
func handleError(ctx fiber.Ctx, _ error) error {
	if err := ctx.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{
		Message: middleware.MsgInternalServerError,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
