package api

import (
	"context"

	"bookstore/internal/bookstore/domain/entities"
)

// CatalogUseCase - операции над каталогом книг.
type CatalogUseCase interface {
	ListBooks(ctx context.Context) ([]*entities.Book, error)

	AddBook(ctx context.Context, book *entities.Book) (*entities.Book, error)

	DeleteBook(ctx context.Context, id string) error
}
