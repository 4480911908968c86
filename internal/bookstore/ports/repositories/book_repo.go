package repositories

import (
	"context"

	"bookstore/internal/bookstore/domain/entities"
)

// BookRepository определяет операции хранилища каталога.
type BookRepository interface {
	List(ctx context.Context) ([]*entities.Book, error)

	Create(ctx context.Context, book *entities.Book) (*entities.Book, error)

	// Delete идемпотентен: отсутствие записи не является ошибкой.
	Delete(ctx context.Context, id string) error
}
