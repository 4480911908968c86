package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bookstore/internal/bookstore/domain/entities"
	"bookstore/internal/bookstore/ports/repositories"
	"bookstore/pkg/logger"
)

const (
	queryListBooks = `
        SELECT id, title, author, price, image_url
        FROM books
        ORDER BY created_at, id
    `
	queryCreateBook = `
        INSERT INTO books (title, author, price, image_url)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, author, price, image_url
    `
	queryDeleteBook = `
        DELETE FROM books
        WHERE id = $1
    `
)

// BookRepository реализует repositories.BookRepository для Postgres.
type BookRepository struct {
	pool PgxPoolInterface
}

// NewBookRepository создает репозиторий каталога.
func NewBookRepository(pool PgxPoolInterface) repositories.BookRepository {
	return &BookRepository{pool: pool}
}

// List возвращает все книги в порядке добавления.
func (r *BookRepository) List(ctx context.Context) ([]*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "List"))

	rows, err := r.pool.Query(ctx, queryListBooks)
	if err != nil {
		log.Error(ctx, "error listing books", zap.Error(err))
		return nil, fmt.Errorf("error listing books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		log.Error(ctx, "error scanning books", zap.Error(err))
		return nil, fmt.Errorf("error scanning books: %w", err)
	}

	log.Debug(ctx, "books listed", zap.Int("count", len(books)))
	return books, nil
}

// Create сохраняет книгу. ID из входной книги игнорируется.
func (r *BookRepository) Create(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Create"))

	row := r.pool.QueryRow(ctx, queryCreateBook, book.Title, book.Author, book.Price, book.ImageURL)
	created, err := scanBook(row)
	if err != nil {
		log.Error(ctx, "error creating book", zap.Error(err))
		return nil, fmt.Errorf("error creating book: %w", err)
	}

	log.Debug(ctx, "book created", zap.String("id", created.ID))
	return created, nil
}

// Delete удаляет книгу по ID. Несуществующий или некорректный ID - не ошибка.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Delete"), zap.String("id", id))

	bookID, err := uuid.Parse(id)
	if err != nil {
		log.Debug(ctx, "book id is not a uuid, nothing to delete")
		return nil
	}

	result, err := r.pool.Exec(ctx, queryDeleteBook, bookID.String())
	if err != nil {
		log.Error(ctx, "error deleting book", zap.Error(err))
		return fmt.Errorf("error deleting book: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "book not found for deletion")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*entities.Book, error) {
	var b entities.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.ImageURL); err != nil {
		return nil, err
	}
	return &b, nil
}
