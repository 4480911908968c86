package app

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"bookstore/internal/bookstore/domain/entities"
	"bookstore/internal/bookstore/ports/api"
	"bookstore/internal/bookstore/ports/cache"
	"bookstore/internal/bookstore/ports/repositories"
	"bookstore/pkg/logger"
)

// Ключи кэша списка книг. Снимок хранится под ключом с текущей версией,
// каждая запись в каталог увеличивает версию, и старые снимки больше не читаются.
const (
	BooksListVersionKey     = "books:version"
	BooksListCachePrefix    = "books:all:"
	initialBooksListVersion = "0"
)

const (
	methodListBooks  = "ListBooks"
	methodAddBook    = "AddBook"
	methodDeleteBook = "DeleteBook"

	msgBooksFromCache  = "books served from cache"
	msgBooksListed     = "books listed"
	msgBookAdded       = "book added"
	msgBookDeleted     = "book delete processed"
	msgErrCacheRead    = "failed to read books from cache"
	msgErrCacheDecode  = "cached books are corrupted, ignoring"
	msgErrCacheWrite   = "failed to write books to cache"
	msgErrCacheInvalid = "failed to bump books cache version"
	msgErrListBooks    = "failed to list books"
	msgErrAddBook      = "failed to add book"
	msgErrDeleteBook   = "failed to delete book"
	errCtxListingBooks = "listing books"
	errCtxAddingBook   = "adding book"
	errCtxDeletingBook = "deleting book"
)

// CatalogUseCaseImpl реализует api.CatalogUseCase.
type CatalogUseCaseImpl struct {
	bookRepo repositories.BookRepository
	cache    cache.Cache
}

// NewCatalogUseCase создает use case каталога. booksCache может быть nil:
// тогда каждый запрос идет в хранилище.
func NewCatalogUseCase(bookRepo repositories.BookRepository, booksCache cache.Cache) api.CatalogUseCase {
	return &CatalogUseCaseImpl{
		bookRepo: bookRepo,
		cache:    booksCache,
	}
}

// ListBooks возвращает все книги без фильтрации и пагинации.
func (c *CatalogUseCaseImpl) ListBooks(ctx context.Context) ([]*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListBooks))

	cacheKey := c.listCacheKey(ctx, log)
	if books, ok := c.cachedBooks(ctx, log, cacheKey); ok {
		log.Debug(ctx, msgBooksFromCache, zap.Int("count", len(books)))
		return books, nil
	}

	books, err := c.bookRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListBooks, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingBooks, err)
	}
	if books == nil {
		books = []*entities.Book{}
	}

	c.storeBooks(ctx, log, cacheKey, books)

	log.Debug(ctx, msgBooksListed, zap.Int("count", len(books)))
	return books, nil
}

// AddBook сохраняет книгу как есть и возвращает запись с назначенным ID.
func (c *CatalogUseCaseImpl) AddBook(ctx context.Context, book *entities.Book) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddBook))

	if book == nil {
		book = &entities.Book{}
	}

	created, err := c.bookRepo.Create(ctx, book)
	if err != nil {
		log.Error(ctx, msgErrAddBook, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingBook, err)
	}

	c.invalidate(ctx, log)

	log.Info(ctx, msgBookAdded, zap.String("bookID", created.ID))
	return created, nil
}

// DeleteBook удаляет книгу. Отсутствие книги успехом не отличается.
func (c *CatalogUseCaseImpl) DeleteBook(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteBook), zap.String("bookID", id))

	if err := c.bookRepo.Delete(ctx, id); err != nil {
		log.Error(ctx, msgErrDeleteBook, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingBook, err)
	}

	c.invalidate(ctx, log)

	log.Info(ctx, msgBookDeleted)
	return nil
}

// listCacheKey читает версию до похода в хранилище: снимок, собранный
// до конкурентной записи, попадет под уже устаревшую версию.
// Пустой результат означает, что кэш не используется.
func (c *CatalogUseCaseImpl) listCacheKey(ctx context.Context, log *logger.Logger) string {
	if c.cache == nil {
		return ""
	}

	version, err := c.cache.Get(ctx, BooksListVersionKey)
	if err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		return ""
	}
	if version == "" {
		version = initialBooksListVersion
	}
	return BooksListCachePrefix + version
}

func (c *CatalogUseCaseImpl) cachedBooks(ctx context.Context, log *logger.Logger, key string) ([]*entities.Book, bool) {
	if key == "" {
		return nil, false
	}

	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var books []*entities.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		log.Warn(ctx, msgErrCacheDecode, zap.Error(err))
		return nil, false
	}
	if books == nil {
		books = []*entities.Book{}
	}
	return books, true
}

func (c *CatalogUseCaseImpl) storeBooks(ctx context.Context, log *logger.Logger, key string, books []*entities.Book) {
	if key == "" {
		return
	}

	raw, err := json.Marshal(books)
	if err != nil {
		log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, string(raw), 0); err != nil {
		log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
	}
}

func (c *CatalogUseCaseImpl) invalidate(ctx context.Context, log *logger.Logger) {
	if c.cache == nil {
		return
	}
	if _, err := c.cache.Incr(ctx, BooksListVersionKey); err != nil {
		log.Warn(ctx, msgErrCacheInvalid, zap.Error(err))
	}
}
