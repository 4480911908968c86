package postgres

import (
	"bookstore/internal/bookstore/ports/repositories"
)

// RepositoryFactory создает все репозитории поверх одного пула.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	bookRepo repositories.BookRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
		bookRepo: NewBookRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// BookRepository возвращает репозиторий каталога.
func (f *RepositoryFactory) BookRepository() repositories.BookRepository {
	return f.bookRepo
}
