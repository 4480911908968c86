// Package repositories определяет порты хранилища.
package repositories

import (
	"context"

	"bookstore/internal/bookstore/domain/entities"
)

// UserRepository определяет операции хранилища пользователей.
type UserRepository interface {
	// FindByUsername возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// Create возвращает services.ErrUserAlreadyExists при нарушении уникальности имени.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
}
