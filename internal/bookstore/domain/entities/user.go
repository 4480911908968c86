// Package entities содержит доменные сущности bookstore.
package entities

import (
	"errors"
	"time"
)

// ErrUserNotFound возвращается хранилищем, если пользователя с таким именем нет.
var ErrUserNotFound = errors.New("user not found")

// User - учетная запись. PasswordHash всегда результат bcrypt, не открытый пароль.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
