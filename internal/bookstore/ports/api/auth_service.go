// Package api определяет входящие порты сервиса.
package api

import "context"

// AuthUseCase - регистрация, вход и проверка учетных данных запроса.
type AuthUseCase interface {
	Register(ctx context.Context, username, password string) error

	Login(ctx context.Context, username, password string) error

	// Authenticate выполняет поиск пользователя и сравнение bcrypt при каждом вызове.
	Authenticate(ctx context.Context, username, password string) error
}
