// Package services определяет порты внешних примитивов.
package services

import "context"

// PasswordService хэширует и проверяет пароли.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false, nil при несовпадении пароля.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
