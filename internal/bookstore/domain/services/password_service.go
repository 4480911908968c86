package services

import "errors"

// Ошибки хэширования паролей.
var (
	ErrHashingFailed = errors.New("failed to hash password")
	ErrMalformedHash = errors.New("stored password hash is malformed")
)

// DefaultBcryptCost - фактор сложности bcrypt по умолчанию.
const DefaultBcryptCost = 10
