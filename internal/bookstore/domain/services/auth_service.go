// Package services содержит доменные ошибки аутентификации и хэширования.
package services

import "errors"

// Ошибки домена аутентификации.
var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsRequired = errors.New("username and password required")
	ErrUnauthenticated     = errors.New("unauthenticated")
)
