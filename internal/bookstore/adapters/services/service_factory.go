// Package services содержит адаптеры внешних примитивов: хэширование паролей.
package services

import (
	"bookstore/internal/bookstore/ports/services"
)

// ServiceFactory создает сервисы, необходимые use case-ам.
type ServiceFactory struct {
	passwordService services.PasswordService
}

// NewServiceFactory создает фабрику с заданной стоимостью bcrypt.
func NewServiceFactory(bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}
