// Package app содержит use case-ы bookstore.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookstore/internal/bookstore/domain/entities"
	"bookstore/internal/bookstore/domain/services"
	"bookstore/internal/bookstore/ports/api"
	"bookstore/internal/bookstore/ports/repositories"
	svc "bookstore/internal/bookstore/ports/services"
	"bookstore/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodLogin        = "Login"
	methodAuthenticate = "Authenticate"

	msgStartRegistration  = "starting user registration"
	msgUsernameTaken      = "username already registered"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginUnknownUser   = "login attempt with unknown username"
	msgLoginWrongPassword = "login attempt with wrong password"
	msgUserLoggedIn       = "user logged in successfully"
	msgMissingCredentials = "request without credentials"
	msgGateUnknownUser    = "gate rejected unknown username"
	msgGateWrongPassword  = "gate rejected wrong password"
	msgGatePassed         = "request credentials verified"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"

	errCtxCheckingUser       = "checking existing user"
	errCtxUsernameTaken      = "username already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxUnauthenticated    = "authenticating request"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает пользователя, если имя свободно. Входные данные не валидируются.
// Проверка и вставка не атомарны; гонку закрывает уникальный индекс хранилища,
// проигравшая вставка тоже возвращает ErrUserAlreadyExists.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	existing, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existing != nil {
		log.Debug(ctx, msgUsernameTaken)
		return fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUserAlreadyExists)
	}

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	created, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			log.Debug(ctx, msgUsernameTaken)
			return fmt.Errorf("%s: %w", errCtxUsernameTaken, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return nil
}

// Login проверяет пару имя/пароль. Неизвестное имя и неверный пароль
// дают одну и ту же ошибку ErrInvalidCredentials.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.verify(ctx, log, username, password, msgLoginUnknownUser, msgLoginWrongPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fmt.Errorf("%s: %w", errCtxInvalidCredentials, err)
		}
		return err
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))
	return nil
}

// Authenticate - проверка учетных данных запроса. Без кэширования:
// каждый вызов делает запрос к хранилищу и полное сравнение bcrypt.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, username, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("username", username))

	if username == "" || password == "" {
		log.Debug(ctx, msgMissingCredentials)
		return fmt.Errorf("%s: %w", errCtxUnauthenticated, services.ErrCredentialsRequired)
	}

	user, err := a.verify(ctx, log, username, password, msgGateUnknownUser, msgGateWrongPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fmt.Errorf("%s: %w", errCtxUnauthenticated, services.ErrUnauthenticated)
		}
		return err
	}

	log.Debug(ctx, msgGatePassed, zap.String("userID", user.ID))
	return nil
}

// verify - общий для Login и Authenticate шаг: поиск пользователя, затем сравнение хэша.
func (a *AuthUseCaseImpl) verify(
	ctx context.Context,
	log *logger.Logger,
	username, password string,
	msgUnknownUser, msgWrongPassword string,
) (*entities.User, error) {
	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownUser)
			return nil, services.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgWrongPassword, zap.String("userID", user.ID))
		return nil, services.ErrInvalidCredentials
	}

	return user, nil
}
