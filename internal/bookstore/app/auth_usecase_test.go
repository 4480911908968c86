package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore/internal/bookstore/app"
	"bookstore/internal/bookstore/domain/entities"
	"bookstore/internal/bookstore/domain/services"
)

var (
	ErrDatabaseConnection = errors.New("database connection error")
	ErrBrokenHash         = errors.New("broken hash")
)

const (
	testUsername = "alice"
	testPassword = "pw1"
	testHash     = "$2a$10$hashed"
)

func storedUser() *entities.User {
	return &entities.User{ID: "user-1", Username: testUsername, PasswordHash: testHash}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mockUserRepository, *mockPasswordService)
		wantErr    error
	}{
		{
			name: "new username",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, entities.ErrUserNotFound)
				pw.On("Hash", mock.Anything, testPassword).Return(testHash, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
					return u.Username == testUsername && u.PasswordHash == testHash
				})).Return(storedUser(), nil)
			},
		},
		{
			name: "duplicate username",
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "concurrent registration wins the insert",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, entities.ErrUserNotFound)
				pw.On("Hash", mock.Anything, testPassword).Return(testHash, nil)
				repo.On("Create", mock.Anything, mock.Anything).
					Return(nil, services.ErrUserAlreadyExists)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "lookup failure",
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, ErrDatabaseConnection)
			},
			wantErr: ErrDatabaseConnection,
		},
		{
			name: "hash failure writes nothing",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, entities.ErrUserNotFound)
				pw.On("Hash", mock.Anything, testPassword).Return("", services.ErrHashingFailed)
			},
			wantErr: services.ErrHashingFailed,
		},
		{
			name: "insert failure",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, entities.ErrUserNotFound)
				pw.On("Hash", mock.Anything, testPassword).Return(testHash, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrDatabaseConnection)
			},
			wantErr: ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			pw := new(mockPasswordService)
			tt.setupMocks(repo, pw)

			uc := app.NewAuthUseCase(repo, pw)
			err := uc.Register(context.Background(), testUsername, testPassword)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			repo.AssertExpectations(t)
			pw.AssertExpectations(t)
			if tt.wantErr == services.ErrHashingFailed {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRegisterStoresEmptyFieldsAsIs(t *testing.T) {
	repo := new(mockUserRepository)
	pw := new(mockPasswordService)

	repo.On("FindByUsername", mock.Anything, "").Return(nil, entities.ErrUserNotFound)
	pw.On("Hash", mock.Anything, "").Return(testHash, nil)
	repo.On("Create", mock.Anything, &entities.User{Username: "", PasswordHash: testHash}).
		Return(&entities.User{ID: "user-2", PasswordHash: testHash}, nil)

	require.NoError(t, app.NewAuthUseCase(repo, pw).Register(context.Background(), "", ""))
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		setupMocks func(*mockUserRepository, *mockPasswordService)
		wantErr    error
	}{
		{
			name:     "correct password",
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
				pw.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil)
			},
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
				pw.On("Verify", mock.Anything, "wrong", testHash).Return(false, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, entities.ErrUserNotFound)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "store failure",
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, ErrDatabaseConnection)
			},
			wantErr: ErrDatabaseConnection,
		},
		{
			name:     "verify failure",
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
				pw.On("Verify", mock.Anything, testPassword, testHash).Return(false, ErrBrokenHash)
			},
			wantErr: ErrBrokenHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			pw := new(mockPasswordService)
			tt.setupMocks(repo, pw)

			err := app.NewAuthUseCase(repo, pw).Login(context.Background(), testUsername, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			repo.AssertExpectations(t)
			pw.AssertExpectations(t)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := new(mockUserRepository)
	pw := new(mockPasswordService)
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)
	repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
	pw.On("Verify", mock.Anything, "wrong", testHash).Return(false, nil)

	uc := app.NewAuthUseCase(repo, pw)
	unknownErr := uc.Login(context.Background(), "ghost", "whatever")
	wrongErr := uc.Login(context.Background(), testUsername, "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(*mockUserRepository, *mockPasswordService)
		wantErr    error
	}{
		{
			name:     "valid credentials",
			username: testUsername,
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
				pw.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil)
			},
		},
		{
			name:       "missing username",
			password:   testPassword,
			setupMocks: func(*mockUserRepository, *mockPasswordService) {},
			wantErr:    services.ErrCredentialsRequired,
		},
		{
			name:       "missing password",
			username:   testUsername,
			setupMocks: func(*mockUserRepository, *mockPasswordService) {},
			wantErr:    services.ErrCredentialsRequired,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)
			},
			wantErr: services.ErrUnauthenticated,
		},
		{
			name:     "wrong password",
			username: testUsername,
			password: "wrong",
			setupMocks: func(repo *mockUserRepository, pw *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
				pw.On("Verify", mock.Anything, "wrong", testHash).Return(false, nil)
			},
			wantErr: services.ErrUnauthenticated,
		},
		{
			name:     "store failure",
			username: testUsername,
			password: testPassword,
			setupMocks: func(repo *mockUserRepository, _ *mockPasswordService) {
				repo.On("FindByUsername", mock.Anything, testUsername).Return(nil, ErrDatabaseConnection)
			},
			wantErr: ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepository)
			pw := new(mockPasswordService)
			tt.setupMocks(repo, pw)

			err := app.NewAuthUseCase(repo, pw).Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
			} else {
				require.NoError(t, err)
			}

			repo.AssertExpectations(t)
			pw.AssertExpectations(t)
			if errors.Is(tt.wantErr, services.ErrCredentialsRequired) {
				repo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAuthenticateVerifiesOnEveryCall(t *testing.T) {
	repo := new(mockUserRepository)
	pw := new(mockPasswordService)
	repo.On("FindByUsername", mock.Anything, testUsername).Return(storedUser(), nil)
	pw.On("Verify", mock.Anything, testPassword, testHash).Return(true, nil)

	uc := app.NewAuthUseCase(repo, pw)
	for range 3 {
		require.NoError(t, uc.Authenticate(context.Background(), testUsername, testPassword))
	}

	repo.AssertNumberOfCalls(t, "FindByUsername", 3)
	pw.AssertNumberOfCalls(t, "Verify", 3)
}
