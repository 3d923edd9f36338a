package service

import (
	"context"
	"testing"

	"fieldwork-backend/internal/domain"
	"fieldwork-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-key-at-least-32-chars!!", 60)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, testTokenManager())

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID: 7, OrgID: 1, Name: "Ada", Email: "ada@example.com",
		Role: domain.RoleEmployee, PasswordHash: string(hash), Active: true,
	}, nil)

	token, user, err := svc.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int32(7), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, testTokenManager())

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID: 7, Email: "ada@example.com", PasswordHash: string(hash), Active: true,
	}, nil)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, testTokenManager())

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := new(MockUserRepo)
	svc := NewAuthService(userRepo, testTokenManager())

	userRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID: 7, Email: "ada@example.com", PasswordHash: string(hash), Active: false,
	}, nil)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
