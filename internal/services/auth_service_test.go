package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

func TestRegisterUser(t *testing.T) {
	t.Run("defaults role and status", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		user, err := svc.RegisterUser(RegisterUserRequest{
			FullName: "Nakato Sarah",
			Email:    "sarah@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		assert.Equal(t, models.RoleViewer, user.Role)
		assert.Equal(t, models.UserStatusActive, user.Status)
	})

	t.Run("normalizes the email to lower case", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		user, err := svc.RegisterUser(RegisterUserRequest{
			FullName: "Nakato Sarah",
			Email:    "  Sarah@Example.COM ",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "sarah@example.com", user.Email)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		req := RegisterUserRequest{FullName: "Nakato Sarah", Email: "sarah@example.com", Password: "correct-horse"}
		_, err := svc.RegisterUser(req)
		require.NoError(t, err)

		_, err = svc.RegisterUser(req)
		assert.True(t, errors.Is(err, ErrEmailExists))
	})

	t.Run("rejects a short password", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		_, err := svc.RegisterUser(RegisterUserRequest{FullName: "Nakato Sarah", Email: "sarah@example.com", Password: "short"})
		assert.True(t, errors.Is(err, ErrUserValidation))
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())

		_, err := svc.RegisterUser(RegisterUserRequest{
			FullName: "Nakato Sarah",
			Email:    "sarah@example.com",
			Password: "correct-horse",
			Role:     "superuser",
		})
		assert.True(t, errors.Is(err, ErrUserValidation))
	})
}

func TestLoginUser(t *testing.T) {
	setup := func(t *testing.T, status string) AuthService {
		t.Helper()
		repo := newFakeUserRepo()
		svc := NewAuthService(repo)
		_, err := svc.RegisterUser(RegisterUserRequest{
			FullName: "Nakato Sarah",
			Email:    "sarah@example.com",
			Password: "correct-horse",
			Role:     models.RoleTreasurer,
			Status:   status,
		})
		require.NoError(t, err)
		return svc
	}

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		svc := setup(t, models.UserStatusActive)

		resp, err := svc.LoginUser(LoginRequest{Email: "sarah@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		require.NotNil(t, resp.User)
		assert.Equal(t, models.RoleTreasurer, resp.User.Role)
		require.NotEmpty(t, resp.Token)

		claims, err := utils.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, "sarah@example.com", claims.Email)
		assert.Equal(t, models.RoleTreasurer, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setup(t, models.UserStatusActive)

		_, err := svc.LoginUser(LoginRequest{Email: "sarah@example.com", Password: "wrong"})
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		svc := setup(t, models.UserStatusActive)

		_, err := svc.LoginUser(LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("inactive account is refused even with valid credentials", func(t *testing.T) {
		svc := setup(t, models.UserStatusInactive)

		_, err := svc.LoginUser(LoginRequest{Email: "sarah@example.com", Password: "correct-horse"})
		assert.True(t, errors.Is(err, ErrAccountNotActive))
	})
}

func TestUserServiceUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(repo)
	userSvc := NewUserService(repo)

	created, err := authSvc.RegisterUser(RegisterUserRequest{
		FullName: "Nakato Sarah",
		Email:    "sarah@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		role := models.RoleManager
		updated, err := userSvc.UpdateUser(created.ID, UpdateUserRequest{Role: &role})
		require.NoError(t, err)

		assert.Equal(t, models.RoleManager, updated.Role)
		assert.Equal(t, "Nakato Sarah", updated.FullName)
		assert.Equal(t, "sarah@example.com", updated.Email)
	})

	t.Run("unknown user maps to not found", func(t *testing.T) {
		name := "Ghost"
		_, err := userSvc.UpdateUser(404, UpdateUserRequest{FullName: &name})
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})
}
