package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidbridge/internal/config"
	"aidbridge/internal/domain"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
	return NewAuthService(newTestStore(t), nil, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	user, tokens, err := svc.Register(ctx, domain.CreateUserInput{
		Name:     "Jane Donor",
		Email:    "jane@aid.com",
		Password: "password123",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDonor, user.Role)
	assert.NotEmpty(t, tokens.AccessToken)
	// Refresh tokens need a session backend.
	assert.Empty(t, tokens.RefreshToken)

	t.Run("login succeeds with the full credential triple", func(t *testing.T) {
		got, tokens, err := svc.Login(ctx, domain.LoginInput{
			Email:    "jane@aid.com",
			Password: "password123",
			Role:     domain.RoleDonor,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("role mismatch reads as invalid credentials", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "jane@aid.com",
			Password: "password123",
			Role:     domain.RoleAdmin,
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "jane@aid.com",
			Password: "nope",
			Role:     domain.RoleDonor,
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "ghost@aid.com",
			Password: "password123",
			Role:     domain.RoleDonor,
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	input := domain.CreateUserInput{Name: "Jane", Email: "jane@aid.com", Password: "password123", Role: domain.RoleDonor}
	_, _, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	_, _, err := newAuthService(t).Register(context.Background(), domain.CreateUserInput{
		Name:     "Jane",
		Email:    "jane@aid.com",
		Password: "password123",
		Role:     "Superuser",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	user, tokens, err := svc.Register(ctx, domain.CreateUserInput{
		Name:     "Jane",
		Email:    "jane@aid.com",
		Password: "password123",
		Role:     domain.RoleDonor,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshWithoutSessionBackend(t *testing.T) {
	_, err := newAuthService(t).RefreshToken(context.Background(), "some-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
