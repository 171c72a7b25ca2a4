package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/tokens"
	"github.com/pulsewear/storefront/internal/transport"
)

func newTestAuthService(t *testing.T) *AuthService {
	return &AuthService{
		Repo:      newTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.RegisterRequest
	}{
		{name: "empty name", req: transport.RegisterRequest{Email: "a@b.com", Password: "secret"}},
		{name: "empty email", req: transport.RegisterRequest{Name: "a", Password: "secret"}},
		{name: "empty password", req: transport.RegisterRequest{Name: "a", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{
		Name: "Cliente Demo", Email: "Cliente@Loja.com", Password: "cliente123",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente@loja.com", user.Email, "email is lower-cased")
	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotEqual(t, "cliente123", user.PasswordHash)

	_, err = svc.Register(ctx, transport.RegisterRequest{
		Name: "Outro", Email: "cliente@loja.com", Password: "x",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	token, logged, err := svc.Login(ctx, transport.LoginRequest{Email: "cliente@loja.com", Password: "cliente123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := tokens.AccessClaimsFromToken(token, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleClient, claims.Role)

	_, _, err = svc.Login(ctx, transport.LoginRequest{Email: "cliente@loja.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, transport.LoginRequest{Email: "nobody@loja.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{
		Name: "Bloqueado", Email: "blocked@loja.com", Password: "x",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Repo.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("status", models.UserStatusBlocked).Error)

	_, _, err = svc.Login(ctx, transport.LoginRequest{Email: "blocked@loja.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthService_AddAddress(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, transport.RegisterRequest{
		Name: "Cliente", Email: "addr@loja.com", Password: "x",
	})
	require.NoError(t, err)

	_, err = svc.AddAddress(ctx, user.ID, transport.AddressRequest{Label: "Casa"})
	assert.ErrorIs(t, err, ErrValidation)

	addr, err := svc.AddAddress(ctx, user.ID, transport.AddressRequest{
		Label: "Casa", Street: "Rua A, 1", City: "Sao Paulo",
	})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, addr.ID, profile.Addresses[0].ID)
}
