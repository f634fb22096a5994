package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rohitguptaaa/AmazeMart/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) *auth.Service {
	t.Setenv("JWT_SECRET", "test-secret")
	return auth.NewService(auth.NewMemoryRepository(), 0)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.User.ID)
		assert.Equal(t, "jane@example.com", res.User.Email)
		assert.Equal(t, "Jane Smith", res.User.Name)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc := newTestService(t)

		req := auth.RegisterRequest{Name: "Jane Smith", Email: "jane@example.com", Password: "secret123"}
		_, err := svc.Register(ctx, req)
		assert.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.Equal(t, auth.ErrEmailTaken, err)
	})

	t.Run("access_token_carries_user_id", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)

		token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		assert.True(t, ok)
		assert.Equal(t, res.User.ID, claims["user_id"])
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("registered_user_roundtrip", func(t *testing.T) {
		svc := newTestService(t)

		reg, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)

		res, err := svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, reg.User.ID, res.User.ID)
		assert.Equal(t, "Jane Smith", res.User.Name)
	})

	t.Run("wrong_password_for_known_email", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)

		_, err = svc.Login(ctx, auth.LoginRequest{Email: "jane@example.com", Password: "wrong"})
		assert.Equal(t, auth.ErrInvalidCredentials, err)
	})

	t.Run("unknown_email_fabricates_a_profile", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Login(ctx, auth.LoginRequest{Email: "stranger@example.com", Password: "whatever"})
		assert.NoError(t, err)
		assert.Equal(t, "John Doe", res.User.Name)
		assert.Equal(t, "stranger@example.com", res.User.Email)
		assert.NotEmpty(t, res.AccessToken)

		// the fabricated account persists: the same credentials keep working
		again, err := svc.Login(ctx, auth.LoginRequest{Email: "stranger@example.com", Password: "whatever"})
		assert.NoError(t, err)
		assert.Equal(t, res.User.ID, again.User.ID)

		// and a wrong password is now rejected like any other account
		_, err = svc.Login(ctx, auth.LoginRequest{Email: "stranger@example.com", Password: "different"})
		assert.Equal(t, auth.ErrInvalidCredentials, err)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	reg, err := svc.Register(ctx, auth.RegisterRequest{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		me, err := svc.Me(ctx, reg.User.ID)
		assert.NoError(t, err)
		assert.Equal(t, reg.User, me)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := svc.Me(ctx, "no-such-id")
		assert.Equal(t, auth.ErrUserNotFound, err)
	})
}

func TestAuthService_SimulatedDelay(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(auth.NewMemoryRepository(), 50*time.Millisecond)

	start := time.Now()
	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "a@b.com", Password: "pw"})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
