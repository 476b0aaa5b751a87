package authservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliphub/cliphub/pkg/auth"
)

func TestService_Login(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	jwt := auth.NewJWT("test-secret", time.Hour)
	svc := New(jwt, "admin", hash)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "hunter2")
		require.NoError(t, err)

		claims, err := jwt.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "hunter3")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(ctx, "root", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
