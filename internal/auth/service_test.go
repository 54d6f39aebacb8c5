package auth_test

import (
	"fmt"
	"testing"

	"github.com/pagepulse/pagepulse/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialTokens() auth.TokenGenerator {
	n := 0

	return func() string {
		n++

		return fmt.Sprintf("token-%d", n)
	}
}

func newService() *auth.Service {
	return auth.NewService("admin@example.com", "s3cret", sequentialTokens())
}

func TestService_Login(t *testing.T) {
	t.Run("mints a token for the configured credentials", func(t *testing.T) {
		s := newService()

		token, err := s.Login("admin@example.com", "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, s.Authenticate(token))
	})

	t.Run("rejects a wrong password without touching the active set", func(t *testing.T) {
		s := newService()

		token, err := s.Login("admin@example.com", "wrong")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Zero(t, s.ActiveSessions())
	})

	t.Run("rejects a wrong email with the same error", func(t *testing.T) {
		s := newService()

		_, err := s.Login("intruder@example.com", "s3cret")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("issues a distinct token per login", func(t *testing.T) {
		s := newService()

		first, err := s.Login("admin@example.com", "s3cret")
		require.NoError(t, err)

		second, err := s.Login("admin@example.com", "s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Equal(t, 2, s.ActiveSessions())
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Run("rejects the empty token", func(t *testing.T) {
		s := newService()

		assert.False(t, s.Authenticate(""))
	})

	t.Run("rejects tokens it never issued", func(t *testing.T) {
		s := newService()

		assert.False(t, s.Authenticate("forged"))
	})
}

func TestService_Logout(t *testing.T) {
	t.Run("invalidates the token", func(t *testing.T) {
		s := newService()

		token, err := s.Login("admin@example.com", "s3cret")
		require.NoError(t, err)

		s.Logout(token)

		assert.False(t, s.Authenticate(token))
	})

	t.Run("is idempotent for unknown tokens", func(t *testing.T) {
		s := newService()

		s.Logout("never-issued")
		s.Logout("never-issued")

		assert.Zero(t, s.ActiveSessions())
	})

	t.Run("leaves other sessions alive", func(t *testing.T) {
		s := newService()

		first, _ := s.Login("admin@example.com", "s3cret")
		second, _ := s.Login("admin@example.com", "s3cret")

		s.Logout(first)

		assert.False(t, s.Authenticate(first))
		assert.True(t, s.Authenticate(second))
	})
}
