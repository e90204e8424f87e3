package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtService(t *testing.T) {
	secretKey := newSecret(t)
	svc, err := NewJwtService(secretKey, "maze-admin")
	require.NoError(t, err)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"sub": "operator"}, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "operator", claims["sub"])
		assert.Equal(t, "maze-admin", claims["iss"])
	})

	t.Run("Claims cannot override issuer", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"iss": "someone-else"}, 5*time.Minute)
		require.NoError(t, err)

		claims, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "maze-admin", claims["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]any{"sub": "operator"}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other, err := NewJwtService(secretKey, "other-service")
		require.NoError(t, err)
		token, err := other.Generate(nil, 5*time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrInvalidIssuer)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other, err := NewJwtService(newSecret(t), "maze-admin")
		require.NoError(t, err)
		token, err := other.Generate(nil, 5*time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}

func TestNewJwtService(t *testing.T) {
	_, err := NewJwtService("", "maze-admin")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
