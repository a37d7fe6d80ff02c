package jwtmanager

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(secret string) *JWTManager {
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: secret, ExpTimeInHour: 24}}
	return NewJWTManager(cfg, zap.NewNop()).(*JWTManager)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestJWTManager(t *testing.T) {
	t.Run("Sign Then Verify Returns Email", func(t *testing.T) {
		manager := newTestManager("secret")

		token, err := manager.Sign("a@x.com")
		require.NoError(t, err)

		email, err := manager.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", email)
	})

	t.Run("Expired Token Is Forbidden", func(t *testing.T) {
		manager := newTestManager("secret")
		manager.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

		token, err := manager.Sign("a@x.com")
		require.NoError(t, err)

		_, err = newTestManager("secret").Verify(token)
		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Other Secret Is Forbidden", func(t *testing.T) {
		token, err := newTestManager("one").Sign("a@x.com")
		require.NoError(t, err)

		_, err = newTestManager("two").Verify(token)
		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Garbage Is Malformed", func(t *testing.T) {
		_, err := newTestManager("secret").Verify("not-a-jwt")
		assertStatus(t, err, constvars.StatusForbidden)
		assert.Contains(t, err.Error(), constvars.ErrDevAuthTokenMalformed)
	})

	t.Run("Token Without Email Claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = newTestManager("secret").Verify(signed)
		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Empty Email Cannot Be Signed", func(t *testing.T) {
		_, err := newTestManager("secret").Sign(" ")
		assertStatus(t, err, constvars.StatusInternalServerError)
	})
}
