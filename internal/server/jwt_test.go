package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefanya/apptrack/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-at-least-32-chars!!",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestGenerateTokenUniquePerSession(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	// Back-to-back sessions for the same user share the same iat second;
	// the jti claim still makes the tokens distinct.
	first, _, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-key!!!",
		ExpirationHours: 1,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := testJWTService()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestValidatorAdapter(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, _, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}
