package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseSessionToken(t *testing.T) {
	userID := uuid.NewString()
	secret := "test-secret-key"

	token, err := GenerateSessionToken(userID, "jane@example.com", secret, time.Hour, "test-issuer")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(uuid.NewString(), "jane@example.com", "secret-a", time.Hour, "test-issuer")
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret-b")
	assert.Error(t, err)
}

func TestParseSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken(uuid.NewString(), "jane@example.com", "test-secret-key", -time.Minute, "test-issuer")
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "test-secret-key")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseSessionToken_Malformed(t *testing.T) {
	_, err := ParseSessionToken("not.a.jwt", "test-secret-key")
	assert.Error(t, err)
}

func TestHashSessionToken(t *testing.T) {
	token := "some-session-token"

	hash := HashSessionToken(token)
	assert.Len(t, hash, 64, "SHA256 hex digest should be 64 characters")
	assert.Equal(t, hash, HashSessionToken(token), "Hash should be deterministic")
	assert.NotEqual(t, hash, HashSessionToken("other-token"))

	assert.True(t, CompareSessionTokenHash(token, hash))
	assert.False(t, CompareSessionTokenHash("other-token", hash))
}
