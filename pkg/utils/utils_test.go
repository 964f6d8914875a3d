package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "s3cret-password"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
}

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("admin@example.com", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	expAt, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, expAt.After(time.Now()))
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	_, err := ParseJWT("not-a-token")
	require.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("first-secret")
	token, err := GenerateJWT("admin@example.com", "admin", time.Hour)
	require.NoError(t, err)

	InitJWT("second-secret")
	_, err = ParseJWT(token)
	require.Error(t, err)
}
