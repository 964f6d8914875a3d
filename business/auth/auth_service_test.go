package auth

import (
	"context"
	"testing"
	"time"

	"storeAnalytics/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	utils.InitJWT("test-secret")

	svc, err := NewAuthService("admin@example.com", "s3cret-password", time.Hour)
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "admin@example.com", "s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	utils.InitJWT("test-secret")

	svc, err := NewAuthService("admin@example.com", "s3cret-password", time.Hour)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	utils.InitJWT("test-secret")

	svc, err := NewAuthService("admin@example.com", "s3cret-password", time.Hour)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "someone@example.com", "s3cret-password")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}
