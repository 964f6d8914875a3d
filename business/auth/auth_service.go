package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storeAnalytics/pkg/logger"
	"storeAnalytics/pkg/utils"
)

const RoleAdmin = "admin"

type authService struct {
	adminEmail        string
	adminPasswordHash []byte
	tokenTTL          time.Duration
}

// NewAuthService hashes the configured admin password once so the plain
// text never sits in the service.
func NewAuthService(adminEmail, adminPassword string, tokenTTL time.Duration) (*authService, error) {
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authService{
		adminEmail:        adminEmail,
		adminPasswordHash: hash,
		tokenTTL:          tokenTTL,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when logging in")
		return "", fmt.Errorf("context error: %w", err)
	}

	if email != s.adminEmail {
		logger.Error("Unknown login email", "email", email)
		return "", errors.New("invalid credentials")
	}

	if err := utils.CheckPassword(s.adminPasswordHash, password); err != nil {
		logger.Error("Password mismatch on login")
		return "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(email, RoleAdmin, s.tokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", errors.New("failed to generate token")
	}

	logger.Info("admin logged in")

	return token, nil
}
