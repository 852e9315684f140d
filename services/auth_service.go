// Package services holds the application's business logic.
// File: services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"courtside/logger"
	"courtside/models"
)

// throwawayHash keeps login timing flat when the email is unknown: the
// password is compared against this hash instead of returning early.
const throwawayHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService authenticates coaches and checks admin bearer tokens.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and issues a signed token. The response
// never distinguishes an unknown email from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(throwawayHash), []byte(password))
			logger.Warn.Printf("Login attempt for unknown email %s", email)
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn.Printf("Login attempt with bad password for %s", email)
		return nil, models.ErrInvalidCredentials
	}

	if !user.Enabled {
		logger.Warn.Printf("Login attempt for disabled account %s", email)
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	logger.Info.Printf("Coach %s logged in", user.Email)
	return &models.AuthResponse{
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
	}, nil
}

// Verify checks the bearer token and confirms an enabled user still
// backs it. Returns the authenticated email. There is a single implicit
// role, so this is a plain capability check.
func (s *AuthService) Verify(ctx context.Context, token string) (string, error) {
	email, err := s.tokens.Parse(token)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", fmt.Errorf("%w: no such user", models.ErrInvalidToken)
		}
		return "", err
	}
	if !user.Enabled {
		return "", fmt.Errorf("%w: account disabled", models.ErrInvalidToken)
	}

	return email, nil
}
