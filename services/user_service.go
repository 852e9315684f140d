// Package services holds the application's business logic.
// File: services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"courtside/logger"
	"courtside/models"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserService manages coach accounts.
type UserService struct {
	repo UserStore
}

// NewUserService creates a new UserService instance.
func NewUserService(repo UserStore) *UserService {
	return &UserService{repo: repo}
}

// FindByEmail returns the user or models.ErrUserNotFound.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// CreateUserIfNotExists seeds a coach account. It is idempotent: when the
// email is already registered the existing user is returned untouched.
func (s *UserService) CreateUserIfNotExists(ctx context.Context, fullName, email, rawPassword string) (*models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		logger.Debug.Printf("Seed user %s already exists, skipping", email)
		return existing, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Enabled:      true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info.Printf("Seeded coach account for %s", email)
	return user, nil
}
