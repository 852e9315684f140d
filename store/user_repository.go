// File: store/user_repository.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtside/models"
)

// UserRepository handles coach account data access.
type UserRepository struct {
	db *Database
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail finds a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, enabled
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.DB().QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash, &user.Enabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user and fills in its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (full_name, email, password_hash, enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.Enabled,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}
