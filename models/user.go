// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- user model -----------------------

// User is a coach account that can sign in to the admin console.
// The password hash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Enabled      bool   `json:"enabled"`
}

// ----------------------- auth payloads -----------------------

// LoginRequest carries the credentials posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
