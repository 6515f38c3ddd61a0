package auth

import (
	"context"

	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
)

// Service defines the authentication business logic: account creation,
// credential checks, and token decoding.
type Service interface {
	// Register creates a user with a hashed credential and returns a
	// fresh token for it.
	Register(ctx context.Context, req RegisterRequest) (string, *user.User, error)

	// Login verifies credentials and returns a token.
	Login(ctx context.Context, req LoginRequest) (string, error)

	// Decode resolves a raw token back to its user record.
	Decode(ctx context.Context, token string) (*user.User, error)
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
