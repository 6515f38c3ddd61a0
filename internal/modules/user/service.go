package user

import "context"

// Service defines the admin-facing user management business logic.
// Registration and login live in the auth module.
type Service interface {
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UpdateUserRequest is a partial update: only non-nil fields are applied.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	IsAdmin  *bool   `json:"is_admin"`
}
