package user

import (
	"context"
	"errors"
)

// ErrDuplicate is returned when a write collides with the unique
// username or email constraint.
var ErrDuplicate = errors.New("username or email already taken")

// ErrHasDependents is returned when a delete is blocked by rows that
// still reference the user (stores, orders).
var ErrHasDependents = errors.New("user has dependent records")

// Repository defines data access for users. Lookups return
// sql.ErrNoRows when no matching row exists.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id string) error
}
