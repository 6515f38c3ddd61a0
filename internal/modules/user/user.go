package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents a marketplace account. A user may own stores and place
// orders; admins additionally manage other users and see every order.
// The password hash never serializes.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
