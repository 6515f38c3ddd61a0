package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is a seller's storefront. The owner is always the user who
// created it.
type Store struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStoreRequest holds the data for opening a store.
type CreateStoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateStoreRequest is a partial update: only non-nil fields are applied.
type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
