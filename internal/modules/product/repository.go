package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for products. Lookups return
// sql.ErrNoRows when no matching row exists.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// GetStoreOwner resolves the owning user of a store, for the
	// owner-or-admin check on product writes.
	GetStoreOwner(ctx context.Context, storeID string) (uuid.UUID, error)
}
