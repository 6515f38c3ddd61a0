package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a listing in a store. Its price is the current price only:
// orders capture their total at creation and are not affected by later
// price changes.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	StoreID     uuid.UUID `json:"store_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductRequest holds the data for listing a product. Price is a
// pointer so a missing field is distinguishable from a zero price.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	StoreID     string   `json:"store_id"`
}

// UpdateProductRequest is a partial update: only non-nil fields are applied.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}
