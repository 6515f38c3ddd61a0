package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer's purchase. The total is computed from current
// product prices at creation time and frozen: later price changes never
// touch it. Orders are immutable after creation except for deletion.
type Order struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	OrderDate   time.Time    `json:"order_date"`
	TotalAmount float64      `json:"total_amount"`
	Items       []*OrderItem `json:"items"`
}

// OrderItem is a single product line within an order. It records what
// was ordered and how many; the order's total is the only price record.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CartItem describes one requested line when placing an order. Fields
// are pointers so missing keys are distinguishable from zero values.
type CartItem struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	Items []CartItem `json:"items"`
}
