package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a
	// transaction; on any failure nothing is committed.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items. Returns
	// sql.ErrNoRows when no matching row exists.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrders returns every order with items, newest first.
	ListOrders(ctx context.Context) ([]*Order, error)

	// ListOrdersByUser returns a user's orders with items, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error)

	// DeleteOrder removes an order and its items in one transaction.
	DeleteOrder(ctx context.Context, id string) error

	// GetProductPrice fetches the current price of a product. Returns
	// sql.ErrNoRows for an unknown product.
	GetProductPrice(ctx context.Context, productID string) (float64, error)
}
