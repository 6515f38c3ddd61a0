package order

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Service defines the order workflow: cart validation, pricing at
// creation time, and owner-or-admin reads and deletes.
type Service interface {
	// CreateOrder validates the cart, prices each line against the
	// product's current price, and persists order plus items atomically.
	CreateOrder(ctx context.Context, caller *user.User, req CreateOrderRequest) (*Order, error)

	// GetOrders returns every order for admins, only the caller's own
	// otherwise.
	GetOrders(ctx context.Context, caller *user.User) ([]*Order, error)

	// GetOrder retrieves one order; only the owner or an admin may see it.
	GetOrder(ctx context.Context, caller *user.User, id string) (*Order, error)

	// DeleteOrder removes an order and its items; same guard as GetOrder.
	DeleteOrder(ctx context.Context, caller *user.User, id string) error
}

type service struct{ repo Repository }

// NewService creates a new order service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateOrder(ctx context.Context, caller *user.User, req CreateOrderRequest) (*Order, error) {
	if req.Items == nil {
		return nil, apperror.New(apperror.KindValidation, "Missing required fields")
	}
	if len(req.Items) == 0 {
		return nil, apperror.New(apperror.KindValidation, "Items list cannot be empty")
	}

	// Items resolve strictly in input order so the first invalid one is
	// the one reported. A bad product id is a client input error, not a
	// missing resource, hence 400.
	var total float64
	var items []*OrderItem
	for _, ci := range req.Items {
		if ci.ProductID == nil || ci.Quantity == nil {
			return nil, apperror.New(apperror.KindValidation, "Each item must contain product_id and quantity")
		}

		price, err := s.repo.GetProductPrice(ctx, *ci.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperror.Newf(apperror.KindValidation, "Product with id %s not found", *ci.ProductID)
			}
			log.Printf("Error resolving product %s: %v", *ci.ProductID, err)
			return nil, apperror.Wrap(apperror.KindInternal, "Failed to create order", err)
		}
		if *ci.Quantity <= 0 {
			return nil, apperror.Newf(apperror.KindValidation, "Quantity for product %s must be greater than zero", *ci.ProductID)
		}

		productID, err := uuid.Parse(*ci.ProductID)
		if err != nil {
			return nil, apperror.Newf(apperror.KindValidation, "Product with id %s not found", *ci.ProductID)
		}

		total += price * float64(*ci.Quantity)
		items = append(items, &OrderItem{
			ID:        uuid.New(),
			ProductID: productID,
			Quantity:  *ci.Quantity,
		})
	}

	o := &Order{
		ID:          uuid.New(),
		UserID:      caller.ID,
		OrderDate:   time.Now().UTC(),
		TotalAmount: total,
		Items:       items,
	}
	for _, item := range o.Items {
		item.OrderID = o.ID
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		log.Printf("Error creating order: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to create order", err)
	}
	return o, nil
}

func (s *service) GetOrders(ctx context.Context, caller *user.User) ([]*Order, error) {
	var orders []*Order
	var err error
	if caller.IsAdmin {
		orders, err = s.repo.ListOrders(ctx)
	} else {
		orders, err = s.repo.ListOrdersByUser(ctx, caller.ID.String())
	}
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list orders", err)
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, caller *user.User, id string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "Order not found")
		}
		log.Printf("Error fetching order %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to fetch order", err)
	}
	if !auth.CanManage(caller, o.UserID) {
		return nil, apperror.New(apperror.KindForbidden, "Unauthorized")
	}
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, caller *user.User, id string) error {
	// Guard on the loaded row before touching anything.
	if _, err := s.GetOrder(ctx, caller, id); err != nil {
		return err
	}

	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		log.Printf("Error deleting order %s: %v", id, err)
		return apperror.Wrap(apperror.KindInternal, "Failed to delete order", err)
	}
	return nil
}
