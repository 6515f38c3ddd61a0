package product

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/auth"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Service defines product business logic. Writes resolve the parent
// store's owner and apply the owner-or-admin rule.
type Service interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, caller *user.User, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, caller *user.User, id string, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, caller *user.User, id string) error
}

type service struct{ repo Repository }

// NewService creates a new product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list products", err)
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "Product not found")
		}
		log.Printf("Error fetching product %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to fetch product", err)
	}
	return p, nil
}

func (s *service) CreateProduct(ctx context.Context, caller *user.User, req CreateProductRequest) (*Product, error) {
	if req.Name == "" || req.Description == "" || req.Price == nil || req.StoreID == "" {
		return nil, apperror.New(apperror.KindValidation, "Missing required fields")
	}
	if *req.Price < 0 {
		return nil, apperror.New(apperror.KindValidation, "Price must not be negative")
	}

	owner, err := s.storeOwner(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManage(caller, owner) {
		return nil, apperror.New(apperror.KindForbidden, "Unauthorized to add product to this store")
	}

	storeID, _ := uuid.Parse(req.StoreID)
	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		StoreID:     storeID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		log.Printf("Error creating product: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to create product", err)
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, caller *user.User, id string, req UpdateProductRequest) (*Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireStoreOwner(ctx, caller, p.StoreID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperror.New(apperror.KindValidation, "Price must not be negative")
		}
		p.Price = *req.Price
	}

	if err := s.repo.Update(ctx, p); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to update product", err)
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, caller *user.User, id string) error {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireStoreOwner(ctx, caller, p.StoreID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		return apperror.Wrap(apperror.KindInternal, "Failed to delete product", err)
	}
	return nil
}

func (s *service) storeOwner(ctx context.Context, storeID string) (uuid.UUID, error) {
	owner, err := s.repo.GetStoreOwner(ctx, storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, apperror.New(apperror.KindNotFound, "Store not found")
		}
		log.Printf("Error resolving store owner %s: %v", storeID, err)
		return uuid.Nil, apperror.Wrap(apperror.KindInternal, "Failed to resolve store", err)
	}
	return owner, nil
}

func (s *service) requireStoreOwner(ctx context.Context, caller *user.User, storeID uuid.UUID) error {
	owner, err := s.storeOwner(ctx, storeID.String())
	if err != nil {
		return err
	}
	if !auth.CanManage(caller, owner) {
		return apperror.New(apperror.KindForbidden, "Unauthorized")
	}
	return nil
}
