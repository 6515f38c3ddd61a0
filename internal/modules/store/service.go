package store

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

// Service defines store business logic. Mutations take the caller so
// the owner-or-admin rule can be applied.
type Service interface {
	ListStores(ctx context.Context) ([]*Store, error)
	GetStore(ctx context.Context, id string) (*Store, error)
	CreateStore(ctx context.Context, caller *user.User, req CreateStoreRequest) (*Store, error)
	UpdateStore(ctx context.Context, caller *user.User, id string, req UpdateStoreRequest) (*Store, error)
	DeleteStore(ctx context.Context, caller *user.User, id string) error
}

type service struct{ repo Repository }

// NewService creates a new store service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListStores(ctx context.Context) ([]*Store, error) {
	stores, err := s.repo.List(ctx)
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list stores", err)
	}
	return stores, nil
}

func (s *service) GetStore(ctx context.Context, id string) (*Store, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "Store not found")
		}
		log.Printf("Error fetching store %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to fetch store", err)
	}
	return st, nil
}

func (s *service) CreateStore(ctx context.Context, caller *user.User, req CreateStoreRequest) (*Store, error) {
	if req.Name == "" || req.Description == "" {
		return nil, apperror.New(apperror.KindValidation, "Missing required fields")
	}

	// Owner is the caller, never client-supplied.
	st := &Store{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     caller.ID,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		log.Printf("Error creating store: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to create store", err)
	}
	return st, nil
}

func (s *service) UpdateStore(ctx context.Context, caller *user.User, id string, req UpdateStoreRequest) (*Store, error) {
	st, err := s.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanManage(caller, st.OwnerID) {
		return nil, apperror.New(apperror.KindForbidden, "Unauthorized")
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}

	if err := s.repo.Update(ctx, st); err != nil {
		log.Printf("Error updating store %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to update store", err)
	}
	return st, nil
}

func (s *service) DeleteStore(ctx context.Context, caller *user.User, id string) error {
	st, err := s.GetStore(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanManage(caller, st.OwnerID) {
		return apperror.New(apperror.KindForbidden, "Unauthorized")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting store %s: %v", id, err)
		return apperror.Wrap(apperror.KindInternal, "Failed to delete store", err)
	}
	return nil
}
