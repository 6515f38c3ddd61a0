package user

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list users", err)
	}
	return users, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		log.Printf("Error fetching user %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to fetch user", err)
	}
	return u, nil
}

func (s *service) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperror.New(apperror.KindValidation, "Username or email already taken")
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		log.Printf("Error updating user %s: %v", id, err)
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to update user", err)
	}
	return u, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	err := s.repo.DeleteUser(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.New(apperror.KindNotFound, "User not found")
	}
	if errors.Is(err, ErrHasDependents) {
		return apperror.New(apperror.KindConflict, "User still owns stores or orders")
	}
	log.Printf("Error deleting user %s: %v", id, err)
	return apperror.Wrap(apperror.KindInternal, "Failed to delete user", err)
}
