package store

import "context"

// Repository defines data access for stores. Lookups return
// sql.ErrNoRows when no matching row exists.
type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Update(ctx context.Context, s *Store) error
	Delete(ctx context.Context, id string) error
}
