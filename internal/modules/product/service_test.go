package product

import (
	"context"
	"database/sql"
	"testing"

	"github.com/georgemunganga/marketplace-backend/internal/apperror"
	"github.com/georgemunganga/marketplace-backend/internal/modules/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakeRepo implementing Repository for tests ----

type fakeRepo struct {
	owners map[string]uuid.UUID // store id -> owner id

	CreateFn  func(ctx context.Context, p *Product) error
	GetByIDFn func(ctx context.Context, id string) (*Product, error)
	ListFn    func(ctx context.Context) ([]*Product, error)
	UpdateFn  func(ctx context.Context, p *Product) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error { return f.CreateFn(ctx, p) }
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeRepo) List(ctx context.Context) ([]*Product, error)  { return f.ListFn(ctx) }
func (f *fakeRepo) Update(ctx context.Context, p *Product) error  { return f.UpdateFn(ctx, p) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error   { return f.DeleteFn(ctx, id) }
func (f *fakeRepo) GetStoreOwner(ctx context.Context, storeID string) (uuid.UUID, error) {
	owner, ok := f.owners[storeID]
	if !ok {
		return uuid.Nil, sql.ErrNoRows
	}
	return owner, nil
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateProduct(t *testing.T) {
	owner := &user.User{ID: uuid.New()}
	storeID := uuid.New()

	newRepo := func(created **Product) *fakeRepo {
		return &fakeRepo{
			owners: map[string]uuid.UUID{storeID.String(): owner.ID},
			CreateFn: func(ctx context.Context, p *Product) error {
				*created = p
				return nil
			},
		}
	}
	valid := CreateProductRequest{
		Name: "Widget", Description: "A widget", Price: floatPtr(9.99), StoreID: storeID.String(),
	}

	t.Run("owner creates in own store", func(t *testing.T) {
		var created *Product
		p, err := NewService(newRepo(&created)).CreateProduct(context.Background(), owner, valid)
		require.NoError(t, err)
		assert.Equal(t, storeID, p.StoreID)
		assert.Equal(t, 9.99, p.Price)
		assert.Same(t, p, created)
	})

	t.Run("admin creates in someone else's store", func(t *testing.T) {
		var created *Product
		admin := &user.User{ID: uuid.New(), IsAdmin: true}
		_, err := NewService(newRepo(&created)).CreateProduct(context.Background(), admin, valid)
		assert.NoError(t, err)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		var created *Product
		_, err := NewService(newRepo(&created)).CreateProduct(context.Background(),
			&user.User{ID: uuid.New()}, valid)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		assert.Nil(t, created)
	})

	t.Run("unknown store is 404", func(t *testing.T) {
		var created *Product
		req := valid
		req.StoreID = uuid.New().String()
		_, err := NewService(newRepo(&created)).CreateProduct(context.Background(), owner, req)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("negative price rejected", func(t *testing.T) {
		var created *Product
		req := valid
		req.Price = floatPtr(-1)
		_, err := NewService(newRepo(&created)).CreateProduct(context.Background(), owner, req)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("missing price rejected", func(t *testing.T) {
		var created *Product
		req := valid
		req.Price = nil
		_, err := NewService(newRepo(&created)).CreateProduct(context.Background(), owner, req)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestUpdateProductResolvesParentStoreOwner(t *testing.T) {
	owner := &user.User{ID: uuid.New()}
	storeID := uuid.New()
	prod := &Product{
		ID: uuid.New(), Name: "Widget", Description: "A widget", Price: 10.00, StoreID: storeID,
	}

	newRepo := func(updated *bool) *fakeRepo {
		return &fakeRepo{
			owners: map[string]uuid.UUID{storeID.String(): owner.ID},
			GetByIDFn: func(ctx context.Context, id string) (*Product, error) {
				clone := *prod
				return &clone, nil
			},
			UpdateFn: func(ctx context.Context, p *Product) error {
				*updated = true
				return nil
			},
		}
	}

	t.Run("owner merges price only", func(t *testing.T) {
		updated := false
		got, err := NewService(newRepo(&updated)).UpdateProduct(context.Background(),
			owner, prod.ID.String(), UpdateProductRequest{Price: floatPtr(20.00)})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, 20.00, got.Price)
		assert.Equal(t, "Widget", got.Name)
	})

	t.Run("stranger forbidden, product unchanged", func(t *testing.T) {
		updated := false
		_, err := NewService(newRepo(&updated)).UpdateProduct(context.Background(),
			&user.User{ID: uuid.New()}, prod.ID.String(), UpdateProductRequest{Price: floatPtr(20.00)})
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		assert.False(t, updated)
	})
}

func TestDeleteProductGate(t *testing.T) {
	owner := &user.User{ID: uuid.New()}
	storeID := uuid.New()
	prod := &Product{ID: uuid.New(), StoreID: storeID}
	deleted := false
	repo := &fakeRepo{
		owners: map[string]uuid.UUID{storeID.String(): owner.ID},
		GetByIDFn: func(ctx context.Context, id string) (*Product, error) {
			return prod, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewService(repo)

	err := svc.DeleteProduct(context.Background(), &user.User{ID: uuid.New()}, prod.ID.String())
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteProduct(context.Background(), owner, prod.ID.String()))
	assert.True(t, deleted)
}

func TestGetProductNotFound(t *testing.T) {
	repo := &fakeRepo{
		GetByIDFn: func(ctx context.Context, id string) (*Product, error) { return nil, sql.ErrNoRows },
	}
	_, err := NewService(repo).GetProduct(context.Background(), uuid.New().String())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
