package product

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, store_id)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Description, p.Price, p.StoreID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, sql.ErrNoRows
	}
	p := &Product{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, store_id, created_at, updated_at
		FROM products WHERE id=$1`, uid).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StoreID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, store_id, created_at, updated_at
		FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StoreID,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, description=$2, price=$3, updated_at=$4
		WHERE id=$5`,
		p.Name, p.Description, p.Price, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return sql.ErrNoRows
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postgresRepo) GetStoreOwner(ctx context.Context, storeID string) (uuid.UUID, error) {
	uid, err := uuid.Parse(storeID)
	if err != nil {
		return uuid.Nil, sql.ErrNoRows
	}
	var owner uuid.UUID
	err = r.db.QueryRowContext(ctx,
		`SELECT owner_id FROM stores WHERE id=$1`, uid).Scan(&owner)
	return owner, err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
